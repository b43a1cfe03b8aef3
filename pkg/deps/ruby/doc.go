// Package ruby parses Ruby gem listings.
//
// # Formats
//
//   - gem list output (or a saved copy of it): [ParseGemList]
//   - Gemfile: [ParseGemfile]
//   - Gemfile.lock: [ParseGemfileLock]
//
// # Version Ranges
//
// Gemfile and Gemfile.lock may constrain a gem with two bounds:
//
//	gem 'rails', '>= 5.0', '< 6.0'
//
// Such a declaration is reported as two components sharing the name, one
// per bound (rails 5.0 and rails 6.0), not as a single range. Both parsers
// then drop repeated name/version pairs, keeping the last declaration of
// each pair and returning the survivors in file order.
package ruby
