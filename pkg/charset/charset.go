// Package charset tries text files against a fixed, ordered list of
// encodings and decodes them with the first one that fits.
//
// Detection never fails on its own: when no candidate decodes the data the
// result is [Undefined], and callers decide how to report it. [ReadFile]
// turns that outcome into an ENCODING_UNDEFINED error.
package charset

import (
	"bytes"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/matzehuels/surepatch/pkg/errors"
)

// Encoding is a named text encoding candidate.
type Encoding struct {
	Name   string
	decode func([]byte) (string, bool)
}

// IsUndefined reports whether e is the sentinel returned when nothing fits.
func (e Encoding) IsUndefined() bool {
	return e.decode == nil
}

// Decode converts b to a string. ok is false when b is not valid in e.
func (e Encoding) Decode(b []byte) (s string, ok bool) {
	if e.decode == nil {
		return "", false
	}
	return e.decode(b)
}

// Undefined is returned by Detect when no candidate decodes the input.
var Undefined = Encoding{Name: "undefined"}

var (
	UTF16       = Encoding{Name: "utf-16", decode: decodeUTF16}
	UTF8        = Encoding{Name: "utf-8", decode: decodeUTF8}
	Windows1250 = Encoding{Name: "windows-1250", decode: singleByte(charmap.Windows1250)}
	Windows1252 = Encoding{Name: "windows-1252", decode: singleByte(charmap.Windows1252)}
	ISO8859_7   = Encoding{Name: "iso-8859-7", decode: singleByte(charmap.ISO8859_7)}
)

// Candidates is the detection order. Every entry must leave some bytes
// unmapped, otherwise Undefined could never be returned.
var Candidates = []Encoding{UTF16, UTF8, Windows1250, Windows1252, ISO8859_7}

// DetectBytes returns the first candidate that decodes b, or Undefined.
func DetectBytes(b []byte) Encoding {
	for _, e := range Candidates {
		if _, ok := e.decode(b); ok {
			return e
		}
	}
	return Undefined
}

// Detect reads the file at path and detects its encoding.
// The returned error reports I/O failures only; an undecodable file yields
// Undefined with a nil error.
func Detect(path string) (Encoding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Undefined, err
	}
	return DetectBytes(data), nil
}

// ReadFile reads and decodes the file at path.
//
// Returns:
//   - FILE_NOT_FOUND if path does not exist or is a directory
//   - ENCODING_UNDEFINED if no candidate decodes the content
func ReadFile(path string) (string, Encoding, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", Undefined, errors.New(errors.ErrCodeFileNotFound, "file %s does not exist", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", Undefined, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	for _, e := range Candidates {
		if s, ok := e.decode(data); ok {
			return s, e, nil
		}
	}
	return "", Undefined, errors.New(errors.ErrCodeEncodingUndefined, "undefined encoding of file %s", path).
		WithHint("use utf-8 or utf-16")
}

var (
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// decodeUTF16 accepts only BOM-prefixed input of even length.
func decodeUTF16(b []byte) (string, bool) {
	if len(b)%2 != 0 || !(bytes.HasPrefix(b, bomUTF16LE) || bytes.HasPrefix(b, bomUTF16BE)) {
		return "", false
	}
	out, err := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder().Bytes(b)
	if err != nil || bytes.ContainsRune(out, utf8.RuneError) {
		return "", false
	}
	return string(out), true
}

func decodeUTF8(b []byte) (string, bool) {
	if !utf8.Valid(b) {
		return "", false
	}
	out, err := unicode.UTF8BOM.NewDecoder().Bytes(b)
	if err != nil {
		return "", false
	}
	return string(out), true
}

// singleByte fails when any byte has no mapping in the code page.
func singleByte(cm *charmap.Charmap) func([]byte) (string, bool) {
	var enc encoding.Encoding = cm
	return func(b []byte) (string, bool) {
		out, err := enc.NewDecoder().Bytes(b)
		if err != nil {
			return "", false
		}
		s := string(out)
		if strings.ContainsRune(s, utf8.RuneError) {
			return "", false
		}
		return s, true
	}
}
