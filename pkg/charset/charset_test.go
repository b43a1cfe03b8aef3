package charset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/surepatch/pkg/errors"
)

func TestDetectBytes(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"ascii", []byte("rails (7.0.4)\n"), "utf-8"},
		{"empty", []byte{}, "utf-8"},
		{"utf-8 with bom", append([]byte{0xEF, 0xBB, 0xBF}, "rake"...), "utf-8"},
		{"utf-16le bom", []byte{0xFF, 0xFE, 'a', 0x00, '=', 0x00, '1', 0x00}, "utf-16"},
		{"utf-16be bom", []byte{0xFE, 0xFF, 0x00, 'a', 0x00, '=', 0x00, '1'}, "utf-16"},
		{"latin byte", []byte("caf\xe9"), "windows-1250"},
		{"unmapped in central european", []byte("a\x81\xe9"), "iso-8859-7"},
		{"unmapped everywhere", []byte("a=\x81\xae\xd2\xff"), "undefined"},
		{"single c1 byte", []byte{0x81}, "iso-8859-7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectBytes(tt.data); got.Name != tt.want {
				t.Errorf("DetectBytes() = %q, want %q", got.Name, tt.want)
			}
		})
	}
}

func TestDecode_UTF16(t *testing.T) {
	s, ok := UTF16.Decode([]byte{0xFF, 0xFE, 'a', 0x00, '=', 0x00, '1', 0x00})
	if !ok {
		t.Fatal("Decode() ok = false")
	}
	if s != "a=1" {
		t.Errorf("Decode() = %q, want %q", s, "a=1")
	}

	if _, ok := UTF16.Decode([]byte("a=1")); ok {
		t.Error("Decode() without BOM ok = true, want false")
	}
	if _, ok := UTF16.Decode([]byte{0xFF, 0xFE, 'a'}); ok {
		t.Error("Decode() odd length ok = true, want false")
	}
}

func TestDecode_UTF8StripsBOM(t *testing.T) {
	s, ok := UTF8.Decode(append([]byte{0xEF, 0xBB, 0xBF}, "foo=1"...))
	if !ok || s != "foo=1" {
		t.Errorf("Decode() = %q, %v; want %q, true", s, ok, "foo=1")
	}
	if _, ok := UTF8.Decode([]byte{0xC3, 0x28}); ok {
		t.Error("Decode() invalid utf-8 ok = true, want false")
	}
}

func TestUndefined(t *testing.T) {
	if !Undefined.IsUndefined() {
		t.Error("Undefined.IsUndefined() = false")
	}
	if UTF8.IsUndefined() {
		t.Error("UTF8.IsUndefined() = true")
	}
	if _, ok := Undefined.Decode([]byte("x")); ok {
		t.Error("Undefined.Decode() ok = true")
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.txt")
	content := []byte{0xFF, 0xFE, 'x', 0x00, '=', 0x00, '2', 0x00}
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	s, enc, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if enc.Name != "utf-16" || s != "x=2" {
		t.Errorf("ReadFile() = %q (%s), want %q (utf-16)", s, enc.Name, "x=2")
	}
}

func TestReadFile_EncodingUndefined(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"greek gaps after c1", []byte{'x', '=', 0x81, 0xAE}},
		{"several gaps", []byte{0x81, 0x8D, 0x90, 0xAE, 0xD2, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "list.txt")
			if err := os.WriteFile(path, tt.data, 0644); err != nil {
				t.Fatal(err)
			}
			s, enc, err := ReadFile(path)
			if !errors.Is(err, errors.ErrCodeEncodingUndefined) {
				t.Fatalf("ReadFile() error = %v, want ENCODING_UNDEFINED", err)
			}
			if !enc.IsUndefined() || s != "" {
				t.Errorf("ReadFile() = %q (%s), want empty (undefined)", s, enc.Name)
			}
			if errors.Hint(err) == "" {
				t.Error("ReadFile() error has no hint")
			}
		})
	}
}

func TestReadFile_Missing(t *testing.T) {
	_, enc, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ReadFile() error = %v, want FILE_NOT_FOUND", err)
	}
	if !enc.IsUndefined() {
		t.Errorf("ReadFile() encoding = %q, want undefined", enc.Name)
	}
}

func TestReadFile_Directory(t *testing.T) {
	_, _, err := ReadFile(t.TempDir())
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ReadFile(dir) error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestDetect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Gemfile")
	if err := os.WriteFile(path, []byte("gem 'rails'\n"), 0644); err != nil {
		t.Fatal(err)
	}
	enc, err := Detect(path)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if enc.Name != "utf-8" {
		t.Errorf("Detect() = %q, want utf-8", enc.Name)
	}

	if _, err := Detect(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Detect(missing) error = nil")
	}
}
