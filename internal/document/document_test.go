package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestLoad_PlainText(t *testing.T) {
	path := writeFile(t, "notes.txt", []byte("  Photosynthesis converts light.\n"))

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Name != "notes.txt" {
		t.Fatalf("expected name 'notes.txt', got %q", doc.Name)
	}
	if doc.Text != "Photosynthesis converts light." {
		t.Fatalf("expected trimmed text, got %q", doc.Text)
	}
}

func TestLoad_MarkdownAndExtensionless(t *testing.T) {
	for _, name := range []string{"readme.md", "NOTES"} {
		path := writeFile(t, name, []byte("content"))
		if _, err := Load(path); err != nil {
			t.Fatalf("Load(%s): %v", name, err)
		}
	}
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	for _, name := range []string{"paper.pdf", "slides.docx", "image.png"} {
		path := writeFile(t, name, []byte("irrelevant"))
		_, err := Load(path)
		if !errors.Is(err, ErrUnsupportedInput) {
			t.Fatalf("Load(%s): expected ErrUnsupportedInput, got %v", name, err)
		}
	}
}

func TestLoad_BinaryContentRejected(t *testing.T) {
	path := writeFile(t, "notes.txt", []byte{0xff, 0xfe, 0x00, 0x80})
	_, err := Load(path)
	if !errors.Is(err, ErrUnsupportedInput) {
		t.Fatalf("expected ErrUnsupportedInput, got %v", err)
	}
}

func TestLoad_EmptyDocument(t *testing.T) {
	path := writeFile(t, "empty.txt", []byte("   \n\t\n"))
	_, err := Load(path)
	if !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
