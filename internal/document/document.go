// Package document loads learning material from disk as plain text.
// Rich formats (PDF and friends) belong to an external extraction
// collaborator; this package only signals that it cannot read them.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrUnsupportedInput indicates a file format this reader cannot extract
// text from. Callers surface it unchanged.
var ErrUnsupportedInput = errors.New("unsupported document format")

// ErrEmptyDocument indicates the file contained no usable text.
var ErrEmptyDocument = errors.New("document contains no text")

// textExtensions are the formats read directly as UTF-8 text.
var textExtensions = map[string]bool{
	"":     true,
	".txt": true,
	".md":  true,
}

// Document is loaded learning material.
type Document struct {
	Name string
	Text string
}

// Load reads the file at path as plain text.
func Load(path string) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !textExtensions[ext] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedInput, ext)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: not valid UTF-8 text", ErrUnsupportedInput)
	}

	text := strings.TrimSpace(string(raw))
	if text == "" {
		return nil, ErrEmptyDocument
	}

	return &Document{
		Name: filepath.Base(path),
		Text: text,
	}, nil
}
