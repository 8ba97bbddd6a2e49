package entities

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultEncoding is used when Settings do not name one.
const DefaultEncoding = "utf-8"

// binarySniffLength mirrors Git's own heuristic: a NUL byte in the first
// 8000 bytes marks the content as binary.
const binarySniffLength = 8000

// ErrDecode is returned when bytes cannot be decoded in the configured encoding.
var ErrDecode = errors.New("content cannot be decoded")

// TextSnapshot is one side of a comparison: raw bytes and their decoded text.
type TextSnapshot struct {
	Bytes  []byte
	Text   string
	Binary bool
}

// DecodeSnapshot decodes data using the named encoding (WHATWG label, e.g.
// "utf-8", "windows-1252"). UTF-8 is validated strictly so that a mis-encoded
// file is reported instead of silently compared with replacement characters.
func DecodeSnapshot(data []byte, encodingName string) (TextSnapshot, error) {
	if encodingName == "" {
		encodingName = DefaultEncoding
	}

	snapshot := TextSnapshot{Bytes: data, Binary: isBinary(data)}
	if snapshot.Binary {
		return snapshot, nil
	}

	enc, err := htmlindex.Get(encodingName)
	if err != nil {
		return TextSnapshot{}, fmt.Errorf("unsupported encoding %q: %w", encodingName, err)
	}

	if enc == unicode.UTF8 {
		if !utf8.Valid(data) {
			return TextSnapshot{}, fmt.Errorf("%w: invalid UTF-8", ErrDecode)
		}
		snapshot.Text = string(data)
		return snapshot, nil
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return TextSnapshot{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	snapshot.Text = string(decoded)
	return snapshot, nil
}

// ValidateEncoding reports whether the encoding label is known.
func ValidateEncoding(encodingName string) error {
	if _, err := htmlindex.Get(encodingName); err != nil {
		return fmt.Errorf("unsupported encoding %q: %w", encodingName, err)
	}
	return nil
}

func isBinary(data []byte) bool {
	sniff := data
	if len(sniff) > binarySniffLength {
		sniff = sniff[:binarySniffLength]
	}
	return bytes.IndexByte(sniff, 0) >= 0
}

// normalizeLineBreaks folds CRLF into LF and, in collapse mode, drops every LF.
func normalizeLineBreaks(text string, mode NormalizationMode) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if mode == NormalizationStrict {
		return text
	}
	return strings.ReplaceAll(text, "\n", "")
}
