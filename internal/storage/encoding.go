package storage

import (
	"bytes"
	"unicode/utf8"
)

// Encoding labels the character encoding detected for a document. The
// values double as display strings for the status line.
type Encoding string

const (
	// EncodingUTF8 is UTF-8 without a BOM (the default).
	EncodingUTF8 Encoding = "UTF-8"

	// EncodingUTF8BOM is UTF-8 with a leading BOM.
	EncodingUTF8BOM Encoding = "UTF-8 BOM"

	// EncodingUTF16LE is UTF-16 little endian, detected but not loadable.
	EncodingUTF16LE Encoding = "UTF-16 LE"

	// EncodingUTF16BE is UTF-16 big endian, detected but not loadable.
	EncodingUTF16BE Encoding = "UTF-16 BE"

	// EncodingLatin1 labels content that is not valid UTF-8. Bytes pass
	// through load and save untouched.
	EncodingLatin1 Encoding = "ISO-8859-1"

	// EncodingASCII is the pure 7-bit subset of UTF-8.
	EncodingASCII Encoding = "ASCII"
)

// BOM markers.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// StripBOM removes a leading BOM from content if present, returning the
// remaining bytes and the encoding the BOM indicates. Content without a
// BOM is returned unchanged with EncodingUTF8.
func StripBOM(content []byte) ([]byte, Encoding) {
	switch {
	case bytes.HasPrefix(content, bomUTF8):
		return content[len(bomUTF8):], EncodingUTF8BOM
	case bytes.HasPrefix(content, bomUTF16LE):
		return content[len(bomUTF16LE):], EncodingUTF16LE
	case bytes.HasPrefix(content, bomUTF16BE):
		return content[len(bomUTF16BE):], EncodingUTF16BE
	}
	return content, EncodingUTF8
}

// AddBOM prepends the BOM marker for the encoding unless one is already
// present. Encodings without a BOM return the content unchanged.
func AddBOM(content []byte, enc Encoding) []byte {
	var bom []byte
	switch enc {
	case EncodingUTF8BOM:
		bom = bomUTF8
	case EncodingUTF16LE:
		bom = bomUTF16LE
	case EncodingUTF16BE:
		bom = bomUTF16BE
	default:
		return content
	}
	if bytes.HasPrefix(content, bom) {
		return content
	}
	return append(append(make([]byte, 0, len(bom)+len(content)), bom...), content...)
}

// DetectEncoding classifies BOM-free content. Valid UTF-8 is labelled
// ASCII when no byte exceeds 127, UTF-8 otherwise. Anything else falls
// back to Latin-1, which accepts every byte sequence.
func DetectEncoding(content []byte) Encoding {
	if len(content) == 0 {
		return EncodingUTF8
	}
	if utf8.Valid(content) {
		if isASCII(content) {
			return EncodingASCII
		}
		return EncodingUTF8
	}
	return EncodingLatin1
}

// IsBinary reports whether content looks like binary rather than text.
// It samples at most the first 8KB: any null byte, or more than 10%
// control characters outside tab/newline/carriage return, counts as
// binary.
func IsBinary(content []byte) bool {
	if len(content) == 0 {
		return false
	}

	sample := content
	if len(sample) > 8192 {
		sample = sample[:8192]
	}

	if bytes.IndexByte(sample, 0) >= 0 {
		return true
	}

	nonText := 0
	for _, b := range sample {
		if b < 32 && b != '\t' && b != '\n' && b != '\r' {
			nonText++
		}
	}
	return float64(nonText)/float64(len(sample)) > 0.1
}

func isASCII(content []byte) bool {
	for _, b := range content {
		if b >= 128 {
			return false
		}
	}
	return true
}
