package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/avray/skiff/internal/engine/buffer"
)

// MaxFileSize is the largest file Load will open.
const MaxFileSize int64 = 10 * 1024 * 1024

// Document is a file held in memory as lines, together with everything
// needed to write it back the way it was found: encoding label, BOM
// presence, line ending style, and the disk modification time observed
// at load or last save.
type Document struct {
	// Path is the absolute file path, or empty for an unnamed document.
	Path string

	// Lines is the line content, always at least one line.
	Lines []string

	// Encoding is the detected character encoding.
	Encoding Encoding

	// HasBOM indicates the file began with a UTF-8 BOM, restored on save.
	HasBOM bool

	// LineEnding is the detected line ending style, used to re-join
	// lines on save.
	LineEnding buffer.LineEnding

	// DiskModTime is the file's modification time at load or last save.
	// Zero for documents that have never touched disk.
	DiskModTime time.Time

	modified bool
}

// NewEmpty returns an unnamed document holding a single empty line.
// Saving fails with ErrNoPath until a path is assigned.
func NewEmpty() *Document {
	return &Document{
		Lines:      []string{""},
		Encoding:   EncodingUTF8,
		LineEnding: buffer.DefaultLineEnding(),
	}
}

// Load reads the file at path into a Document. A missing file yields a
// new document for that path, written on first save. An empty path
// yields an unnamed document.
func Load(path string) (*Document, error) {
	if path == "" {
		return NewEmpty(), nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &PathError{Op: "open", Path: path, Err: err}
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			doc := NewEmpty()
			doc.Path = abs
			return doc, nil
		}
		return nil, &PathError{Op: "open", Path: abs, Err: err}
	}
	if info.IsDir() {
		return nil, &PathError{Op: "open", Path: abs, Err: ErrIsDirectory}
	}
	if info.Size() > MaxFileSize {
		return nil, &PathError{Op: "open", Path: abs, Err: ErrFileTooLarge}
	}

	raw, err := os.ReadFile(abs)
	if err != nil {
		return nil, &PathError{Op: "read", Path: abs, Err: err}
	}

	doc, err := FromBytes(abs, raw)
	if err != nil {
		return nil, err
	}
	doc.DiskModTime = info.ModTime()
	return doc, nil
}

// FromBytes builds a Document from raw content: strips the BOM, rejects
// binary and UTF-16 content, detects encoding and line ending, and splits
// into lines. DiskModTime is left zero.
func FromBytes(path string, raw []byte) (*Document, error) {
	content, bomEnc := StripBOM(raw)
	if bomEnc == EncodingUTF16LE || bomEnc == EncodingUTF16BE {
		return nil, &PathError{Op: "read", Path: path, Err: fmt.Errorf("%w: %s", ErrEncodingUnsupported, bomEnc)}
	}
	if IsBinary(content) {
		return nil, &PathError{Op: "read", Path: path, Err: ErrBinaryFile}
	}

	hasBOM := bomEnc == EncodingUTF8BOM
	enc := DetectEncoding(content)
	if hasBOM {
		enc = EncodingUTF8BOM
	}

	text := string(content)
	return &Document{
		Path:       path,
		Lines:      SplitLines(text),
		Encoding:   enc,
		HasBOM:     hasBOM,
		LineEnding: buffer.DetectLineEnding(text),
	}, nil
}

// Save replaces the document's lines and writes them to the document
// path: lines joined with the detected separator, trailing separator
// guaranteed, BOM restored when the original had one. The write is
// fsynced, then the stored disk modification time is refreshed and the
// modified flag cleared.
func (d *Document) Save(lines []string) error {
	if d.Path == "" {
		return ErrNoPath
	}
	d.Lines = lines

	f, err := os.OpenFile(d.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return &PathError{Op: "save", Path: d.Path, Err: err}
	}
	if _, err := f.Write(d.encode()); err != nil {
		f.Close()
		return &PathError{Op: "save", Path: d.Path, Err: err}
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return &PathError{Op: "save", Path: d.Path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &PathError{Op: "save", Path: d.Path, Err: err}
	}

	modTime := time.Now()
	if info, err := os.Stat(d.Path); err == nil {
		modTime = info.ModTime()
	}
	d.MarkSaved(modTime)
	return nil
}

// WriteTo writes the encoded document to w. It implements io.WriterTo
// and leaves modification state untouched.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.encode())
	return int64(n), err
}

// encode renders the document as file bytes.
func (d *Document) encode() []byte {
	data := []byte(JoinLines(d.Lines, d.LineEnding))
	if d.HasBOM {
		data = AddBOM(data, d.Encoding)
	}
	return data
}

// Name returns the base name of the document path, or empty for an
// unnamed document.
func (d *Document) Name() string {
	if d.Path == "" {
		return ""
	}
	return filepath.Base(d.Path)
}

// IsModified reports whether the document has unsaved changes.
func (d *Document) IsModified() bool {
	return d.modified
}

// MarkModified flags the document as having unsaved changes.
func (d *Document) MarkModified() {
	d.modified = true
}

// MarkSaved clears the modified flag and records the disk modification
// time of the save.
func (d *Document) MarkSaved(diskModTime time.Time) {
	d.modified = false
	d.DiskModTime = diskModTime
}

// HasExternalChanges reports whether the file on disk changed since load
// or the last save. A file that appeared where none existed at load, or
// that can no longer be read after one did, counts as changed.
func (d *Document) HasExternalChanges() bool {
	if d.Path == "" {
		return false
	}
	info, err := os.Stat(d.Path)
	if err != nil {
		return !d.DiskModTime.IsZero()
	}
	if d.DiskModTime.IsZero() {
		return true
	}
	return !info.ModTime().Equal(d.DiskModTime)
}
