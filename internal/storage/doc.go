// Package storage handles loading and saving documents on disk.
//
// Loading splits raw file content into lines, detects the character
// encoding and dominant line ending, and rejects binary or oversized
// files. Saving re-joins the lines with the detected separator, restores
// the BOM when the original had one, guarantees a trailing separator,
// and fsyncs before reporting success.
//
// Example usage:
//
//	doc, err := storage.Load("notes.txt")
//	if err != nil {
//	    return err
//	}
//	lines := doc.Lines
//	// ... edit lines ...
//	if err := doc.Save(lines); err != nil {
//	    return err
//	}
//
// A Document also tracks the file's modification time on disk so callers
// can detect external changes between load and save.
//
// # Thread Safety
//
// Documents are not safe for concurrent use. The editor drives all
// storage operations from its main loop goroutine.
package storage
