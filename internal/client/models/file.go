// Package models defines the in-memory photo types tracked by the client
// pipeline: the raw selected file, the local preview handle and the
// processed-photo record that travels from intake to upload.
package models

import (
	"path/filepath"
	"strings"
)

// File is an in-memory file: its bytes plus the name and MIME type the
// picker declared for it. Pipeline stages copy a File instead of
// mutating one they received.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Size returns the payload size in bytes.
func (f File) Size() int64 {
	return int64(len(f.Data))
}

// Ext returns the lower-cased filename extension including the dot,
// e.g. ".heic". Empty when the name has no extension.
func (f File) Ext() string {
	return strings.ToLower(filepath.Ext(f.Name))
}

// WithName returns a copy of the file under a different name.
func (f File) WithName(name string) File {
	return File{Name: name, ContentType: f.ContentType, Data: f.Data}
}
