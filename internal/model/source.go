// Package model defines the data structures shared by the refactoring layers.
package model

// Path represents a file system path.
type Path string

// File is a file on disk together with its content fingerprint.
type File struct {
	Path Path
	Hash string
}

// Source is a discovered PHP file. Sources coming from index paths are only
// parsed to learn class ancestry and are never rewritten.
type Source struct {
	Origin    *File
	IndexOnly bool
}
