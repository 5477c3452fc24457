package body

import (
	"io"
	"os"
	"path/filepath"
)

// File is an Output backed by a file on disk. Unlike Bytes it carries a
// file name, so transports can forward it for upload-style requests.
type File struct {
	mimeType string
	path     string
}

func NewFile(mimeType, path string) *File {
	return &File{mimeType: mimeType, path: path}
}

func (f *File) FileName() string { return filepath.Base(f.path) }

func (f *File) MimeType() string { return f.mimeType }

// Length returns the current size of the backing file, or -1 when it
// cannot be determined.
func (f *File) Length() int64 {
	info, err := os.Stat(f.path)
	if err != nil {
		return -1
	}
	return info.Size()
}

func (f *File) WriteTo(w io.Writer) error {
	in, err := os.Open(f.path)
	if err != nil {
		return err
	}
	defer in.Close()
	_, err = io.Copy(w, in)
	return err
}
