package body

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCharset(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		want     string
	}{
		{"declared", "application/json; charset=ISO-8859-1", "ISO-8859-1"},
		{"declared lowercase", "text/html; charset=utf-8", "utf-8"},
		{"no parameter", "application/json", "UTF-8"},
		{"other parameters only", "multipart/form-data; boundary=xyz", "UTF-8"},
		{"unparseable", ";;;", "UTF-8"},
		{"empty", "", "UTF-8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCharset(tt.mimeType, "UTF-8"))
		})
	}
}

func TestBytes(t *testing.T) {
	b := NewBytes("application/json; charset=UTF-8", []byte(`{"a":1}`))

	assert.Equal(t, "application/json; charset=UTF-8", b.MimeType())
	assert.Equal(t, "", b.FileName())
	assert.Equal(t, int64(7), b.Length())

	// Input side: readable more than once.
	for i := 0; i < 2; i++ {
		rc, err := b.In()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		assert.Equal(t, `{"a":1}`, string(data))
	}

	// Output side.
	buf := &bytes.Buffer{}
	require.NoError(t, b.WriteTo(buf))
	assert.Equal(t, `{"a":1}`, buf.String())
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.bin")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	f := NewFile("application/octet-stream", path)

	assert.Equal(t, "payload.bin", f.FileName())
	assert.Equal(t, "application/octet-stream", f.MimeType())
	assert.Equal(t, int64(5), f.Length())

	buf := &bytes.Buffer{}
	require.NoError(t, f.WriteTo(buf))
	assert.Equal(t, "hello", buf.String())
}

func TestFileMissing(t *testing.T) {
	f := NewFile("application/octet-stream", filepath.Join(t.TempDir(), "nope"))

	assert.Equal(t, int64(-1), f.Length())
	assert.Error(t, f.WriteTo(&bytes.Buffer{}))
}
