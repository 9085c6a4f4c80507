package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Compression is picked by file extension.
const (
	extGzip = ".gz"
	extZstd = ".zst"
	extXz   = ".xz"
)

// OpenInput opens the named model file, or stdin for "-", and undoes any
// compression its name indicates.
func openInput(name string) (io.ReadCloser, error) {
	var f *os.File
	if name == "-" {
		f = os.Stdin
	} else {
		var err error
		f, err = os.Open(name)
		if err != nil {
			return nil, err
		}
	}
	r, err := decompress(filepath.Ext(name), bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, err
	}
	return readCloser{Reader: r, close: f.Close}, nil
}

func decompress(ext string, r io.Reader) (io.Reader, error) {
	switch strings.ToLower(ext) {
	case extGzip:
		return gzip.NewReader(r)
	case extZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case extXz:
		return xz.NewReader(r)
	}
	return r, nil
}

// CreateOutput creates the named file, compressing what is written to it
// according to its name. The returned WriteCloser must be closed to flush
// the compressor.
func createOutput(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	w, err := compress(filepath.Ext(name), f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return w, nil
}

func compress(ext string, f io.WriteCloser) (io.WriteCloser, error) {
	var w io.WriteCloser
	switch strings.ToLower(ext) {
	case extGzip:
		w = gzip.NewWriter(f)
	case extZstd:
		enc, err := zstd.NewWriter(f)
		if err != nil {
			return nil, err
		}
		w = enc
	case extXz:
		enc, err := xz.NewWriter(f)
		if err != nil {
			return nil, err
		}
		w = enc
	default:
		return f, nil
	}
	return writeCloser{WriteCloser: w, next: f}, nil
}

// StripExt removes any compression extension and then the format
// extension from a file name.
func stripExt(name string) string {
	name = filepath.Base(name)
	switch strings.ToLower(filepath.Ext(name)) {
	case extGzip, extZstd, extXz:
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r readCloser) Close() error {
	if c, ok := r.Reader.(io.Closer); ok {
		c.Close()
	}
	return r.close()
}

// WriteCloser closes the compressor, then the underlying file.
type writeCloser struct {
	io.WriteCloser
	next io.Closer
}

func (w writeCloser) Close() error {
	if err := w.WriteCloser.Close(); err != nil {
		w.next.Close()
		return err
	}
	return w.next.Close()
}
