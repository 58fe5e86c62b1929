package main

import (
	"bytes"
	"io"
	"os"
)

func readAll(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return noopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type noopWriteCloser struct {
	io.Writer
}

func (noopWriteCloser) Close() error { return nil }

func displayName(path, fallback string) string {
	if path == "" {
		return fallback
	}
	return path
}
