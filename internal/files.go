package internal

import (
	"log"
	"os"
	"path/filepath"
)

// FileOpen is os.Open with a panic in place of an error, for callers that
// treat a missing or unreadable input file as a fatal configuration
// mistake rather than a recoverable runtime condition.
func FileOpen(filename string) *os.File {
	f, err := os.Open(filename)
	if err != nil {
		log.Panic(err)
	}
	return f
}

// FileCreate is os.Create with a panic in place of an error.
func FileCreate(filename string) *os.File {
	f, err := os.Create(filename)
	if err != nil {
		log.Panic(err)
	}
	return f
}

// Close is f.Close() with a panic in place of an error.
func Close(f *os.File) {
	if err := f.Close(); err != nil {
		log.Panic(err)
	}
}

// Write is f.Write(b) with a panic in place of an error.
func Write(f *os.File, b []byte) int {
	n, err := f.Write(b)
	if err != nil {
		log.Panic(err)
	}
	return n
}

// WriteString is f.WriteString(s) with a panic in place of an error.
func WriteString(f *os.File, s string) int {
	n, err := f.WriteString(s)
	if err != nil {
		log.Panic(err)
	}
	return n
}

// MkdirAll is os.MkdirAll with a panic in place of an error.
func MkdirAll(path string, perm os.FileMode) {
	if err := os.MkdirAll(path, perm); err != nil {
		log.Panic(err)
	}
}

func Directory(file string) (files []string, err error) {
	info, err := os.Stat(file)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{filepath.Base(file)}, nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer func() {
		nerr := f.Close()
		if err == nil {
			err = nerr
		}
	}()
	return f.Readdirnames(0)
}

func FullPathname(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		return filename, nil
	}
	wd, err := os.Getwd()
	return filepath.Join(wd, filename), err
}
