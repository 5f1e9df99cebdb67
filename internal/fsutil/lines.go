// Package fsutil provides file system utility functions.
package fsutil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// ErrNotText is wrapped by FileAccessError when the content is not valid UTF-8.
var ErrNotText = errors.New("content is not valid UTF-8 text")

// FileAccessError reports a failure to open, read or decode an input file.
type FileAccessError struct {
	Op   string // "open", "read" or "decode"
	Path string
	Err  error
}

// Error implements the error interface for FileAccessError.
func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// ReadLines reads the whole file at path and splits it into lines. Every
// line keeps its terminator exactly as stored; a final fragment without one
// is returned as is. The file is closed before ReadLines returns.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Op: "open", Path: path, Err: unwrapPathError(err)}
	}
	defer f.Close()

	lines, err := SplitLines(f)
	if err != nil {
		var accessErr *FileAccessError
		if errors.As(err, &accessErr) {
			accessErr.Path = path
			return nil, accessErr
		}
		return nil, &FileAccessError{Op: "read", Path: path, Err: unwrapPathError(err)}
	}
	return lines, nil
}

// SplitLines reads r to EOF and returns its lines with terminators intact.
func SplitLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if !utf8.ValidString(line) {
				return nil, &FileAccessError{Op: "decode", Err: fmt.Errorf("line %d: %w", len(lines)+1, ErrNotText)}
			}
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// unwrapPathError strips the *fs.PathError wrapper so the path is not
// repeated in the final message.
func unwrapPathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
