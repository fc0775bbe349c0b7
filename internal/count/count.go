// Package count tallies lines, words and characters of a text stream.
package count

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// StdinName is the input name that selects standard input instead of a file.
const StdinName = "-"

// FileInfo holds the counters for one input.
type FileInfo struct {
	Lines uint64
	Words uint64
	Chars uint64
}

// Add returns the element-wise sum of two results.
func (fi FileInfo) Add(other FileInfo) FileInfo {
	return FileInfo{
		Lines: fi.Lines + other.Lines,
		Words: fi.Words + other.Words,
		Chars: fi.Chars + other.Chars,
	}
}

// IOError reports a failure to open or read a single input.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

// Count reads r line by line until end of stream.
//
// Every non-empty read counts as a line, so a final line without a
// terminator is still counted. Characters are Unicode scalar values and
// include the terminators.
func Count(r io.Reader) (FileInfo, error) {
	var (
		br  = bufio.NewReader(r)
		res FileInfo
	)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			res.Lines++
			res.Words += uint64(len(strings.Fields(line)))
			res.Chars += uint64(utf8.RuneCountInString(line))
		}
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return FileInfo{}, err
		}
	}
}

// CountPath counts the file at path, or stdin when path is StdinName.
// The file is closed before CountPath returns. Failures are *IOError.
func CountPath(path string, stdin io.Reader) (FileInfo, error) {
	if path == StdinName {
		info, err := Count(stdin)
		if err != nil {
			return FileInfo{}, newIOError(path, err)
		}
		return info, nil
	}

	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return FileInfo{}, newIOError(path, err)
	}
	defer func() { _ = f.Close() }()

	info, err := Count(f)
	if err != nil {
		return FileInfo{}, newIOError(path, err)
	}
	return info, nil
}

// newIOError strips the *fs.PathError layer so the path is not printed twice.
func newIOError(path string, err error) *IOError {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	return &IOError{Path: path, Err: err}
}
