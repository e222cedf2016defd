package output

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Source produces words until it returns io.EOF
type Source interface {
	Next() (string, error)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Create returns the destination for path, standard output if path is empty
func Create(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can't create output file %s", path)
	}
	return f, nil
}

// Drain writes every word of src to w, one per line, and returns how many were written.
// The output is flushed once, after src is exhausted.
func Drain(src Source, w io.Writer) (int, error) {
	writer := bufio.NewWriter(w)
	count := 0
	for {
		word, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, err
		}
		if _, err := writer.WriteString(word); err != nil {
			return count, errors.Wrap(err, "can't write output")
		}
		if err := writer.WriteByte('\n'); err != nil {
			return count, errors.Wrap(err, "can't write output")
		}
		count++
	}
	if err := writer.Flush(); err != nil {
		return count, errors.Wrap(err, "can't flush output")
	}
	return count, nil
}
