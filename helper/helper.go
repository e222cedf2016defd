package helper

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// TrimNewline removes a trailing "\n" and the "\r" preceding it, if any
func TrimNewline(s string) string {
	if !strings.HasSuffix(s, "\n") {
		return s
	}
	s = s[:len(s)-1]
	return strings.TrimSuffix(s, "\r")
}

// CountLines returns the number of newline-terminated lines read from r
func CountLines(r io.Reader) (int, error) {
	reader := bufio.NewReaderSize(r, 64*1024)
	buf := make([]byte, 32*1024)
	count := 0
	for {
		n, err := reader.Read(buf)
		count += bytes.Count(buf[:n], []byte{'\n'})
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, err
		}
	}
}
