package wordlist

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"wlinflate/helper"
	"wlinflate/pkg/transform"
)

// Wordlist expands base words read from a line source into their permutations.
// It is single-pass: once exhausted it cannot be rewound.
type Wordlist struct {
	Path string

	source io.Reader
	reader *bufio.Reader
	set    *transform.Set

	perms []string
	head  int

	baseCount int
	emitted   int
	err       error
}

// New returns a Wordlist reading base words from r
func New(r io.Reader, set *transform.Set) *Wordlist {
	if set == nil {
		set = transform.Parse("", "", "", "")
	}
	return &Wordlist{
		source: r,
		reader: bufio.NewReader(r),
		set:    set,
	}
}

// Open counts the lines of the file at path and returns a Wordlist reading from it
func Open(path string, set *transform.Set) (*Wordlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can't open wordlist %s", path)
	}
	count, err := helper.CountLines(f)
	f.Close()
	if err != nil {
		return nil, errors.Wrapf(err, "can't read wordlist %s", path)
	}

	f, err = os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can't open wordlist %s", path)
	}
	w := New(f, set)
	w.Path = path
	w.baseCount = count
	return w, nil
}

// Next returns the next permutation. It returns io.EOF once every base word
// has been expanded and emitted.
func (w *Wordlist) Next() (string, error) {
	if w.err != nil {
		return "", w.err
	}
	for w.head == len(w.perms) {
		w.perms = w.perms[:0]
		w.head = 0

		line, err := w.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			w.err = errors.Wrap(err, "can't read from wordlist")
			return "", w.err
		}
		if line == "" && err == io.EOF {
			w.err = io.EOF
			return "", w.err
		}
		w.expand(helper.TrimNewline(line))
	}

	word := w.perms[w.head]
	w.perms[w.head] = ""
	w.head++
	w.emitted++
	return word, nil
}

// expand fills the buffer with every permutation of word
func (w *Wordlist) expand(word string) {
	if strings.Contains(word, transform.Placeholder) {
		for _, s := range w.set.Swap {
			w.perms = append(w.perms, strings.ReplaceAll(word, transform.Placeholder, s))
		}
	} else {
		w.perms = append(w.perms, word)
	}

	w.perms = grow(w.perms, w.set.Prepend, func(entry, p string) string { return p + entry })
	w.perms = grow(w.perms, w.set.Append, func(entry, a string) string { return entry + a })
	w.perms = grow(w.perms, w.set.Extensions, func(entry, e string) string { return entry + e })
}

// grow appends join(entry, affix) for every entry present before the call
// and every affix. Entries added here are not visited again.
func grow(perms, affixes []string, join func(entry, affix string) string) []string {
	n := len(perms)
	for i := 0; i < n; i++ {
		for _, a := range affixes {
			perms = append(perms, join(perms[i], a))
		}
	}
	return perms
}

// Close releases the underlying source
func (w *Wordlist) Close() error {
	if c, ok := w.source.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// BaseCount returns the number of newline-terminated lines of the wordlist file
func (w *Wordlist) BaseCount() int {
	return w.baseCount
}

// EstimatedCount returns a rough estimate of the number of permutations
func (w *Wordlist) EstimatedCount() int {
	return w.set.Estimate(w.baseCount)
}

// Emitted returns the number of permutations returned so far
func (w *Wordlist) Emitted() int {
	return w.emitted
}
