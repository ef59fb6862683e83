// Package loader reads block streams from newline-separated decimal text.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/mezonai/blockmine/block"
	"github.com/pkg/errors"
)

// ParseError reports the line a bad value was found on.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Scan yields the blocks of r one line at a time. Blank lines are skipped and
// surrounding whitespace is trimmed. Scanning stops at the first error, which
// is yielded with a zero block.
func Scan(r io.Reader) iter.Seq2[block.Block, error] {
	return func(yield func(block.Block, error) bool) {
		scanner := bufio.NewScanner(r)
		line := 0
		for scanner.Scan() {
			line++
			text := scanner.Text()
			if isBlank(text) {
				continue
			}
			b, err := block.FromDecimal(text)
			if err != nil {
				yield(block.Block{}, &ParseError{Line: line, Err: err})
				return
			}
			if !yield(b, nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(block.Block{}, errors.Wrapf(err, "read after line %d", line))
		}
	}
}

// Read returns every block of r.
func Read(r io.Reader) ([]block.Block, error) {
	var blocks []block.Block
	for b, err := range Scan(r) {
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// ReadFile returns every block of the file at path.
func ReadFile(path string) ([]block.Block, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open block file")
	}
	defer f.Close()

	blocks, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read block file %s", path)
	}
	return blocks, nil
}

// Write emits blocks one per line, the format Read accepts.
func Write(w io.Writer, blocks []block.Block) error {
	bw := bufio.NewWriter(w)
	for _, b := range blocks {
		if _, err := bw.WriteString(b.Dec() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func isBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\r':
		default:
			return false
		}
	}
	return true
}
