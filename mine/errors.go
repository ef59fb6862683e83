package mine

import (
	"errors"
	"fmt"

	"github.com/mezonai/blockmine/block"
	"github.com/mezonai/blockmine/window"
)

var (
	ErrInvalidInitialWindow = window.ErrInvalidInitialWindow
	ErrArithmeticOverflow   = block.ErrArithmeticOverflow
	ErrInvalidBlock         = errors.New("invalid block")
)

// InvalidBlockError reports a candidate that is not the sum of two blocks at
// distinct positions in the current window.
type InvalidBlockError struct {
	Value block.Block
	// Position is the 1-based index of the candidate in the whole stream,
	// seed included.
	Position uint64
	Window   int
}

func (e *InvalidBlockError) Error() string {
	return fmt.Sprintf("invalid block %s at position %d: not the sum of two of the previous %d blocks",
		e.Value.Dec(), e.Position, e.Window)
}

func (e *InvalidBlockError) Unwrap() error {
	return ErrInvalidBlock
}

// IsInvalidBlock reports whether err is a rejected candidate and returns its details.
func IsInvalidBlock(err error) (*InvalidBlockError, bool) {
	var ibe *InvalidBlockError
	if errors.As(err, &ibe) {
		return ibe, true
	}
	return nil, false
}
