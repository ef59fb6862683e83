package exception

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/mezonai/blockmine/block"
	"github.com/mezonai/blockmine/logx"
	"github.com/mezonai/blockmine/monitoring"
)

// Guard runs fn and turns a panic carrying block.ErrArithmeticOverflow into a
// returned error. Any other panic is logged and re-raised.
func Guard(name string, fn func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		monitoring.IncreasePanicCount()
		if perr, ok := r.(error); ok && errors.Is(perr, block.ErrArithmeticOverflow) {
			logx.Error("Panic in: ", name, " ", perr)
			err = fmt.Errorf("%s: %w", name, perr)
			return
		}
		logx.Error("Panic in: ", name, r, string(debug.Stack()))
		panic(r)
	}()
	return fn()
}
