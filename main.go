package main

import (
	"os"
	"runtime/debug"

	"github.com/mezonai/blockmine/cmd"
	"github.com/mezonai/blockmine/logx"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			_ = logx.Errorf("BLOCKMINE CRASHED: %v\n%s", r, debug.Stack())
			os.Exit(1)
		}
	}()

	cmd.Execute()
}
