package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
)

var (
	crashMu     sync.Mutex
	crashScreen tcell.Screen

	// Swapped in tests
	crashOutput io.Writer = os.Stderr
	exit                  = os.Exit
)

// SetCrashScreen registers the screen to restore before a crash report is printed
// Pass nil once the screen has been finalised normally
func SetCrashScreen(screen tcell.Screen) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashScreen = screen
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	screen := crashScreen
	crashScreen = nil
	crashMu.Unlock()

	// Leave raw mode and the alternate screen so the trace is readable
	if screen != nil {
		screen.Fini()
	}

	fmt.Fprintf(crashOutput, "\n\x1b[31mLUCKY DRAW CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\n%s\n", debug.Stack())

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
