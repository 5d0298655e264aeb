package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// crashScreen is restored before a crash report is printed
var crashScreen tcell.Screen

// handleCrash restores the terminal and prints the stack trace
func handleCrash(r any) {
	if r == nil {
		return
	}
	if crashScreen != nil {
		crashScreen.Fini()
	}

	fmt.Fprintf(os.Stderr, "\noverlay-sandbox crashed: %v\nStack Trace:\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// goSafe runs fn in a new goroutine that restores the terminal on panic
func goSafe(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				handleCrash(r)
			}
		}()
		fn()
	}()
}
