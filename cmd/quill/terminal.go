package main

import (
	"os"

	"golang.org/x/term"
)

func isTerminal(stream any) bool {
	if file, ok := stream.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}

// terminalWidth reports the column count of out when it is a terminal.
func terminalWidth(out any) (int, bool) {
	file, ok := out.(*os.File)
	if !ok || !termIsTerminal(int(file.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}
