package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/ratel-online/cardgame/card/color"
)

// Stdout and Stdin are where the terminal host writes and reads.
var (
	Stdout io.Writer = color.Stdout
	Stdin  io.Reader = os.Stdin
)

func Printfln(format string, args ...interface{}) {
	Println(fmt.Sprintf(format, args...))
}

func Println(args ...interface{}) {
	fmt.Fprintln(Stdout, args...)
}

// Print writes a message that already ends in a newline.
func Print(message string) {
	fmt.Fprint(Stdout, message)
}
