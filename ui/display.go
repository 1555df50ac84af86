package ui

import (
	"fmt"

	"uno/card/colour"
)

func Printfln(format string, args ...interface{}) {
	Println(fmt.Sprintf(format, args...))
}

func Println(args ...interface{}) {
	fmt.Fprintln(colour.Stdout, args...)
}
