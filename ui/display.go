package ui

import (
	"fmt"

	"github.com/unotable/uno/card/color"
)

func Print(args ...interface{}) {
	fmt.Fprint(color.Stdout, args...)
}

func Println(args ...interface{}) {
	fmt.Fprintln(color.Stdout, args...)
}

func Printfln(format string, args ...interface{}) {
	Println(fmt.Sprintf(format, args...))
}
