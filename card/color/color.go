package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Color is the suit of a card. Unpicked is the sentinel carried by wildcard
// cards until their color is chosen; no other card ever has it.
type Color int

const (
	Unpicked Color = iota
	Red
	Green
	Blue
	Yellow
)

var names = map[Color]string{
	Unpicked: "Unpicked",
	Red:      "Red",
	Green:    "Green",
	Blue:     "Blue",
	Yellow:   "Yellow",
}

var paints = map[Color]func(string, ...interface{}) string{
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
}

// Stdout understands the ANSI sequences Paint produces, including on Windows.
var Stdout io.Writer = color.Output

func (c Color) String() string {
	name, known := names[c]
	if !known {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return name
}

// Paint colors text for the terminal. Unpicked paints nothing.
func (c Color) Paint(text string) string {
	paint, colored := paints[c]
	if !colored {
		return text
	}
	return paint(text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	return c.Paint(fmt.Sprintf(format, args...))
}

// Picked lists the four playable colors in prompt order.
func Picked() []Color {
	return []Color{Red, Green, Blue, Yellow}
}

// ByName resolves a color from user input, case-insensitively. Unpicked is
// not nameable; it is never a valid choice.
func ByName(name string) (Color, error) {
	for _, c := range Picked() {
		if strings.EqualFold(names[c], name) {
			return c, nil
		}
	}
	return Unpicked, fmt.Errorf("invalid color '%s'", name)
}
