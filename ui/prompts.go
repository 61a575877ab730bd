package ui

import (
	"bufio"
	"os"
	"strings"

	"github.com/unotable/uno/card/color"
)

var input = bufio.NewScanner(os.Stdin)

// PromptLine prints the prompt without a trailing newline and returns the
// next input line, trimmed. Names and menu choices are whole lines, so this
// reads lines rather than words.
func PromptLine(prompt string) string {
	Print(prompt)
	if !input.Scan() {
		return ""
	}
	return strings.TrimSpace(input.Text())
}

// PromptColor runs the numbered wildcard color menu until a valid choice is
// entered.
func PromptColor() color.Color {
	for {
		choice := PromptLine("Select a color for the wildcard:\n" +
			"1 - Red\n" +
			"2 - Green\n" +
			"3 - Blue\n" +
			"4 - Yellow\n" +
			"Your choice: ")
		switch choice {
		case "1":
			return color.Red
		case "2":
			return color.Green
		case "3":
			return color.Blue
		case "4":
			return color.Yellow
		default:
			Println("Enter a value between 1 and 4!")
			Println()
		}
	}
}

// WaitForEnter holds the terminal open until the player presses enter.
func WaitForEnter(prompt string) {
	Print(prompt)
	input.Scan()
}
