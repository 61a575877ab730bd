package card

import (
	"fmt"

	"github.com/unotable/uno/card/color"
)

// Type is the closed set of card kinds.
type Type int

const (
	TypeNumber Type = iota
	TypeSkip
	TypeReverse
	TypeDrawTwo
	TypeWildcard
	TypeDrawFourWildcard
)

func (t Type) String() string {
	switch t {
	case TypeNumber:
		return "Number"
	case TypeSkip:
		return "Skip"
	case TypeReverse:
		return "Reverse"
	case TypeDrawTwo:
		return "Draw 2"
	case TypeWildcard:
		return "Wildcard"
	case TypeDrawFourWildcard:
		return "Draw 4 Wildcard"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Card is an immutable value. Wildcard-typed cards carry color.Unpicked
// until resolved with WithColor; every other type carries a real color.
type Card struct {
	cardType Type
	number   int
	color    color.Color
}

func NewNumberCard(cardColor color.Color, number int) Card {
	return Card{cardType: TypeNumber, number: number, color: cardColor}
}

func NewSkipCard(cardColor color.Color) Card {
	return Card{cardType: TypeSkip, color: cardColor}
}

func NewReverseCard(cardColor color.Color) Card {
	return Card{cardType: TypeReverse, color: cardColor}
}

func NewDrawTwoCard(cardColor color.Color) Card {
	return Card{cardType: TypeDrawTwo, color: cardColor}
}

func NewWildCard() Card {
	return Card{cardType: TypeWildcard, color: color.Unpicked}
}

func NewWildDrawFourCard() Card {
	return Card{cardType: TypeDrawFourWildcard, color: color.Unpicked}
}

func (c Card) Type() Type {
	return c.cardType
}

// Number is only meaningful when Type is TypeNumber.
func (c Card) Number() int {
	return c.number
}

func (c Card) Color() color.Color {
	return c.color
}

func (c Card) IsWild() bool {
	return c.cardType == TypeWildcard || c.cardType == TypeDrawFourWildcard
}

// WithColor returns a copy of the card carrying the given color. Used to
// resolve a played wildcard once its color is picked.
func (c Card) WithColor(cardColor color.Color) Card {
	c.color = cardColor
	return c
}

func (c Card) String() string {
	var label string
	if c.cardType == TypeNumber {
		label = fmt.Sprintf("%d", c.number)
	} else {
		label = c.cardType.String()
	}
	if c.color == color.Unpicked {
		return label
	}
	return fmt.Sprintf("%s %s", c.color, label)
}

// Painted renders the card for the terminal in its color.
func (c Card) Painted() string {
	return c.color.Paint(c.String())
}
