package game

import (
	"github.com/unotable/uno/card"
)

// Playable reports whether candidateCard may be played on topCard. A
// wildcard plays on anything; the reverse is not automatic: onto a wildcard
// whose color is still Unpicked only the color branch applies, which stays
// false until the wildcard's color is set.
func Playable(candidateCard card.Card, topCard card.Card) bool {
	switch candidateCard.Type() {
	case card.TypeWildcard, card.TypeDrawFourWildcard:
		return true
	case card.TypeSkip:
		if topCard.Type() == card.TypeSkip {
			return true
		}
	case card.TypeReverse:
		if topCard.Type() == card.TypeReverse {
			return true
		}
	case card.TypeDrawTwo:
		if topCard.Type() == card.TypeDrawTwo {
			return true
		}
	case card.TypeNumber:
		if topCard.Type() == card.TypeNumber && topCard.Number() == candidateCard.Number() {
			return true
		}
	}
	return candidateCard.Color() == topCard.Color()
}
