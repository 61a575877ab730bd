package game

import (
	"fmt"
	"strings"
)

// Player is a seat at the table: a unique name and the hand it holds.
type Player struct {
	name string
	hand *Hand
}

func NewPlayer(name string) *Player {
	return &Player{
		name: name,
		hand: NewHand(),
	}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Hand() *Hand {
	return p.hand
}

// String lists the hand with the 1-based indices players use to pick a card.
func (p *Player) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s's Cards:\n", p.name)
	for index, handCard := range p.hand.Cards() {
		fmt.Fprintf(&b, "%d. %s\n", index+1, handCard.Painted())
	}
	return b.String()
}
