package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/unotable/uno/card"
	"github.com/unotable/uno/card/color"
	"github.com/unotable/uno/event"
)

var (
	// ErrInvalidCardIndex rejects a play whose index is outside the hand.
	ErrInvalidCardIndex = errors.New("invalid card index")
	// ErrCardUnplayable rejects a play that does not match the top card.
	ErrCardUnplayable = errors.New("card is not playable on the current top card")
	// ErrUnpickedColor rejects resolving a wildcard to the Unpicked sentinel.
	ErrUnpickedColor = errors.New("a wildcard must be given one of the four real colors")
)

// Game is the live table state: the fixed player seating, whose turn it is
// and in which direction, the card source, and the current top card. It is
// created by Lobby.Start and driven synchronously by a single caller.
type Game struct {
	players []*Player
	cycler  *Cycler
	deck    CardSource
	topCard *card.Card
}

func (g *Game) NumberOfPlayers() int {
	return len(g.players)
}

// Player returns the player whose turn it is.
func (g *Game) Player() *Player {
	return g.players[g.cycler.Current()]
}

func (g *Game) Players() []*Player {
	players := make([]*Player, len(g.players))
	copy(players, g.players)
	return players
}

// TopCard panics if no top card has been established yet, which cannot
// happen on a game returned by Lobby.Start.
func (g *Game) TopCard() card.Card {
	if g.topCard == nil {
		panic("uno: top card requested before game setup")
	}
	return *g.topCard
}

// NextTurn advances to the next player in the current direction.
func (g *Game) NextTurn() {
	g.cycler.Next()
}

// Reverse toggles the turn direction.
func (g *Game) Reverse() {
	g.cycler.Reverse()
	event.TurnReversed.Emit(event.TurnReversedPayload{
		Direction: g.TurnDirection(),
	})
}

func (g *Game) TurnDirection() string {
	if g.cycler.Reversed() {
		return "Counter Clockwise"
	}
	return "Clockwise"
}

// TurnOrder renders the seating with direction arrows, starting so that the
// active player is bracketed: "[A] -> B -> C" clockwise, "C <- B <- [A]"
// counter clockwise.
func (g *Game) TurnOrder() string {
	length := len(g.players)
	var b strings.Builder
	for i := 1; i <= length; i++ {
		if g.cycler.Reversed() {
			name := g.players[g.cycler.Peek(i)].Name()
			if i == length {
				fmt.Fprintf(&b, "[%s]", name)
			} else {
				fmt.Fprintf(&b, "%s <- ", name)
			}
		} else {
			name := g.players[g.cycler.Peek(i-1)].Name()
			switch {
			case i == 1:
				fmt.Fprintf(&b, "[%s] -> ", name)
			case i == length:
				b.WriteString(name)
			default:
				fmt.Fprintf(&b, "%s -> ", name)
			}
		}
	}
	return b.String()
}

// Play lets the current player play the card at the 0-based index. On
// success the card leaves the hand and becomes the new top card.
func (g *Game) Play(cardIndex int) error {
	player := g.Player()
	chosenCard, inHand := player.Hand().Card(cardIndex)
	if !inHand {
		return ErrInvalidCardIndex
	}
	if !Playable(chosenCard, g.TopCard()) {
		return ErrCardUnplayable
	}

	played := player.Hand().RemoveAt(cardIndex)
	g.topCard = &played
	event.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: player.Name(),
		Card:       played,
	})
	return nil
}

// DrawOne draws a single card for the current player. A playable draw is
// played immediately instead of entering the hand (house rule); the drawn
// card and whether it auto-played are reported either way.
func (g *Game) DrawOne() (card.Card, bool) {
	player := g.Player()
	drawn := g.deck.DrawOne()
	if Playable(drawn, g.TopCard()) {
		g.topCard = &drawn
		event.CardPlayed.Emit(event.CardPlayedPayload{
			PlayerName: player.Name(),
			Card:       drawn,
			AutoPlayed: true,
		})
		return drawn, true
	}

	player.Hand().AddCard(drawn)
	event.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerName: player.Name(),
		Amount:     1,
	})
	return drawn, false
}

// DrawMultiple deals amount penalty cards into the current player's hand
// without checking playability.
func (g *Game) DrawMultiple(amount int) {
	player := g.Player()
	player.Hand().AddCards(g.deck.Draw(amount))
	event.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerName: player.Name(),
		Amount:     amount,
	})
}

// SetWildcardColor resolves the top card's color after a wildcard was
// played. Picking Unpicked is rejected; a non-wildcard top card is left
// untouched.
func (g *Game) SetWildcardColor(chosenColor color.Color) error {
	if chosenColor == color.Unpicked {
		return ErrUnpickedColor
	}
	if !g.TopCard().IsWild() {
		return nil
	}

	resolved := g.topCard.WithColor(chosenColor)
	g.topCard = &resolved
	event.ColorPicked.Emit(event.ColorPickedPayload{
		PlayerName: g.Player().Name(),
		Color:      chosenColor,
	})
	return nil
}
