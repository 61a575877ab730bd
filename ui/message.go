package ui

import (
	"github.com/unotable/uno/card"
	"github.com/unotable/uno/card/color"
)

var Message = MessageWriter{}

// MessageWriter prints every player-facing line of the session.
type MessageWriter struct{}

func (m MessageWriter) Welcome() {
	Printfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
	Println()
}

func (m MessageWriter) LobbyIntro() {
	Println("To start the game, you must add at least 2 players, then select 'start'")
	Println()
}

func (m MessageWriter) PlayerAdded(playerName string) {
	Printfln("Added player %s!", playerName)
	Println()
}

func (m MessageWriter) UsernameTaken(playerName string) {
	Printfln("Username '%s' is already taken. Please choose a different username", playerName)
	Println()
}

func (m MessageWriter) InvalidMenuOption() {
	Println("Please enter an option in the range 1 - 2!")
	Println()
}

func (m MessageWriter) GameStarted(playerName string, turnOrder string, topCard card.Card) {
	Println()
	Printfln("Starting the game! The starting player is %s", playerName)
	Printfln("Turn order: %s", turnOrder)
	Println()
	Printfln("The top card is a %s", topCard.Painted())
	Println()
}

func (m MessageWriter) NewStartingPlayer(playerName string) {
	Printfln("The new starting player is %s", playerName)
	Println()
}

func (m MessageWriter) TurnSkipped(playerName string) {
	Printfln("%s had their turn skipped!", playerName)
	Println()
}

func (m MessageWriter) DirectionReversed(direction string, turnOrder string) {
	Printfln("Reversing the turn direction! The new direction is %s", direction)
	Printfln("New turn order: %s", turnOrder)
	Println()
}

func (m MessageWriter) PenaltyDrawn(playerName string, amount int) {
	Printfln("%s drew %d cards", playerName, amount)
}

func (m MessageWriter) WildcardColorPicked(chosenColor color.Color) {
	Printfln("The wildcard color is now %s", chosenColor.Paint(chosenColor.String()))
	Println()
}

func (m MessageWriter) DrewPlayableCard(topCard card.Card) {
	Printfln("You drew a %s! It's playable on the current card!", topCard.Painted())
}

func (m MessageWriter) DrewUnplayableCard(drawnCard card.Card) {
	Printfln("You drew a %s! It's not playable on the current card!", drawnCard.Painted())
}

func (m MessageWriter) InvalidCardIndex(handSize int) {
	Printfln("Please enter a card index in the range 1 - %d, or type 'draw' to draw", handSize)
	Println()
}

func (m MessageWriter) CardUnplayable(topCard card.Card) {
	Printfln("The card you picked cannot be played on a %s. "+
		"Select a different card or choose the 'draw' option", topCard.Painted())
	Println()
}

func (m MessageWriter) CardPlayed(playerName string, playedCard card.Card) {
	Printfln("%s played a %s!", playerName, playedCard.Painted())
	Println()
}

func (m MessageWriter) UnableToPlay(playerName string) {
	Printfln("%s was unable to play a card! Their turn is over", playerName)
	Println()
}

func (m MessageWriter) WinnerFound(playerName string) {
	Printfln("%s has played their last card! They are the winner!", playerName)
	Println()
}
