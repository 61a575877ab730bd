package game

import (
	"github.com/unotable/uno/card"
)

// Hand is the ordered cards a player holds, in draw order. Players address
// cards by position, so removal must shift later cards down rather than
// reorder.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCard(c card.Card) {
	h.cards = append(h.cards, c)
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Card(index int) (card.Card, bool) {
	if index < 0 || index >= len(h.cards) {
		return card.Card{}, false
	}
	return h.cards[index], true
}

// RemoveAt splices the card at index out of the hand, preserving the order
// of the remaining cards.
func (h *Hand) RemoveAt(index int) card.Card {
	removed := h.cards[index]
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return removed
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Size() int {
	return len(h.cards)
}

// PlayableCards filters the hand down to cards playable on topCard.
func (h *Hand) PlayableCards(topCard card.Card) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h.cards {
		if Playable(candidateCard, topCard) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}
