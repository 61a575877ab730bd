package game

import (
	"math/rand"
	"time"

	"github.com/unotable/uno/card"
	"github.com/unotable/uno/card/color"
)

// CardSource produces cards one at a time, without ever running out.
type CardSource interface {
	DrawOne() card.Card
	Draw(amount int) []card.Card
}

// Deck is an unbounded random card source. Instead of tracking a physical
// 108-card deck and reshuffling, every draw samples a uniform seed in
// [0,107] and maps it to a card, which gives the same long-run type and
// color proportions as the standard deck.
type Deck struct {
	rng *rand.Rand
}

func NewDeck() *Deck {
	return NewSeededDeck(time.Now().UnixNano())
}

// NewSeededDeck returns a deck whose draw sequence is fully determined by
// the seed.
func NewSeededDeck(seed int64) *Deck {
	return &Deck{rng: rand.New(rand.NewSource(seed))}
}

func (d *Deck) DrawOne() card.Card {
	return cardForSeed(d.rng.Intn(deckSize))
}

func (d *Deck) Draw(amount int) []card.Card {
	cards := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		cards = append(cards, d.DrawOne())
	}
	return cards
}

const (
	deckSize    = 108
	typeBuckets = 27
)

// cardForSeed maps a seed in [0,107] to a card. The 27 type buckets mirror
// one color group of the standard deck: one zero, two of each 1-9, two each
// of Skip/Reverse/DrawTwo, plus one Wildcard and one Draw 4 Wildcard.
// Enumerating all 108 seeds yields exactly the standard deck.
func cardForSeed(seed int) card.Card {
	cardColor := colorForSeed(seed / typeBuckets)
	switch bucket := seed % typeBuckets; {
	case bucket == 0:
		return card.NewNumberCard(cardColor, 0)
	case bucket <= 9:
		return card.NewNumberCard(cardColor, bucket)
	case bucket <= 18:
		return card.NewNumberCard(cardColor, bucket-9)
	case bucket <= 20:
		return card.NewSkipCard(cardColor)
	case bucket <= 22:
		return card.NewReverseCard(cardColor)
	case bucket <= 24:
		return card.NewDrawTwoCard(cardColor)
	case bucket == 25:
		return card.NewWildCard()
	default:
		return card.NewWildDrawFourCard()
	}
}

func colorForSeed(seed int) color.Color {
	switch seed {
	case 0:
		return color.Red
	case 1:
		return color.Green
	case 2:
		return color.Blue
	default:
		return color.Yellow
	}
}
