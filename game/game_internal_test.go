package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unotable/uno/card"
	"github.com/unotable/uno/card/color"
)

// scriptedSource feeds a fixed card sequence so a test can stage exact draws.
type scriptedSource struct {
	cards []card.Card
}

func (s *scriptedSource) DrawOne() card.Card {
	drawn := s.cards[0]
	s.cards = s.cards[1:]
	return drawn
}

func (s *scriptedSource) Draw(amount int) []card.Card {
	drawn := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		drawn = append(drawn, s.DrawOne())
	}
	return drawn
}

func newTestGame(topCard card.Card, source CardSource, hands ...[]card.Card) *Game {
	players := make([]*Player, 0, len(hands))
	for i, hand := range hands {
		player := NewPlayer(string(rune('A' + i)))
		player.Hand().AddCards(hand)
		players = append(players, player)
	}
	return &Game{
		players: players,
		cycler:  NewCycler(len(players)),
		deck:    source,
		topCard: &topCard,
	}
}

func TestPlay(t *testing.T) {
	t.Run("moves_the_card_from_hand_to_top", func(t *testing.T) {
		g := newTestGame(
			card.NewNumberCard(color.Blue, 7),
			&scriptedSource{},
			[]card.Card{
				card.NewNumberCard(color.Red, 3),
				card.NewNumberCard(color.Blue, 4),
				card.NewWildCard(),
			},
			[]card.Card{card.NewNumberCard(color.Green, 1)},
		)

		require.NoError(t, g.Play(1))
		assert.Equal(t, card.NewNumberCard(color.Blue, 4), g.TopCard())
		assert.Equal(t, 2, g.Player().Hand().Size())
		// remaining cards keep their relative order
		assert.Equal(t, []card.Card{
			card.NewNumberCard(color.Red, 3),
			card.NewWildCard(),
		}, g.Player().Hand().Cards())
	})

	t.Run("rejects_an_out_of_bounds_index", func(t *testing.T) {
		g := newTestGame(
			card.NewNumberCard(color.Blue, 7),
			&scriptedSource{},
			[]card.Card{card.NewNumberCard(color.Blue, 4)},
			[]card.Card{card.NewNumberCard(color.Green, 1)},
		)

		require.ErrorIs(t, g.Play(1), ErrInvalidCardIndex)
		require.ErrorIs(t, g.Play(-1), ErrInvalidCardIndex)
		assert.Equal(t, 1, g.Player().Hand().Size())
	})

	t.Run("rejects_an_unplayable_card_and_changes_nothing", func(t *testing.T) {
		g := newTestGame(
			card.NewNumberCard(color.Blue, 7),
			&scriptedSource{},
			[]card.Card{card.NewNumberCard(color.Red, 3)},
			[]card.Card{card.NewNumberCard(color.Green, 1)},
		)

		require.ErrorIs(t, g.Play(0), ErrCardUnplayable)
		assert.Equal(t, card.NewNumberCard(color.Blue, 7), g.TopCard())
		assert.Equal(t, []card.Card{card.NewNumberCard(color.Red, 3)}, g.Player().Hand().Cards())
	})

	t.Run("emptying_the_hand_wins", func(t *testing.T) {
		g := newTestGame(
			card.NewNumberCard(color.Blue, 5),
			&scriptedSource{},
			[]card.Card{card.NewNumberCard(color.Red, 5)},
			[]card.Card{card.NewNumberCard(color.Green, 1)},
		)

		require.NoError(t, g.Play(0))
		assert.True(t, g.Player().Hand().Empty())
		assert.Equal(t, card.NewNumberCard(color.Red, 5), g.TopCard())
	})
}

func TestDrawOne(t *testing.T) {
	t.Run("playable_draw_is_played_immediately", func(t *testing.T) {
		g := newTestGame(
			card.NewNumberCard(color.Blue, 7),
			&scriptedSource{cards: []card.Card{card.NewNumberCard(color.Blue, 2)}},
			[]card.Card{card.NewNumberCard(color.Red, 3)},
			[]card.Card{card.NewNumberCard(color.Green, 1)},
		)

		drawn, autoPlayed := g.DrawOne()
		assert.True(t, autoPlayed)
		assert.Equal(t, card.NewNumberCard(color.Blue, 2), drawn)
		assert.Equal(t, drawn, g.TopCard())
		// the auto-played card never enters the hand
		assert.Equal(t, 1, g.Player().Hand().Size())
	})

	t.Run("unplayable_draw_joins_the_hand", func(t *testing.T) {
		g := newTestGame(
			card.NewNumberCard(color.Blue, 7),
			&scriptedSource{cards: []card.Card{card.NewNumberCard(color.Red, 2)}},
			[]card.Card{card.NewNumberCard(color.Red, 3)},
			[]card.Card{card.NewNumberCard(color.Green, 1)},
		)

		drawn, autoPlayed := g.DrawOne()
		assert.False(t, autoPlayed)
		assert.Equal(t, card.NewNumberCard(color.Red, 2), drawn)
		assert.Equal(t, card.NewNumberCard(color.Blue, 7), g.TopCard())
		assert.Equal(t, 2, g.Player().Hand().Size())
	})
}

func TestDrawMultiple(t *testing.T) {
	g := newTestGame(
		card.NewNumberCard(color.Blue, 7),
		&scriptedSource{cards: []card.Card{
			// penalty draws ignore playability
			card.NewNumberCard(color.Blue, 1),
			card.NewNumberCard(color.Red, 2),
			card.NewSkipCard(color.Green),
			card.NewWildCard(),
		}},
		[]card.Card{},
		[]card.Card{card.NewNumberCard(color.Green, 1)},
	)

	g.DrawMultiple(4)
	assert.Equal(t, 4, g.Player().Hand().Size())
	assert.Equal(t, card.NewNumberCard(color.Blue, 7), g.TopCard())
}

func TestNextTurnAndReverse(t *testing.T) {
	g := newTestGame(
		card.NewNumberCard(color.Blue, 7),
		&scriptedSource{},
		nil, nil, nil,
	)

	assert.Equal(t, "A", g.Player().Name())
	g.NextTurn()
	assert.Equal(t, "B", g.Player().Name())
	g.Reverse()
	g.NextTurn()
	assert.Equal(t, "A", g.Player().Name())

	// a full cycle in either direction comes back around
	for i := 0; i < g.NumberOfPlayers(); i++ {
		g.NextTurn()
	}
	assert.Equal(t, "A", g.Player().Name())
}

func TestTurnDirection(t *testing.T) {
	g := newTestGame(card.NewNumberCard(color.Blue, 7), &scriptedSource{}, nil, nil)
	assert.Equal(t, "Clockwise", g.TurnDirection())
	g.Reverse()
	assert.Equal(t, "Counter Clockwise", g.TurnDirection())
	g.Reverse()
	assert.Equal(t, "Clockwise", g.TurnDirection())
}

func TestTurnOrder(t *testing.T) {
	g := newTestGame(card.NewNumberCard(color.Blue, 7), &scriptedSource{}, nil, nil, nil)

	assert.Equal(t, "[A] -> B -> C", g.TurnOrder())
	g.NextTurn()
	assert.Equal(t, "[B] -> C -> A", g.TurnOrder())

	g.Reverse()
	assert.Equal(t, "C <- A <- [B]", g.TurnOrder())
	g.NextTurn()
	assert.Equal(t, "B <- C <- [A]", g.TurnOrder())
}

func TestSetWildcardColor(t *testing.T) {
	t.Run("resolves_a_wildcard_top_card", func(t *testing.T) {
		g := newTestGame(card.NewWildCard(), &scriptedSource{}, nil, nil)

		require.NoError(t, g.SetWildcardColor(color.Red))
		assert.Equal(t, card.TypeWildcard, g.TopCard().Type())
		assert.Equal(t, color.Red, g.TopCard().Color())
	})

	t.Run("resolves_a_draw_four_top_card", func(t *testing.T) {
		g := newTestGame(card.NewWildDrawFourCard(), &scriptedSource{}, nil, nil)

		require.NoError(t, g.SetWildcardColor(color.Yellow))
		assert.Equal(t, card.TypeDrawFourWildcard, g.TopCard().Type())
		assert.Equal(t, color.Yellow, g.TopCard().Color())
	})

	t.Run("rejects_the_unpicked_sentinel", func(t *testing.T) {
		g := newTestGame(card.NewWildCard(), &scriptedSource{}, nil, nil)

		require.ErrorIs(t, g.SetWildcardColor(color.Unpicked), ErrUnpickedColor)
		assert.Equal(t, color.Unpicked, g.TopCard().Color())
	})

	t.Run("ignores_a_non_wildcard_top_card", func(t *testing.T) {
		g := newTestGame(card.NewNumberCard(color.Blue, 7), &scriptedSource{}, nil, nil)

		require.NoError(t, g.SetWildcardColor(color.Red))
		assert.Equal(t, card.NewNumberCard(color.Blue, 7), g.TopCard())
	})
}

func TestTopCardPanicsBeforeSetup(t *testing.T) {
	g := &Game{
		players: []*Player{NewPlayer("A"), NewPlayer("B")},
		cycler:  NewCycler(2),
		deck:    &scriptedSource{},
	}
	require.Panics(t, func() { g.TopCard() })
}

func TestStartingSkipAdvancesToTheOtherPlayer(t *testing.T) {
	g := newTestGame(
		card.NewSkipCard(color.Red),
		&scriptedSource{},
		[]card.Card{card.NewNumberCard(color.Green, 1)},
		[]card.Card{card.NewNumberCard(color.Green, 2)},
	)

	// the driver resolves a starting Skip by advancing once before any input
	first := g.Player()
	g.NextTurn()
	require.NotEqual(t, first, g.Player())
}
