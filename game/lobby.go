package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/unotable/uno/card"
	"github.com/unotable/uno/event"
)

// ErrNotEnoughPlayers is returned by Lobby.Start while fewer than two
// players are registered. The caller should keep collecting players.
var ErrNotEnoughPlayers = errors.New("you cannot start the game until you have at least 2 players")

const startingHandSize = 7

// Lobby collects players before a game begins. It is consumed by Start:
// after a successful start it is empty and cannot start again.
type Lobby struct {
	players []*Player
	deck    CardSource
	rng     *rand.Rand
}

func NewLobby() *Lobby {
	return NewSeededLobby(time.Now().UnixNano())
}

// NewSeededLobby makes the deal, the starting player and every later draw
// reproducible from the seed.
func NewSeededLobby(seed int64) *Lobby {
	return &Lobby{
		deck: NewSeededDeck(seed),
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// AddPlayer registers a player with an empty hand. It reports false and
// leaves the lobby unchanged when the name is empty or already taken.
func (l *Lobby) AddPlayer(name string) bool {
	if name == "" {
		return false
	}
	for _, player := range l.players {
		if player.Name() == name {
			return false
		}
	}
	l.players = append(l.players, NewPlayer(name))
	return true
}

func (l *Lobby) NumberOfPlayers() int {
	return len(l.players)
}

// Start consumes the lobby into a running game: each player is dealt seven
// cards in registration order, a random player starts, and top cards are
// drawn until one that is not a Draw 4 Wildcard comes up.
func (l *Lobby) Start() (*Game, error) {
	if len(l.players) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	g := &Game{
		players: l.players,
		cycler:  NewCycler(len(l.players)),
		deck:    l.deck,
	}
	l.players = nil

	for _, player := range g.players {
		player.Hand().AddCards(g.deck.Draw(startingHandSize))
	}

	g.cycler.SetCurrent(l.rng.Intn(len(g.players)))

	for {
		firstCard := g.deck.DrawOne()
		if firstCard.Type() == card.TypeDrawFourWildcard {
			continue
		}
		g.topCard = &firstCard
		break
	}
	event.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
		Card: *g.topCard,
	})

	return g, nil
}
