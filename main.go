package main

import (
	"errors"
	"strconv"
	"strings"

	termcolor "github.com/fatih/color"
	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/unotable/uno/card"
	"github.com/unotable/uno/config"
	"github.com/unotable/uno/event"
	"github.com/unotable/uno/game"
	"github.com/unotable/uno/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	if cfg.NoColor {
		termcolor.NoColor = true
	}

	logger := logrus.New()
	if cfg.Debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	listenForEvents(logger)

	lobby := game.NewLobby()
	if cfg.Seed != 0 {
		lobby = game.NewSeededLobby(cfg.Seed)
	}

	ui.Message.Welcome()
	g := runLobby(lobby)

	ui.Message.GameStarted(g.Player().Name(), g.TurnOrder(), g.TopCard())
	applyStartingCard(g)

	runGame(g)

	ui.WaitForEnter("Press enter to close the program...")
}

// runLobby collects players until someone starts the game. Starting is only
// offered once two players are in, so Start cannot fail here.
func runLobby(lobby *game.Lobby) *game.Game {
	ui.Message.LobbyIntro()

	for {
		if lobby.NumberOfPlayers() >= 2 {
			choice := ui.PromptLine("Select an option:\n" +
				"1. Add a player\n" +
				"2. Start the game\n" +
				"Choose an option: ")
			switch choice {
			case "1":
				ui.Println()
			case "2":
				g, err := lobby.Start()
				if err != nil {
					logrus.WithError(err).Fatal("could not start the game")
				}
				return g
			default:
				ui.Message.InvalidMenuOption()
				continue
			}
		}

		for {
			name := ui.PromptLine("Enter a username: ")
			if lobby.AddPlayer(name) {
				ui.Message.PlayerAdded(name)
				break
			}
			ui.Message.UsernameTaken(name)
		}
	}
}

// applyStartingCard resolves the randomly drawn first top card once, before
// any input is requested: skip, reverse and draw-two take effect; a starting
// wildcard only asks the starting player for its color.
func applyStartingCard(g *game.Game) {
	playerMoved := false
	switch g.TopCard().Type() {
	case card.TypeSkip:
		skipTurn(g)
		playerMoved = true
	case card.TypeReverse:
		reverse(g)
		skipTurn(g)
		playerMoved = true
	case card.TypeDrawTwo:
		drawPenalty(g, 2)
		skipTurn(g)
		playerMoved = true
	case card.TypeWildcard:
		ui.Print(g.Player().String())
		pickWildcardColor(g)
	}
	if playerMoved {
		ui.Message.NewStartingPlayer(g.Player().Name())
	}
}

// runGame is the turn-resolution loop. It returns when a player empties
// their hand.
func runGame(g *game.Game) {
	for {
		player := g.Player()
		input := ui.PromptLine(turnPrompt(g))

		played, err := resolveChoice(g, input)
		if err != nil {
			if errors.Is(err, game.ErrInvalidCardIndex) {
				ui.Message.InvalidCardIndex(player.Hand().Size())
			} else {
				ui.Message.CardUnplayable(g.TopCard())
			}
			continue
		}

		if !played {
			ui.Message.UnableToPlay(player.Name())
			g.NextTurn()
			continue
		}

		ui.Message.CardPlayed(player.Name(), g.TopCard())
		if player.Hand().Empty() {
			ui.Message.WinnerFound(player.Name())
			return
		}

		switch g.TopCard().Type() {
		case card.TypeReverse:
			reverse(g)
		case card.TypeWildcard, card.TypeDrawFourWildcard:
			pickWildcardColor(g)
		}

		g.NextTurn()

		switch g.TopCard().Type() {
		case card.TypeSkip:
			skipTurn(g)
		case card.TypeReverse:
			if g.NumberOfPlayers() == 2 {
				skipTurn(g)
			}
		case card.TypeDrawTwo:
			drawPenalty(g, 2)
			skipTurn(g)
		case card.TypeDrawFourWildcard:
			drawPenalty(g, 4)
			skipTurn(g)
		}
	}
}

func turnPrompt(g *game.Game) string {
	var b strings.Builder
	b.WriteString("It's " + g.Player().Name() + "'s turn!\n")
	b.WriteString("The top card is a " + g.TopCard().Painted() + "\n\n")
	b.WriteString(g.Player().String())
	b.WriteString("Choose a card or type 'draw': ")
	return b.String()
}

// resolveChoice applies the player's input. It reports whether a card ended
// up played, either directly or through the auto-play draw rule.
func resolveChoice(g *game.Game, input string) (bool, error) {
	if strings.EqualFold(input, "draw") {
		drawn, autoPlayed := g.DrawOne()
		if autoPlayed {
			ui.Message.DrewPlayableCard(g.TopCard())
		} else {
			ui.Message.DrewUnplayableCard(drawn)
		}
		return autoPlayed, nil
	}

	choice, err := strconv.Atoi(input)
	if err != nil {
		return false, game.ErrInvalidCardIndex
	}
	if err := g.Play(choice - 1); err != nil {
		return false, err
	}
	return true, nil
}

func skipTurn(g *game.Game) {
	ui.Message.TurnSkipped(g.Player().Name())
	g.NextTurn()
}

func reverse(g *game.Game) {
	g.Reverse()
	ui.Message.DirectionReversed(g.TurnDirection(), g.TurnOrder())
}

func drawPenalty(g *game.Game, amount int) {
	ui.Message.PenaltyDrawn(g.Player().Name(), amount)
	g.DrawMultiple(amount)
}

func pickWildcardColor(g *game.Game) {
	for {
		chosenColor := ui.PromptColor()
		if err := g.SetWildcardColor(chosenColor); err != nil {
			ui.Println(err)
			continue
		}
		ui.Message.WildcardColorPicked(chosenColor)
		return
	}
}

// eventLogger mirrors every game event onto the structured log.
type eventLogger struct {
	log *logrus.Logger
}

func listenForEvents(logger *logrus.Logger) {
	l := &eventLogger{log: logger}
	event.FirstCardPlayed.AddListener(l)
	event.CardPlayed.AddListener(l)
	event.CardsDrawn.AddListener(l)
	event.ColorPicked.AddListener(l)
	event.TurnReversed.AddListener(l)
}

func (l *eventLogger) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	l.log.WithField("card", payload.Card.String()).Debug("first card revealed")
}

func (l *eventLogger) OnCardPlayed(payload event.CardPlayedPayload) {
	l.log.WithFields(logrus.Fields{
		"player":      payload.PlayerName,
		"card":        payload.Card.String(),
		"auto_played": payload.AutoPlayed,
	}).Debug("card played")
}

func (l *eventLogger) OnCardsDrawn(payload event.CardsDrawnPayload) {
	l.log.WithFields(logrus.Fields{
		"player": payload.PlayerName,
		"amount": payload.Amount,
	}).Debug("cards drawn")
}

func (l *eventLogger) OnColorPicked(payload event.ColorPickedPayload) {
	l.log.WithFields(logrus.Fields{
		"player": payload.PlayerName,
		"color":  payload.Color.String(),
	}).Debug("wildcard color picked")
}

func (l *eventLogger) OnTurnReversed(payload event.TurnReversedPayload) {
	l.log.WithField("direction", payload.Direction).Debug("turn order reversed")
}
