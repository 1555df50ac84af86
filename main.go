package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"uno/card/colour"
	"uno/config"
	"uno/event"
	"uno/game"
	"uno/player"
	"uno/ui"
)

func main() {
	cfg := config.Load()
	logrus.SetLevel(cfg.LogLevel)

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		<-interrupts
		ui.Println()
		ui.Message.Farewell()
		os.Exit(0)
	}()

	prompter := ui.NewPrompter(os.Stdin, colour.Stdout)
	ui.Message.Welcome()
	ui.Message.Divider()

	for {
		err := runGame(cfg, prompter)
		if errors.Is(err, ui.ErrInputClosed) {
			ui.Message.Farewell()
			return
		}
		if err != nil {
			logrus.WithError(err).Error("game aborted")
			ui.Message.GameAborted(err.Error())
			continue
		}

		again, err := prompter.PromptYesNo("Play again? (y/n): ")
		if err != nil || !again {
			ui.Message.Farewell()
			return
		}
		ui.Message.NewGame()
	}
}

// runGame plays one full game. Panics inside a game surface as errors so
// a broken game never takes the session down with it.
func runGame(cfg config.Config, prompter *ui.Prompter) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected failure: %v", r)
		}
	}()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log := logrus.WithFields(logrus.Fields{
		"game_id": uuid.New(),
		"seed":    seed,
	})

	human := player.NewHuman(cfg.PlayerName, prompter)
	bot := player.NewComputer(cfg.BotName)

	bus := event.NewBus()
	bus.AddListener(ui.NewNarrator())

	deck := game.NewDeck(rand.New(rand.NewSource(seed)))
	g := game.New([]game.Player{human, bot}, deck, bus, log)
	if err := g.Setup(); err != nil {
		return err
	}
	log.Info("game started")

	turns := 0
	for !g.Over() {
		current := g.CurrentPlayer()
		ui.Message.TurnStarted(current.Name())
		top, ok := g.TopCard()
		if ok {
			ui.Message.TopCard(top)
			if len(current.PlayableCards(top)) == 0 {
				ui.Message.NoPlayableCards(current.Name())
			}
		}

		if err := g.PlayTurn(); err != nil {
			return err
		}
		turns++

		if !g.Over() {
			ui.Message.Divider()
			time.Sleep(cfg.TurnDelay)
		}
	}

	ui.Message.FinalCounts(g.Players())
	if winner := g.Winner(); winner != nil {
		log.WithFields(logrus.Fields{
			"winner": winner.Name(),
			"turns":  turns,
		}).Info("game finished")
	}
	return nil
}
