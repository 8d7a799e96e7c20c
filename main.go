package main

import (
	"fmt"
	"os"

	"github.com/ratel-online/cardgame/config"
	"github.com/ratel-online/cardgame/consts"
	"github.com/ratel-online/cardgame/game"
	"github.com/ratel-online/cardgame/msg"
	"github.com/ratel-online/cardgame/player"
	"github.com/ratel-online/cardgame/table"
	"github.com/ratel-online/cardgame/ui"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	if err := run(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	players := player.CreatePlayers(cfg.Players, cfg.Human)
	session, err := table.Create(cfg.Preset, player.Names(players), game.Options{
		HandSize: cfg.HandSize,
		Start:    cfg.StartSeat(),
		Trump:    cfg.Trump,
		Rand:     cfg.Rand(),
	})
	if err != nil {
		return err
	}
	defer table.Remove(session.ID)

	ui.Print(msg.Message.Welcome(cfg.Preset))
	return table.Do(session.ID, func(g *game.Game) error {
		ui.Print(msg.Message.FirstCardPlayed(g.TopDiscard()))
		g.Events().AddListener(ui.NewListener(cfg.Human))

		turns, err := play(g, players, cfg.MaxTurns)
		if err != nil {
			if consts.IsFatal(err) {
				log.Errorf("session %s aborted after %d turns: %v\n", session.ID, turns, err)
			}
			return err
		}
		if winner := g.EndGame(); winner == nil {
			ui.Print(msg.Message.NoWinner(turns))
		}
		log.Infof("session %s finished after %d turns\n", session.ID, turns)
		return nil
	})
}

// play runs turns until a hand is empty or maxTurns is reached and returns
// the number of turns taken.
func play(g *game.Game, players []player.Player, maxTurns int) (int, error) {
	controllers := make([]*player.Controller, 0, len(players))
	for i, hand := range g.Hands() {
		controllers = append(controllers, player.NewController(players[i], hand))
	}
	for turn := 1; turn <= maxTurns; turn++ {
		if err := controllers[g.CurrentIndex()].Play(g); err != nil {
			return turn, err
		}
		if g.Winner() != nil {
			return turn, nil
		}
		if err := g.AdvanceTurn(); err != nil {
			return turn, err
		}
	}
	return maxTurns, nil
}
