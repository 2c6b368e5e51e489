package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/borderhop/core/internal/game"
	"github.com/borderhop/core/internal/tui"
)

func runPlay(cmd *cobra.Command, args []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	source := normalizeName(playSource)
	target := normalizeName(playTarget)
	if source == "" || target == "" {
		rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
		picked, pickedTarget, err := game.RandomPair(g, rng)
		if err != nil {
			return err
		}
		if source == "" {
			source = picked
		}
		if target == "" {
			target = pickedTarget
		}
	}

	session, err := game.Start(g, source, target)
	if err != nil {
		return err
	}
	logger.Debug("game started", "source", source, "target", target,
		"distance", session.RemainingDistance())

	if _, err := tea.NewProgram(tui.New(session)).Run(); err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	if session.Outcome() == game.InProgress {
		fmt.Fprintln(cmd.OutOrStdout(), "game abandoned")
	}
	return nil
}
