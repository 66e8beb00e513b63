package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/minaorangina/cluedo/config"
	"github.com/minaorangina/cluedo/game"
	"github.com/minaorangina/cluedo/internal/sim"
)

const maxTurns = 5000

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		config.Default().Logger(os.Stderr).WithError(err).Fatal("could not load config")
	}
	log := cfg.Logger(os.Stderr)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s, err := sim.New(cfg.Players, rand.New(rand.NewSource(seed)), log)
	if err != nil {
		log.WithError(err).Fatal("could not set up game")
	}

	result, err := s.Run(maxTurns)
	if err != nil {
		log.WithError(err).Warn("game did not finish")
	}

	printHands(s.Game())

	switch result.State {
	case game.Win:
		color.New(color.FgGreen, color.Bold).Printf("%s solved it after %d turns: %s\n",
			result.Winner, result.Turns, result.Murder)
	case game.Draw:
		color.Yellow("Nobody solved it. It was %s\n", result.Murder)
	default:
		color.Red("Still running after %d turns\n", result.Turns)
	}
}

func printHands(g *game.Game) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Player", "Character", "Position", "Active", "Cards"})
	for _, p := range g.Players() {
		names := []string{}
		for _, c := range p.Cards() {
			names = append(names, c.Name)
		}
		ch := p.Character()
		t.AppendRow(table.Row{p.Name(), ch.Name, ch.Position, p.IsActive(), strings.Join(names, ", ")})
	}
	if murder, ok := g.MurderCombination(); ok {
		t.AppendFooter(table.Row{"Murder", murder.Character.Name, murder.Room.Name, "", murder.Weapon.Name})
	}
	t.Render()
	fmt.Println()
}
