package main

import (
	"flag"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	startLevel := flag.Int("level", 0, "index of the level to start on")
	debug := flag.Bool("debug", false, "enable debug logging and live asset reload")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	mute := flag.Bool("mute", false, "skip background music")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	// The original game was written for a fixed 800x480 resolution.
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Platformer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	game, err := NewGame(Options{
		StartLevel: *startLevel,
		Debug:      *debug,
		Mute:       *mute,
	})
	if err != nil {
		log.Fatal("start game", "err", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("run game", "err", err)
	}
}
