package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/game"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

const (
	screenWidth  = 800
	screenHeight = 480

	numberOfLevels = 6

	// Simulation advances in exact steps of this size, decoupled from
	// the wall-clock frame pacing.
	targetStep = 1.0 / 60.0
	// Cap on one frame's wall-clock delta so a stalled window doesn't
	// trigger a burst of catch-up steps.
	maxFrameTime = 0.25
)

type Options struct {
	StartLevel int
	Debug      bool
	Mute       bool
}

// Game is the fixed-timestep driver around the current level: it
// accumulates wall-clock time, steps the simulation at 1/60 s, handles
// the global key shortcuts and renders the HUD on top of the world.
type Game struct {
	opts Options

	accumulator float64
	lastTick    time.Time

	levelIndex int
	level      *game.Level
	totalScore int
	rng        *rand.Rand

	hud    *HUD
	music  *audio.Player
	paused bool
	quit   bool
	ui     *ebitenui.UI

	watcher *prefabs.Watcher
}

func NewGame(opts Options) (*Game, error) {
	g := &Game{
		opts:       opts,
		levelIndex: opts.StartLevel - 1,
		lastTick:   time.Now(),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	hud, err := NewHUD()
	if err != nil {
		return nil, fmt.Errorf("hud: %w", err)
	}
	g.hud = hud
	g.ui = NewPauseUI(g)

	if !opts.Mute {
		music, err := assets.LoadMusicPlayer("sounds/music.wav")
		if err != nil {
			return nil, fmt.Errorf("music: %w", err)
		}
		g.music = music
		g.music.Play()
	}

	if opts.Debug {
		g.watchSourceDirs()
	}

	if err := g.loadNextLevel(); err != nil {
		return nil, err
	}
	return g, nil
}

// watchSourceDirs points the asset overrides at the source checkout so
// edited maps and specs are picked up the next time a level loads.
func (g *Game) watchSourceDirs() {
	var dirs []string
	if _, err := os.Stat("levels"); err == nil {
		levels.Dir = "levels"
		dirs = append(dirs, "levels")
	}
	if _, err := os.Stat("prefabs"); err == nil {
		prefabs.Dir = "prefabs"
		dirs = append(dirs, "prefabs")
	}
	if len(dirs) == 0 {
		return
	}

	watcher, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Warn("asset watcher unavailable", "err", err)
		return
	}
	g.watcher = watcher
	log.Debug("watching for asset edits", "dirs", dirs)
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.quit || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if g.paused {
		g.ui.Update()
		g.lastTick = time.Now()
		return nil
	}

	g.pollWatcher()

	now := time.Now()
	dt := now.Sub(g.lastTick).Seconds()
	g.lastTick = now
	if dt > maxFrameTime {
		dt = maxFrameTime
	}
	g.accumulator += dt

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if err := g.handleRestart(); err != nil {
			return err
		}
	}
	if g.opts.Debug && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.totalScore = 0
		if err := g.reloadCurrentLevel(); err != nil {
			return err
		}
	}

	// One input snapshot serves every step run this frame.
	in := sampleInput()
	for g.accumulator >= targetStep {
		g.level.Update(targetStep, in)
		g.accumulator -= targetStep
	}
	return nil
}

func sampleInput() game.Input {
	return game.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Jump: ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyUp) ||
			ebiten.IsKeyPressed(ebiten.KeyW),
	}
}

// handleRestart implements the Space policy: restart the run after a
// death, advance after a win, retry the level after a timeout.
func (g *Game) handleRestart() error {
	switch {
	case !g.level.Player().IsAlive():
		g.totalScore = 0
		g.levelIndex = -1
		return g.loadNextLevel()
	case g.level.TimeRemaining() <= 0:
		if g.level.IsExitReached() {
			return g.loadNextLevel()
		}
		g.totalScore = 0
		return g.reloadCurrentLevel()
	}
	return nil
}

func (g *Game) loadNextLevel() error {
	g.levelIndex = (g.levelIndex + 1) % numberOfLevels

	// Release the current level before parsing the next one.
	g.level = nil

	name := fmt.Sprintf("%d.txt", g.levelIndex)
	contents, err := levels.Load(name)
	if err != nil {
		return fmt.Errorf("load level %s: %w", name, err)
	}

	level, err := game.NewLevel(name, contents, game.LevelArgs{
		Score:   &g.totalScore,
		Content: assets.Default,
		Rand:    g.rng,
	})
	if err != nil {
		return fmt.Errorf("parse level %s: %w", name, err)
	}
	g.level = level

	log.Info("loaded level", "name", name, "size", fmt.Sprintf("%dx%d", level.Width(), level.Height()))
	return nil
}

func (g *Game) reloadCurrentLevel() error {
	g.levelIndex--
	return g.loadNextLevel()
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path := <-g.watcher.Events:
			// The Dir overrides make the next (re)load pick this up;
			// press R to apply immediately.
			log.Debug("asset changed", "path", path)
		case err := <-g.watcher.Errors:
			log.Warn("asset watcher", "err", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.level.Draw(screen)
	g.hud.Draw(screen, g.level, g.totalScore)
	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
