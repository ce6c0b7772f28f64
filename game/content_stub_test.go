package game

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/platformer/prefabs"
)

// stubContent serves fixed-size images and records every sound played so
// tests can run without real assets or an audio device.
type stubContent struct {
	images map[string]*ebiten.Image
	played []string
}

func newStubContent() *stubContent {
	return &stubContent{images: map[string]*ebiten.Image{}}
}

func (c *stubContent) LoadImage(path string) (*ebiten.Image, error) {
	if img, ok := c.images[path]; ok {
		return img, nil
	}

	var w, h int
	switch {
	case path == "sprites/gem.png":
		w, h = 32, 32
	case strings.HasPrefix(path, "sprites/"):
		// Eight square 64 px frames, enough for any test animation.
		w, h = 512, 64
	case strings.HasPrefix(path, "tiles/"):
		w, h = 40, 32
	case strings.HasPrefix(path, "backgrounds/"):
		w, h = 800, 480
	default:
		return nil, fmt.Errorf("stub content has no image %q", path)
	}

	img := ebiten.NewImage(w, h)
	c.images[path] = img
	return img, nil
}

func (c *stubContent) LoadSound(path string) (Sound, error) {
	return &stubSound{content: c, path: path}, nil
}

func (c *stubContent) LoadSpriteSet(name string) (*prefabs.SpriteSetSpec, error) {
	if name == "player" {
		return &prefabs.SpriteSetSpec{
			Name: "player",
			Animations: map[string]prefabs.AnimationSpec{
				"idle":      {File: "sprites/player/idle.png", FrameTime: 1.0, Looping: true},
				"run":       {File: "sprites/player/run.png", FrameTime: 0.07, Looping: true},
				"jump":      {File: "sprites/player/jump.png", FrameTime: 0.06},
				"celebrate": {File: "sprites/player/celebrate.png", FrameTime: 0.08},
				"die":       {File: "sprites/player/die.png", FrameTime: 0.1},
			},
			Sounds: map[string]string{
				"jump":   "sounds/player_jump.wav",
				"killed": "sounds/player_killed.wav",
				"fall":   "sounds/player_fall.wav",
			},
		}, nil
	}
	if strings.HasPrefix(name, "monster_") {
		return &prefabs.SpriteSetSpec{
			Name: name,
			Animations: map[string]prefabs.AnimationSpec{
				"run":  {File: "sprites/" + name + "/run.png", FrameTime: 0.1, Looping: true},
				"idle": {File: "sprites/" + name + "/idle.png", FrameTime: 0.15, Looping: true},
			},
		}, nil
	}
	return nil, fmt.Errorf("stub content has no sprite set %q", name)
}

type stubSound struct {
	content *stubContent
	path    string
}

func (s *stubSound) Play() {
	s.content.played = append(s.content.played, s.path)
}

func (c *stubContent) playCount(path string) int {
	n := 0
	for _, p := range c.played {
		if p == path {
			n++
		}
	}
	return n
}

// newTestLevel parses mapText with a seeded RNG and stub content.
func newTestLevel(t *testing.T, mapText string) (*Level, *stubContent, *int) {
	t.Helper()
	score := 0
	content := newStubContent()
	lvl, err := NewLevel("test", mapText, LevelArgs{
		Score:   &score,
		Content: content,
		Rand:    rand.New(rand.NewSource(1)),
	})
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	return lvl, content, &score
}

const step = 1.0 / 60.0
