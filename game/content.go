package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/platformer/prefabs"
)

// Content supplies decoded assets to the simulation. The shipped
// implementation lives in the assets package and reads embedded files;
// tests substitute their own.
type Content interface {
	LoadImage(path string) (*ebiten.Image, error)
	LoadSound(path string) (Sound, error)
	LoadSpriteSet(name string) (*prefabs.SpriteSetSpec, error)
}

// Sound is a fire-and-forget playback handle. Play never blocks and may
// overlap with earlier plays of the same sound.
type Sound interface {
	Play()
}

// Input is one per-step snapshot of the held movement keys. The shell
// samples the keyboard once per frame and every simulation step run for
// that frame sees the same snapshot.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}
