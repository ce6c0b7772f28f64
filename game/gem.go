package game

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// Bounce control constants. Super gems bounce faster and flatter.
const (
	gemBounceHeight = 0.18
	gemBounceRate   = 3.0
	gemBounceSync   = -0.75
)

// Gem is a collectible that bobs on a sine wave around a fixed base
// position. Neighbouring gems bounce out of phase because the wave
// includes the gem's X coordinate.
type Gem struct {
	level          *Level
	image          *ebiten.Image
	collectedSound Sound

	basePosition cp.Vector
	bounce       float64
	isSuper      bool
	frameHeight  float64
}

func NewGem(level *Level, position cp.Vector, isSuper bool) (*Gem, error) {
	g := &Gem{
		level:        level,
		basePosition: position,
		isSuper:      isSuper,
	}

	img, err := level.content.LoadImage("sprites/gem.png")
	if err != nil {
		return nil, fmt.Errorf("gem image: %w", err)
	}
	g.image = img
	if img != nil {
		g.frameHeight = float64(img.Bounds().Dy())
	}

	soundPath := "sounds/gem_collected.wav"
	if isSuper {
		soundPath = "sounds/super_gem_collected.wav"
	}
	g.collectedSound, err = level.content.LoadSound(soundPath)
	if err != nil {
		return nil, fmt.Errorf("gem sound: %w", err)
	}
	return g, nil
}

// Update recomputes the bounce offset from the level's total elapsed time.
func (g *Gem) Update(totalTime float64) {
	rate := gemBounceRate
	height := gemBounceHeight
	if g.isSuper {
		rate *= 1.4
		height *= 0.8
	}

	t := totalTime*rate + g.Position().X*gemBounceSync
	g.bounce = math.Sin(t) * height * g.frameHeight
}

// Position is the rendered position: base position plus the bounce offset.
func (g *Gem) Position() cp.Vector {
	return g.basePosition.Add(cp.Vector{Y: g.bounce})
}

func (g *Gem) BoundingCircle() Circle {
	return Circle{Center: g.Position(), Radius: TileWidth / 3}
}

func (g *Gem) ScoreValue() int {
	if g.isSuper {
		return 100
	}
	return 30
}

// OnCollected plays the collection sound. The level removes the gem.
func (g *Gem) OnCollected() {
	if g.collectedSound != nil {
		g.collectedSound.Play()
	}
}

func (g *Gem) Draw(screen *ebiten.Image) {
	if g.image == nil {
		return
	}
	bounds := g.image.Bounds()
	pos := g.Position()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X-float64(bounds.Dx())/2, pos.Y-float64(bounds.Dy())/2)
	if g.isSuper {
		op.ColorScale.Scale(0.4, 0.6, 1.8, 1)
	} else {
		op.ColorScale.Scale(1, 1, 0.2, 1)
	}
	screen.DrawImage(g.image, op)
}
