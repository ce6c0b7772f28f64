package game

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// FaceDirection is the horizontal direction an enemy walks and faces.
type FaceDirection int

const (
	FaceLeft  FaceDirection = -1
	FaceRight FaceDirection = 1
)

const (
	enemyMoveSpeed   = 64.0
	enemyMaxWaitTime = 0.5
)

// Enemy patrols the ground it spawned on, turning around after a short
// wait whenever a wall or cliff blocks the way.
type Enemy struct {
	level       *Level
	position    cp.Vector
	localBounds Rect

	runAnimation  *Animation
	idleAnimation *Animation
	sprite        AnimationPlayer

	direction FaceDirection
	waitTime  float64
}

func NewEnemy(level *Level, position cp.Vector, spriteSet string) (*Enemy, error) {
	e := &Enemy{
		level:     level,
		position:  position,
		direction: FaceLeft,
	}

	set, err := level.content.LoadSpriteSet(spriteSet)
	if err != nil {
		return nil, fmt.Errorf("enemy sprite set %q: %w", spriteSet, err)
	}
	if e.runAnimation, err = loadAnimation(level.content, set, "run"); err != nil {
		return nil, err
	}
	if e.idleAnimation, err = loadAnimation(level.content, set, "idle"); err != nil {
		return nil, err
	}
	e.sprite.Play(e.idleAnimation)

	// Collision box is narrower and shorter than the frame, anchored to
	// the frame bottom.
	frameWidth := float64(e.idleAnimation.FrameWidth())
	frameHeight := float64(e.idleAnimation.FrameHeight())
	width := math.Trunc(frameWidth * 0.35)
	left := math.Trunc((frameWidth - width) / 2)
	height := math.Trunc(frameWidth * 0.7)
	top := frameHeight - height
	e.localBounds = Rect{X: left, Y: top, Width: width, Height: height}

	return e, nil
}

func (e *Enemy) Update(dt float64) {
	dir := float64(e.direction)

	// Probe the tile in front of the enemy at its feet.
	posX := e.position.X + e.localBounds.Width/2*dir
	tileX := int(math.Floor(posX/TileWidth)) - int(e.direction)
	tileY := int(math.Floor(e.position.Y / TileHeight))

	if e.waitTime > 0 {
		e.waitTime = math.Max(0, e.waitTime-dt)
		if e.waitTime <= 0 {
			e.direction = -e.direction
		}
	} else {
		frontX := tileX + int(e.direction)
		wall := e.level.CollisionAt(frontX, tileY-1) == CollisionImpassable
		cliff := e.level.CollisionAt(frontX, tileY) == CollisionPassable
		if wall || cliff {
			e.waitTime = enemyMaxWaitTime
		} else {
			e.position = e.position.Add(cp.Vector{X: dir * enemyMoveSpeed * dt})
		}
	}

	e.sprite.Update(dt)

	// Stand still while the game is effectively over or while turning.
	if !e.level.Player().IsAlive() || e.level.IsExitReached() ||
		e.level.TimeRemaining() <= 0 || e.waitTime > 0 {
		e.sprite.Play(e.idleAnimation)
	} else {
		e.sprite.Play(e.runAnimation)
	}
}

func (e *Enemy) BoundingRect() Rect {
	origin := e.sprite.Origin()
	return Rect{
		X:      math.Round(e.position.X-origin.X) + e.localBounds.X,
		Y:      math.Round(e.position.Y-origin.Y) + e.localBounds.Y,
		Width:  e.localBounds.Width,
		Height: e.localBounds.Height,
	}
}

func (e *Enemy) Position() cp.Vector { return e.position }

func (e *Enemy) Direction() FaceDirection { return e.direction }

func (e *Enemy) Draw(screen *ebiten.Image) {
	// Sprite sheets face left; flip when walking right.
	e.sprite.Draw(screen, e.position, e.direction > 0)
}
