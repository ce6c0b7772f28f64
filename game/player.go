package game

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/platformer/common"
)

// Constants controlling horizontal movement. Horizontal acceleration is
// deliberately not scaled by dt; the drag factors below assume the fixed
// 1/60 s step.
const (
	moveAcceleration = 13000.0
	groundDragFactor = 0.48
	airDragFactor    = 0.58
	maxVelocityX     = 250.0
)

// Constants controlling vertical movement and the variable-height jump.
const (
	maxJumpTime         = 0.35
	jumpLaunchVelocity  = -2700.0
	gravityAcceleration = 3400.0
	maxFallSpeed        = 550.0
	jumpControlPower    = 0.14
)

// Player is the protagonist: input-driven horizontal movement with drag,
// gravity with a terminal fall speed, a variable-height jump, and swept
// collision against the level's tile grid.
type Player struct {
	level *Level

	idleAnimation      *Animation
	runAnimation       *Animation
	jumpAnimation      *Animation
	celebrateAnimation *Animation
	dieAnimation       *Animation
	sprite             AnimationPlayer

	killedSound Sound
	jumpSound   Sound
	fallSound   Sound

	position       cp.Vector
	previousBottom float64
	velocity       cp.Vector

	isAlive        bool
	isOnGround     bool
	hasReachedExit bool
	movement       float64
	lastMovement   float64

	isJumping  bool
	wasJumping bool
	jumpTime   float64

	localBounds Rect
}

func NewPlayer(level *Level, position cp.Vector) (*Player, error) {
	p := &Player{
		level:    level,
		position: position,
	}

	set, err := level.content.LoadSpriteSet("player")
	if err != nil {
		return nil, fmt.Errorf("player sprite set: %w", err)
	}
	animations := []struct {
		dst  **Animation
		name string
	}{
		{&p.idleAnimation, "idle"},
		{&p.runAnimation, "run"},
		{&p.jumpAnimation, "jump"},
		{&p.celebrateAnimation, "celebrate"},
		{&p.dieAnimation, "die"},
	}
	for _, a := range animations {
		if *a.dst, err = loadAnimation(level.content, set, a.name); err != nil {
			return nil, err
		}
	}

	sounds := []struct {
		dst  *Sound
		name string
	}{
		{&p.killedSound, "killed"},
		{&p.jumpSound, "jump"},
		{&p.fallSound, "fall"},
	}
	for _, s := range sounds {
		path, ok := set.Sounds[s.name]
		if !ok {
			return nil, fmt.Errorf("player sprite set has no sound %q", s.name)
		}
		if *s.dst, err = level.content.LoadSound(path); err != nil {
			return nil, fmt.Errorf("player sound %q: %w", s.name, err)
		}
	}

	// Collision box is a sub-rectangle of the frame, horizontally centered
	// and anchored to the frame bottom.
	frameWidth := float64(p.idleAnimation.FrameWidth())
	frameHeight := float64(p.idleAnimation.FrameHeight())
	width := math.Round(frameWidth * 0.4)
	left := math.Round((frameWidth - width) / 2)
	height := math.Round(frameWidth * 0.8)
	top := math.Round(frameHeight - height)
	p.localBounds = Rect{X: left, Y: top, Width: width, Height: height}

	p.Reset(position)
	return p, nil
}

// Reset brings the player back to life at the given spawn position,
// lifted 10 px so it settles onto the ground.
func (p *Player) Reset(position cp.Vector) {
	p.position = position.Sub(cp.Vector{Y: 10})
	p.velocity = cp.Vector{}
	p.isAlive = true
	p.sprite.Play(p.idleAnimation)
}

func (p *Player) IsAlive() bool    { return p.isAlive }
func (p *Player) IsOnGround() bool { return p.isOnGround }

func (p *Player) Position() cp.Vector { return p.position }
func (p *Player) Velocity() cp.Vector { return p.velocity }

// UpdateInput stores one input snapshot for the next physics step.
func (p *Player) UpdateInput(in Input) {
	if in.Left {
		p.movement = -1
		p.lastMovement = p.movement
	} else if in.Right {
		p.movement = 1
		p.lastMovement = p.movement
	}
	p.isJumping = in.Jump
}

func (p *Player) Update(dt float64) {
	p.applyPhysics(dt)

	if p.isAlive && p.isOnGround && !p.hasReachedExit {
		if math.Abs(p.velocity.X)-0.02 > 0 {
			p.sprite.Play(p.runAnimation)
		} else {
			p.sprite.Play(p.idleAnimation)
		}
	}

	// Input is consumed; the next step starts from a clean slate.
	p.movement = 0
	p.isJumping = false

	p.sprite.Update(dt)
}

func (p *Player) applyPhysics(dt float64) {
	previous := p.position

	// Horizontal control plus gravity. The horizontal term accumulates
	// per step and is cut back by drag below.
	p.velocity.X += p.movement * moveAcceleration
	p.velocity.Y = common.Clamp(p.velocity.Y+gravityAcceleration*dt, -maxFallSpeed, maxFallSpeed)

	p.velocity.Y = p.doJump(p.velocity.Y, dt)

	if p.isOnGround {
		p.velocity.X *= groundDragFactor
	} else {
		p.velocity.X *= airDragFactor
	}
	p.velocity.X = common.Clamp(p.velocity.X, -maxVelocityX, maxVelocityX)

	p.position = p.position.Add(p.velocity.Mult(dt))
	p.position = cp.Vector{X: math.Round(p.position.X), Y: math.Round(p.position.Y)}

	p.handleCollisions()

	// If collision resolution undid the move, kill the velocity so speed
	// doesn't build up against walls.
	if common.EqualWithinEpsilon(p.position.X, previous.X) {
		p.velocity.X = 0
	}
	if common.EqualWithinEpsilon(p.position.Y, previous.Y) {
		p.velocity.Y = 0
	}
}

// doJump begins or continues a jump, overriding the vertical velocity with
// a power curve while the button is held during the ascent. Releasing the
// button hands control back to gravity, which is what makes jump height
// variable.
func (p *Player) doJump(velocityY, dt float64) float64 {
	if p.isJumping {
		if (!p.wasJumping && p.isOnGround) || p.jumpTime > 0 {
			if p.jumpTime == 0 && p.jumpSound != nil {
				p.jumpSound.Play()
			}
			p.jumpTime += dt
			p.sprite.Play(p.jumpAnimation)
		}

		if 0 < p.jumpTime && p.jumpTime <= maxJumpTime {
			velocityY = jumpLaunchVelocity * (1 - math.Pow(p.jumpTime/maxJumpTime, jumpControlPower))
		} else {
			// Past the apex.
			p.jumpTime = 0
		}
	} else {
		p.jumpTime = 0
	}
	p.wasJumping = p.isJumping

	return velocityY
}

func (p *Player) handleCollisions() {
	bounds := p.BoundingRect()

	leftTile := int(math.Floor(bounds.Left() / TileWidth))
	rightTile := int(math.Ceil(bounds.Right()/TileWidth)) - 1
	topTile := int(math.Floor(bounds.Top() / TileHeight))
	bottomTile := int(math.Ceil(bounds.Bottom()/TileHeight)) - 1

	p.isOnGround = false

	for y := topTile; y <= bottomTile; y++ {
		for x := leftTile; x <= rightTile; x++ {
			collision := p.level.CollisionAt(x, y)
			if collision == CollisionPassable {
				continue
			}

			tileBounds := p.level.TileBounds(x, y)
			depth, ok := bounds.IntersectionDepth(tileBounds)
			if !ok {
				continue
			}

			absX := math.Abs(depth.X)
			absY := math.Abs(depth.Y)

			if absY < absX || collision == CollisionPlatform {
				// Crossing a tile's top from above means we landed on it.
				if p.previousBottom <= tileBounds.Top() {
					p.isOnGround = true
				}

				// Platforms only push back when landed on.
				if collision == CollisionImpassable || p.isOnGround {
					p.position.Y += depth.Y
					bounds = p.BoundingRect()
				}
			} else if collision == CollisionImpassable {
				p.position.X += depth.X
				bounds = p.BoundingRect()
			}
		}
	}

	p.previousBottom = bounds.Bottom()
}

// BoundingRect is the player's collision box in world coordinates.
func (p *Player) BoundingRect() Rect {
	origin := p.sprite.Origin()
	return Rect{
		X:      math.Round(p.position.X-origin.X) + p.localBounds.X,
		Y:      math.Round(p.position.Y-origin.Y) + p.localBounds.Y,
		Width:  p.localBounds.Width,
		Height: p.localBounds.Height,
	}
}

// OnKilled marks the player dead. killedBy is nil for a fall death.
func (p *Player) OnKilled(killedBy *Enemy) {
	p.isAlive = false

	if killedBy != nil {
		if p.killedSound != nil {
			p.killedSound.Play()
		}
	} else if p.fallSound != nil {
		p.fallSound.Play()
	}

	p.sprite.Play(p.dieAnimation)
}

// OnReachedExit switches to the celebration animation.
func (p *Player) OnReachedExit() {
	p.hasReachedExit = true
	p.sprite.Play(p.celebrateAnimation)
}

func (p *Player) Draw(screen *ebiten.Image) {
	// Face the way we last moved. Sheets face left.
	p.sprite.Draw(screen, p.position, p.lastMovement > 0)
}
