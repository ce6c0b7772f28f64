package game

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/platformer/prefabs"
)

// Animation is a horizontal strip of square frames sharing one image.
// The frame size equals the image height; the frame count is the image
// width divided by its height.
type Animation struct {
	// Name identifies the animation; AnimationPlayer.Play uses it to
	// decide whether an incoming animation is already playing.
	Name      string
	Image     *ebiten.Image
	FrameTime float64
	Looping   bool

	frameWidth  int
	frameHeight int
	frameCount  int
}

func NewAnimation(name string, img *ebiten.Image, frameTime float64, looping bool) *Animation {
	a := &Animation{
		Name:      name,
		Image:     img,
		FrameTime: frameTime,
		Looping:   looping,
	}
	if img != nil {
		bounds := img.Bounds()
		a.frameWidth = bounds.Dy()
		a.frameHeight = bounds.Dy()
		if a.frameHeight > 0 {
			a.frameCount = bounds.Dx() / a.frameHeight
		}
	}
	return a
}

func loadAnimation(content Content, set *prefabs.SpriteSetSpec, name string) (*Animation, error) {
	spec, ok := set.Animations[name]
	if !ok {
		return nil, fmt.Errorf("sprite set %q has no animation %q", set.Name, name)
	}
	img, err := content.LoadImage(spec.File)
	if err != nil {
		return nil, fmt.Errorf("animation %s/%s: %w", set.Name, name, err)
	}
	return NewAnimation(name, img, spec.FrameTime, spec.Looping), nil
}

func (a *Animation) FrameCount() int  { return a.frameCount }
func (a *Animation) FrameWidth() int  { return a.frameWidth }
func (a *Animation) FrameHeight() int { return a.frameHeight }

// AnimationPlayer advances and draws one animation at a time.
type AnimationPlayer struct {
	animation *Animation
	frame     int
	time      float64
}

// Play switches to the given animation, restarting from the first frame.
// Playing the animation that is already current is a no-op.
func (p *AnimationPlayer) Play(a *Animation) {
	if a == nil || (p.animation != nil && p.animation.Name == a.Name) {
		return
	}
	p.animation = a
	p.frame = 0
	p.time = 0
}

func (p *AnimationPlayer) Update(dt float64) {
	a := p.animation
	if a == nil || a.FrameTime <= 0 || a.frameCount <= 0 {
		return
	}
	p.time += dt
	for p.time > a.FrameTime {
		p.time -= a.FrameTime
		if a.Looping {
			p.frame = (p.frame + 1) % a.frameCount
		} else if p.frame < a.frameCount-1 {
			p.frame++
		}
	}
}

// Origin is the sprite anchor: bottom-center of a frame.
func (p *AnimationPlayer) Origin() cp.Vector {
	if p.animation == nil {
		return cp.Vector{}
	}
	return cp.Vector{
		X: float64(p.animation.frameWidth) / 2,
		Y: float64(p.animation.frameHeight),
	}
}

// Frame returns the index of the frame currently shown.
func (p *AnimationPlayer) Frame() int { return p.frame }

// Draw renders the current frame with its bottom-center at position,
// flipped horizontally when flip is set.
func (p *AnimationPlayer) Draw(screen *ebiten.Image, position cp.Vector, flip bool) {
	a := p.animation
	if a == nil || a.Image == nil {
		return
	}

	src := a.Image.SubImage(image.Rect(
		p.frame*a.frameWidth, 0,
		(p.frame+1)*a.frameWidth, a.frameHeight,
	)).(*ebiten.Image)

	origin := p.Origin()
	op := &ebiten.DrawImageOptions{}
	if flip {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(a.frameWidth), 0)
	}
	op.GeoM.Translate(position.X-origin.X, position.Y-origin.Y)
	screen.DrawImage(src, op)
}
