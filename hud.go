package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/game"
)

// When the time remaining drops below this, the timer blinks red.
const warningTime = 10.0

// HUD draws the timer, the score and the win/lose/died status overlays.
type HUD struct {
	face        ebtext.Face
	winOverlay  *ebiten.Image
	loseOverlay *ebiten.Image
	diedOverlay *ebiten.Image
}

func NewHUD() (*HUD, error) {
	h := &HUD{
		face: ebtext.NewGoXFace(basicfont.Face7x13),
	}

	overlays := []struct {
		dst  **ebiten.Image
		path string
	}{
		{&h.winOverlay, "overlays/you_win.png"},
		{&h.loseOverlay, "overlays/you_lose.png"},
		{&h.diedOverlay, "overlays/you_died.png"},
	}
	for _, o := range overlays {
		img, err := assets.Default.LoadImage(o.path)
		if err != nil {
			return nil, err
		}
		*o.dst = img
	}
	return h, nil
}

func (h *HUD) Draw(screen *ebiten.Image, level *game.Level, score int) {
	timeRemaining := level.TimeRemaining()

	timeString := fmt.Sprintf("Time: %d:%02d",
		int(timeRemaining/60), int(math.Mod(timeRemaining, 60)))

	// Blink between yellow and red per whole second once time runs low.
	timeColor := colornames.Yellow
	if timeRemaining <= warningTime && !level.IsExitReached() &&
		int(timeRemaining)%2 != 0 {
		timeColor = colornames.Red
	}

	h.drawShadowed(screen, timeString, 10, 10, timeColor)
	h.drawShadowed(screen, fmt.Sprintf("Score: %d", score), 10, 28, colornames.Yellow)

	if status := h.statusOverlay(level); status != nil {
		bounds := status.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(
			float64(screenWidth-bounds.Dx())/2,
			float64(screenHeight-bounds.Dy())/2,
		)
		screen.DrawImage(status, op)
	}
}

func (h *HUD) statusOverlay(level *game.Level) *ebiten.Image {
	switch {
	case level.TimeRemaining() <= 0 && level.IsExitReached():
		return h.winOverlay
	case level.TimeRemaining() <= 0:
		return h.loseOverlay
	case !level.Player().IsAlive():
		return h.diedOverlay
	}
	return nil
}

func (h *HUD) drawShadowed(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	shadow := &ebtext.DrawOptions{}
	shadow.GeoM.Translate(x+1, y+1)
	shadow.ColorScale.ScaleWithColor(colornames.Black)
	ebtext.Draw(screen, s, h.face, shadow)

	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	ebtext.Draw(screen, s, h.face, op)
}
