package game

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestGemScoreValues(t *testing.T) {
	lvl, _, _ := newTestLevel(t, "1.\n##")

	gem, err := NewGem(lvl, cp.Vector{X: 100, Y: 50}, false)
	if err != nil {
		t.Fatalf("NewGem: %v", err)
	}
	super, err := NewGem(lvl, cp.Vector{X: 140, Y: 50}, true)
	if err != nil {
		t.Fatalf("NewGem: %v", err)
	}

	if gem.ScoreValue() != 30 {
		t.Fatalf("expected gem worth 30, got %d", gem.ScoreValue())
	}
	if super.ScoreValue() != 100 {
		t.Fatalf("expected super gem worth 100, got %d", super.ScoreValue())
	}
}

func TestGemBounceWaveform(t *testing.T) {
	lvl, _, _ := newTestLevel(t, "1.\n##")
	base := cp.Vector{X: 100, Y: 50}
	gem, err := NewGem(lvl, base, false)
	if err != nil {
		t.Fatalf("NewGem: %v", err)
	}

	for _, totalTime := range []float64{0, 0.3, 1.0, 2.7} {
		gem.Update(totalTime)

		want := math.Sin(totalTime*gemBounceRate+base.X*gemBounceSync) *
			gemBounceHeight * 32
		got := gem.Position().Y - base.Y
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("t=%v: expected bounce %v, got %v", totalTime, want, got)
		}
		if gem.Position().X != base.X {
			t.Fatalf("expected bounce to leave X unchanged, got %v", gem.Position().X)
		}
	}
}

func TestSuperGemBouncesFasterAndFlatter(t *testing.T) {
	lvl, _, _ := newTestLevel(t, "1.\n##")
	base := cp.Vector{X: 100, Y: 50}
	super, err := NewGem(lvl, base, true)
	if err != nil {
		t.Fatalf("NewGem: %v", err)
	}

	super.Update(0.4)

	want := math.Sin(0.4*gemBounceRate*1.4+base.X*gemBounceSync) *
		gemBounceHeight * 0.8 * 32
	got := super.Position().Y - base.Y
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected super bounce %v, got %v", want, got)
	}
}

func TestGemBoundingCircle(t *testing.T) {
	lvl, _, _ := newTestLevel(t, "1.\n##")
	gem, err := NewGem(lvl, cp.Vector{X: 100, Y: 50}, false)
	if err != nil {
		t.Fatalf("NewGem: %v", err)
	}

	circle := gem.BoundingCircle()
	if circle.Radius != TileWidth/3 {
		t.Fatalf("expected radius %v, got %v", TileWidth/3, circle.Radius)
	}
	if circle.Center != gem.Position() {
		t.Fatalf("expected circle centered on the gem, got %v", circle.Center)
	}
}

func TestGemCollectedSound(t *testing.T) {
	lvl, content, _ := newTestLevel(t, "1.\n##")

	gem, err := NewGem(lvl, cp.Vector{X: 100, Y: 50}, false)
	if err != nil {
		t.Fatalf("NewGem: %v", err)
	}
	super, err := NewGem(lvl, cp.Vector{X: 140, Y: 50}, true)
	if err != nil {
		t.Fatalf("NewGem: %v", err)
	}

	gem.OnCollected()
	super.OnCollected()

	if got := content.playCount("sounds/gem_collected.wav"); got != 1 {
		t.Fatalf("expected 1 gem sound, got %d", got)
	}
	if got := content.playCount("sounds/super_gem_collected.wav"); got != 1 {
		t.Fatalf("expected 1 super gem sound, got %d", got)
	}
}
