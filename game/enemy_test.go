package game

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestEnemyTurnsAtCliff(t *testing.T) {
	// The enemy patrols a two-tile ledge with open space either side.
	lvl, _, _ := newTestLevel(t, "1.A...\n#.##..")
	e := lvl.enemies[0]

	if e.Direction() != FaceLeft {
		t.Fatalf("expected initial direction left, got %v", e.Direction())
	}
	startX := e.Position().X

	// Walk to the left edge of the ledge and stop there.
	for i := 0; i < 15; i++ {
		e.Update(step)
	}
	if e.waitTime <= 0 {
		t.Fatal("expected enemy waiting at the cliff edge")
	}
	if e.Direction() != FaceLeft {
		t.Fatal("expected direction unchanged while waiting")
	}
	stoppedX := e.Position().X
	if stoppedX >= startX || stoppedX < startX-12 {
		t.Fatalf("expected enemy stopped near the edge, walked from %v to %v", startX, stoppedX)
	}

	// After the wait elapses the enemy turns around and walks back.
	for i := 0; i < 35; i++ {
		e.Update(step)
	}
	if e.Direction() != FaceRight {
		t.Fatalf("expected direction right after wait, got %v", e.Direction())
	}
	for i := 0; i < 30; i++ {
		e.Update(step)
	}
	if e.Position().X <= stoppedX {
		t.Fatalf("expected enemy walking right, still at %v", e.Position().X)
	}
}

func TestEnemyTurnsAtWall(t *testing.T) {
	lvl, _, _ := newTestLevel(t, "1#.A..\n######")
	e := lvl.enemies[0]

	for i := 0; i < 55; i++ {
		e.Update(step)
	}
	if e.waitTime <= 0 && e.Direction() != FaceRight {
		t.Fatal("expected enemy to stop at the wall")
	}

	for i := 0; i < 40; i++ {
		e.Update(step)
	}
	if e.Direction() != FaceRight {
		t.Fatalf("expected direction right after hitting wall, got %v", e.Direction())
	}

	// The wall tile ends at x = 80; the enemy never walks into it.
	if left := e.Position().X - e.localBounds.Width/2; left < 79 {
		t.Fatalf("expected enemy clear of the wall, left edge %v", left)
	}
}

func TestEnemyTurnsAtLevelEdge(t *testing.T) {
	// The space outside the grid counts as a wall.
	lvl, _, _ := newTestLevel(t, "A...1\n#####")
	e := lvl.enemies[0]

	for i := 0; i < 60; i++ {
		e.Update(step)
	}

	if e.Direction() != FaceRight {
		t.Fatalf("expected turn at the level edge, direction %v", e.Direction())
	}
	if e.Position().X < 0 {
		t.Fatalf("expected enemy inside the level, at %v", e.Position().X)
	}
}

func TestEnemyAnimationSelection(t *testing.T) {
	lvl, _, _ := newTestLevel(t, "1.A...\n#.##..")
	e := lvl.enemies[0]

	e.Update(step)
	if got := e.sprite.animation.Name; got != "run" {
		t.Fatalf("expected run animation while walking, got %q", got)
	}

	// Walk to the cliff; waiting enemies idle.
	for i := 0; i < 15; i++ {
		e.Update(step)
	}
	if e.waitTime <= 0 {
		t.Fatal("expected enemy waiting at the cliff edge")
	}
	if got := e.sprite.animation.Name; got != "idle" {
		t.Fatalf("expected idle animation while waiting, got %q", got)
	}
}

func TestEnemyIdlesWhenExitReached(t *testing.T) {
	lvl, _, _ := newTestLevel(t, "1.A...\n#.####")
	e := lvl.enemies[0]

	lvl.isExitReached = true
	e.Update(step)

	if got := e.sprite.animation.Name; got != "idle" {
		t.Fatalf("expected idle animation after exit reached, got %q", got)
	}
}

func TestEnemyBoundingRectGeometry(t *testing.T) {
	lvl, _, _ := newTestLevel(t, "1.A...\n######")
	e := lvl.enemies[0]
	e.position = cp.Vector{X: 100, Y: 32}

	got := e.BoundingRect()
	// 64 px frame: box 22 wide, 44 tall, anchored to the frame bottom.
	want := Rect{X: 89, Y: -12, Width: 22, Height: 44}
	if got != want {
		t.Fatalf("expected rect %v, got %v", want, got)
	}
}
