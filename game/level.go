package game

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

const (
	// Layer index drawn immediately behind the entities.
	entityLayer = 2
	// Score awarded per second left on the clock when the exit is reached.
	pointsPerSecond = 5
	// Countdown each level starts with, in seconds.
	startTime = 70.0

	backgroundLayers   = 3
	backgroundSegments = 3

	impassableVariants = 7
	decorativeVariants = 2
)

var invalidPosition = cp.Vector{X: -1, Y: -1}

// LevelArgs carries the collaborators a level needs beyond its map text.
type LevelArgs struct {
	// Score is the shared score cell. The level is its only writer.
	Score *int
	// Content loads images and sounds referenced by the map.
	Content Content
	// Rand picks tile and background variants. Nil means time-seeded;
	// inject a seeded source for reproducible construction.
	Rand *rand.Rand
}

// Level owns the tile grid, the player, the gems, the enemies, the
// countdown and the exit state, and drives their per-step updates.
type Level struct {
	name   string
	width  int
	height int
	tiles  []Tile
	layers [backgroundLayers]*ebiten.Image

	player  *Player
	gems    []*Gem
	enemies []*Enemy

	start cp.Vector
	exit  cp.Vector

	score         *int
	isExitReached bool
	timeRemaining float64
	totalTime     float64

	exitReachedSound Sound

	content Content
	rng     *rand.Rand
}

// NewLevel parses an ASCII map into a fully constructed level. Rows must
// have equal length after trailing-whitespace trimming; the map needs
// exactly one start tile and allows at most one exit.
func NewLevel(name, contents string, args LevelArgs) (*Level, error) {
	if args.Content == nil {
		return nil, fmt.Errorf("level %q: no content source", name)
	}
	rng := args.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	l := &Level{
		name:          name,
		exit:          invalidPosition,
		start:         invalidPosition,
		score:         args.Score,
		timeRemaining: startTime,
		content:       args.Content,
		rng:           rng,
	}

	lines, err := splitMapLines(contents)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}
	l.width = len(lines[0])
	l.height = len(lines)

	l.tiles = make([]Tile, l.width*l.height)
	for y, line := range lines {
		for x, ch := range []byte(line) {
			tile, err := l.loadTile(ch, x, y)
			if err != nil {
				return nil, fmt.Errorf("level %q (%d,%d): %w", name, x, y, err)
			}
			l.tiles[y*l.width+x] = tile
		}
	}

	if l.start == invalidPosition {
		return nil, fmt.Errorf("level %q: no player start tile", name)
	}

	// Pick a random segment of each background layer for level variety.
	for i := range l.layers {
		segment := rng.Intn(backgroundSegments)
		img, err := l.content.LoadImage(fmt.Sprintf("backgrounds/layer%d_%d.png", i, segment))
		if err != nil {
			return nil, fmt.Errorf("level %q: background layer %d: %w", name, i, err)
		}
		l.layers[i] = img
	}

	l.exitReachedSound, err = l.content.LoadSound("sounds/exit_reached.wav")
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}

	return l, nil
}

func splitMapLines(contents string) ([]string, error) {
	raw := strings.Split(contents, "\n")
	// A trailing newline produces one empty final element; drop it.
	if len(raw) > 0 && strings.TrimRight(raw[len(raw)-1], " \r") == "" {
		raw = raw[:len(raw)-1]
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("map is empty")
	}

	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		lines = append(lines, strings.TrimRight(line, " \r"))
	}
	for i := 1; i < len(lines); i++ {
		if len(lines[i]) != len(lines[0]) {
			return nil, fmt.Errorf("line %d length %d differs from %d", i+1, len(lines[i]), len(lines[0]))
		}
	}
	if len(lines[0]) == 0 {
		return nil, fmt.Errorf("map is empty")
	}
	return lines, nil
}

func (l *Level) loadTile(ch byte, x, y int) (Tile, error) {
	switch ch {
	case '.': // blank space
		return Tile{Collision: CollisionPassable}, nil
	case 'X':
		return l.loadExitTile(x, y)
	case 'G':
		return l.loadGemTile(x, y, false)
	case 'U':
		return l.loadGemTile(x, y, true)
	case '-': // floating platform
		return l.loadImageTile("platform", CollisionPlatform)
	case 'A':
		return l.loadEnemyTile(x, y, "monster_a")
	case 'B':
		return l.loadEnemyTile(x, y, "monster_b")
	case 'C':
		return l.loadEnemyTile(x, y, "monster_c")
	case 'D':
		return l.loadEnemyTile(x, y, "monster_d")
	case '~': // platform block
		return l.loadVarietyTile("block_b", decorativeVariants, CollisionPlatform)
	case ':': // passable block
		return l.loadVarietyTile("block_b", decorativeVariants, CollisionPassable)
	case '1':
		return l.loadStartTile(x, y)
	case '#': // impassable block
		return l.loadVarietyTile("block_a", impassableVariants, CollisionImpassable)
	default:
		return Tile{}, fmt.Errorf("unsupported tile type character %q", ch)
	}
}

func (l *Level) loadImageTile(name string, collision TileCollision) (Tile, error) {
	img, err := l.content.LoadImage(fmt.Sprintf("tiles/%s.png", name))
	if err != nil {
		return Tile{}, fmt.Errorf("tile %q: %w", name, err)
	}
	return Tile{Image: img, Collision: collision}, nil
}

func (l *Level) loadVarietyTile(baseName string, variants int, collision TileCollision) (Tile, error) {
	return l.loadImageTile(fmt.Sprintf("%s%d", baseName, l.rng.Intn(variants)), collision)
}

func (l *Level) loadStartTile(x, y int) (Tile, error) {
	if l.start != invalidPosition {
		return Tile{}, fmt.Errorf("a level may only have one player start")
	}
	l.start = l.TileBounds(x, y).BottomCenter()

	player, err := NewPlayer(l, l.start)
	if err != nil {
		return Tile{}, err
	}
	l.player = player

	return Tile{Collision: CollisionPassable}, nil
}

func (l *Level) loadExitTile(x, y int) (Tile, error) {
	if l.exit != invalidPosition {
		return Tile{}, fmt.Errorf("a level may only have one exit")
	}
	l.exit = l.TileBounds(x, y).Center()
	return l.loadImageTile("exit", CollisionPassable)
}

func (l *Level) loadEnemyTile(x, y int, spriteSet string) (Tile, error) {
	enemy, err := NewEnemy(l, l.TileBounds(x, y).BottomCenter(), spriteSet)
	if err != nil {
		return Tile{}, err
	}
	l.enemies = append(l.enemies, enemy)
	return Tile{Collision: CollisionPassable}, nil
}

func (l *Level) loadGemTile(x, y int, isSuper bool) (Tile, error) {
	gem, err := NewGem(l, l.TileBounds(x, y).Center(), isSuper)
	if err != nil {
		return Tile{}, err
	}
	l.gems = append(l.gems, gem)
	return Tile{Collision: CollisionPassable}, nil
}

// Update advances the world by one fixed step.
func (l *Level) Update(dt float64, in Input) {
	l.totalTime += dt

	switch {
	case !l.player.IsAlive() || l.timeRemaining <= 0:
		// Dead or out of time: physics still runs so the death animation
		// falls naturally, but nothing else moves.
		l.player.Update(dt)

	case l.isExitReached:
		// Animate the remaining time converting into points.
		seconds := math.Round(dt * 100)
		if c := math.Ceil(l.timeRemaining); c < seconds {
			seconds = c
		}
		l.timeRemaining -= seconds
		l.addScore(int(seconds) * pointsPerSecond)

		l.player.Update(dt)

	default:
		l.timeRemaining -= dt
		l.player.UpdateInput(in)
		l.player.Update(dt)
		l.updateGems()

		// Falling off the bottom of the level kills the player.
		if l.player.BoundingRect().Top() >= float64(l.height)*TileHeight {
			l.onPlayerKilled(nil)
		}

		l.updateEnemies(dt)

		if l.player.IsAlive() && l.player.IsOnGround() &&
			l.player.BoundingRect().Contains(l.exit) {
			l.onExitReached()
		}
	}

	if l.timeRemaining < 0 {
		l.timeRemaining = 0
	}
}

func (l *Level) updateGems() {
	playerRect := l.player.BoundingRect()

	for i := 0; i < len(l.gems); i++ {
		gem := l.gems[i]
		gem.Update(l.totalTime)

		if playerRect.IntersectsCircle(gem.BoundingCircle()) {
			l.onGemCollected(gem)
			l.gems = append(l.gems[:i], l.gems[i+1:]...)
			i--
		}
	}
}

func (l *Level) updateEnemies(dt float64) {
	playerRect := l.player.BoundingRect()

	for _, enemy := range l.enemies {
		enemy.Update(dt)

		if enemy.BoundingRect().Intersects(playerRect) {
			l.onPlayerKilled(enemy)
		}
	}
}

func (l *Level) onGemCollected(gem *Gem) {
	l.addScore(gem.ScoreValue())
	gem.OnCollected()
}

func (l *Level) onPlayerKilled(killedBy *Enemy) {
	l.player.OnKilled(killedBy)
}

func (l *Level) onExitReached() {
	l.player.OnReachedExit()
	if l.exitReachedSound != nil {
		l.exitReachedSound.Play()
	}
	l.isExitReached = true
}

func (l *Level) addScore(points int) {
	if l.score != nil {
		*l.score += points
	}
}

// StartNewLife respawns the player at the level's start point.
func (l *Level) StartNewLife() {
	l.player.Reset(l.start)
}

// CollisionAt is total over all integer coordinates: the level edges are
// walls, while the space above and below the grid is open so the player
// can jump over the top and fall out the bottom.
func (l *Level) CollisionAt(x, y int) TileCollision {
	if x < 0 || x >= l.width {
		return CollisionImpassable
	}
	if y < 0 || y >= l.height {
		return CollisionPassable
	}
	return l.tiles[y*l.width+x].Collision
}

// TileBounds is the world rectangle covered by the tile at (x, y).
func (l *Level) TileBounds(x, y int) Rect {
	return Rect{
		X:      float64(x) * TileWidth,
		Y:      float64(y) * TileHeight,
		Width:  TileWidth,
		Height: TileHeight,
	}
}

func (l *Level) Name() string           { return l.name }
func (l *Level) Width() int             { return l.width }
func (l *Level) Height() int            { return l.height }
func (l *Level) Player() *Player        { return l.player }
func (l *Level) IsExitReached() bool    { return l.isExitReached }
func (l *Level) TimeRemaining() float64 { return l.timeRemaining }
func (l *Level) GemsRemaining() int     { return len(l.gems) }

func (l *Level) Draw(screen *ebiten.Image) {
	for i := 0; i <= entityLayer && i < len(l.layers); i++ {
		l.drawLayer(screen, l.layers[i])
	}

	l.drawTiles(screen)

	for _, gem := range l.gems {
		gem.Draw(screen)
	}

	l.player.Draw(screen)

	for _, enemy := range l.enemies {
		enemy.Draw(screen)
	}

	for i := entityLayer + 1; i < len(l.layers); i++ {
		l.drawLayer(screen, l.layers[i])
	}
}

func (l *Level) drawLayer(screen, layer *ebiten.Image) {
	if layer == nil {
		return
	}
	bounds := layer.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	screenBounds := screen.Bounds()
	op.GeoM.Scale(
		float64(screenBounds.Dx())/float64(bounds.Dx()),
		float64(screenBounds.Dy())/float64(bounds.Dy()),
	)
	screen.DrawImage(layer, op)
}

func (l *Level) drawTiles(screen *ebiten.Image) {
	for y := 0; y < l.height; y++ {
		for x := 0; x < l.width; x++ {
			img := l.tiles[y*l.width+x].Image
			if img == nil {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x)*TileWidth, float64(y)*TileHeight)
			screen.DrawImage(img, op)
		}
	}
}
