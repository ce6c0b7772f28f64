package game

import "github.com/hajimehoshi/ebiten/v2"

// TileCollision controls how an entity's bounding box responds to a tile.
type TileCollision int

const (
	// CollisionPassable tiles never block movement.
	CollisionPassable TileCollision = iota
	// CollisionImpassable tiles are solid on all sides.
	CollisionImpassable
	// CollisionPlatform tiles are solid only when crossed from above.
	CollisionPlatform
)

func (c TileCollision) String() string {
	switch c {
	case CollisionPassable:
		return "passable"
	case CollisionImpassable:
		return "impassable"
	case CollisionPlatform:
		return "platform"
	}
	return "unknown"
}

// Tile grid cells are a fixed 40x32 pixels in world space.
const (
	TileWidth  = 40.0
	TileHeight = 32.0
)

// Tile is one cell of the static level grid. Image may be nil for
// invisible tiles (spawn markers, empty space).
type Tile struct {
	Image     *ebiten.Image
	Collision TileCollision
}
