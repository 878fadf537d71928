package gamemath

import "math"

// WorldToTile rounds a world coordinate to the nearest tile index, recovering
// the logical tile of an entity whose animated position drifted slightly.
func WorldToTile(world, tileSize float32) int {
	return int(math.Floor(float64(world/tileSize + 0.5)))
}

// TileToWorld converts a tile index to its world coordinate.
func TileToWorld(tile int, tileSize float32) float32 {
	return float32(tile) * tileSize
}

// InBounds reports whether (x, y) lies inside a w × h grid.
func InBounds(x, y, w, h int) bool {
	return x >= 0 && x < w && y >= 0 && y < h
}
