// Package core provides fundamental types and utilities for the arena.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

import "math"

// Vec2 is a point or displacement in world space.
// World space is centred on the origin with +Y pointing up.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Circle is a bounding circle used for collision detection.
type Circle struct {
	Center Vec2
	Radius float64
}

// Touching reports whether two circles overlap.
// Circles whose centres are exactly r1+r2 apart are not touching.
func Touching(a, b Circle) bool {
	return a.Center.Distance(b.Center) < a.Radius+b.Radius
}

// Arena is the bounded play field, measured in tiles.
// The arena is centred on the world origin.
type Arena struct {
	Width    int     // Width in tiles
	Height   int     // Height in tiles
	TileSize float64 // World units per tile
}

// NewArena creates an arena with the given tile dimensions.
func NewArena(width, height int, tileSize float64) Arena {
	return Arena{Width: width, Height: height, TileSize: tileSize}
}

// HalfWidth returns half the arena width in world units.
func (a Arena) HalfWidth() float64 {
	return float64(a.Width) / 2 * a.TileSize
}

// HalfHeight returns half the arena height in world units.
func (a Arena) HalfHeight() float64 {
	return float64(a.Height) / 2 * a.TileSize
}

// Contains reports whether p lies inside the arena bounds (edges inclusive).
func (a Arena) Contains(p Vec2) bool {
	hw, hh := a.HalfWidth(), a.HalfHeight()
	return p.X >= -hw && p.X <= hw && p.Y >= -hh && p.Y <= hh
}

// TileCenter converts tile coordinates relative to the origin into world space.
func (a Arena) TileCenter(tx, ty int) Vec2 {
	return Vec2{X: float64(tx) * a.TileSize, Y: float64(ty) * a.TileSize}
}

// ToTile converts a world position to the nearest tile coordinates.
func (a Arena) ToTile(p Vec2) (int, int) {
	return int(math.Round(p.X / a.TileSize)), int(math.Round(p.Y / a.TileSize))
}

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
