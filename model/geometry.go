package model

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// BBox represents a rectangle in page space. Y grows downward from the top
// edge of the page.
type BBox struct {
	X      float64 // Left
	Y      float64 // Top
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from coordinates
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate
func (b BBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Top returns the top edge Y coordinate
func (b BBox) Top() float64 {
	return b.Y
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() float64 {
	return b.Y + b.Height
}

// Center returns the center point
func (b BBox) Center() Point {
	return Point{
		X: b.X + b.Width/2,
		Y: b.Y + b.Height/2,
	}
}

// Inset shrinks the bounding box by a margin on all sides
func (b BBox) Inset(margin float64) BBox {
	return BBox{
		X:      b.X + margin,
		Y:      b.Y + margin,
		Width:  b.Width - 2*margin,
		Height: b.Height - 2*margin,
	}
}

// CenterBox returns a box of the given size centred inside b.
func (b BBox) CenterBox(width, height float64) BBox {
	c := b.Center()
	return BBox{X: c.X - width/2, Y: c.Y - height/2, Width: width, Height: height}
}

