// Package render maps a QR module grid onto vector shape primitives and
// serializes the result as SVG.
package render

import "qr2svg/internal/domain"

// DefaultBlockSize is the side length of one module in output units.
const DefaultBlockSize = 50

// Point is a coordinate in output units.
type Point struct {
	X, Y float64
}

// Primitive is a single filled shape of a Document.
type Primitive interface {
	Kind() domain.Shape
}

// Square is an axis-aligned square anchored at its top-left corner.
type Square struct {
	X, Y, Side float64
	Fill       string
}

// Circle is a circle inscribed in a module's bounding box.
type Circle struct {
	CX, CY, R float64
	Fill      string
}

// Diamond is the polygon through the top, right, bottom and left
// midpoints of a module's bounding box, in that order.
type Diamond struct {
	Points [4]Point
	Fill   string
}

func (Square) Kind() domain.Shape  { return domain.ShapeSquare }
func (Circle) Kind() domain.Shape  { return domain.ShapeCircle }
func (Diamond) Kind() domain.Shape { return domain.ShapeDiamond }

// Document is a rendered QR code: a square canvas and its shapes in
// row-major grid order.
type Document struct {
	CanvasSize float64
	Shapes     []Primitive
}

// Renderer converts module grids into Documents.
type Renderer struct {
	BlockSize float64
}

// New returns a Renderer; a non-positive blockSize selects DefaultBlockSize.
func New(blockSize float64) *Renderer {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return &Renderer{BlockSize: blockSize}
}

// Render walks the grid and emits one primitive per dark module. Row index
// i maps to x and column index j maps to y.
func (r *Renderer) Render(grid domain.ModuleGrid, req domain.RenderRequest) Document {
	n := grid.Size()
	doc := Document{CanvasSize: float64(n) * r.BlockSize}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !grid.Cell(i, j) {
				continue
			}
			x := float64(i) * r.BlockSize
			y := float64(j) * r.BlockSize
			doc.Shapes = append(doc.Shapes, r.module(req.Shape, x, y, req.Color))
		}
	}
	return doc
}

func (r *Renderer) module(shape domain.Shape, x, y float64, fill string) Primitive {
	half := r.BlockSize / 2
	switch shape {
	case domain.ShapeCircle:
		return Circle{CX: x + half, CY: y + half, R: half, Fill: fill}
	case domain.ShapeDiamond:
		return Diamond{
			Points: [4]Point{
				{X: x + half, Y: y},
				{X: x + r.BlockSize, Y: y + half},
				{X: x + half, Y: y + r.BlockSize},
				{X: x, Y: y + half},
			},
			Fill: fill,
		}
	default:
		return Square{X: x, Y: y, Side: r.BlockSize, Fill: fill}
	}
}
