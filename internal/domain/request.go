package domain

// DefaultColor is used when a request does not specify a color.
const DefaultColor = "#000000"

// RenderRequest holds a validated QR rendering request.
type RenderRequest struct {
	Data  string
	Color string
	Shape Shape
}

// ModuleGrid is a square matrix of QR modules. Cell reports whether the
// module at (i, j) is dark.
type ModuleGrid interface {
	Size() int
	Cell(i, j int) bool
}
