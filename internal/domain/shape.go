package domain

// Shape selects the geometry drawn for each dark module.
type Shape int

const (
	ShapeSquare Shape = iota
	ShapeCircle
	ShapeDiamond
)

// ParseShape maps a shape name to a Shape. Names match exactly; anything
// else, including the empty string, yields ShapeSquare.
func ParseShape(name string) Shape {
	switch name {
	case "circle":
		return ShapeCircle
	case "diamond":
		return ShapeDiamond
	default:
		return ShapeSquare
	}
}

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeDiamond:
		return "diamond"
	default:
		return "square"
	}
}
