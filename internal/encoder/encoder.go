package encoder

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"qr2svg/internal/domain"
)

// Grid is the module matrix of an encoded QR symbol, without quiet zone.
type Grid struct {
	bits [][]bool
}

// Size returns the side length of the grid.
func (g *Grid) Size() int { return len(g.bits) }

// Cell reports whether module (i, j) is dark; i indexes rows, j columns.
func (g *Grid) Cell(i, j int) bool { return g.bits[i][j] }

// Encoder turns text into a module grid using skip2/go-qrcode.
type Encoder struct {
	Level qrcode.RecoveryLevel
}

// New returns an Encoder for the given recovery level name.
func New(level string) (*Encoder, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return &Encoder{Level: lvl}, nil
}

// ParseLevel maps low|medium|high|highest to a recovery level. An empty
// name selects medium.
func ParseLevel(name string) (qrcode.RecoveryLevel, error) {
	switch strings.ToLower(name) {
	case "", "medium", "m":
		return qrcode.Medium, nil
	case "low", "l":
		return qrcode.Low, nil
	case "high", "q":
		return qrcode.High, nil
	case "highest", "h":
		return qrcode.Highest, nil
	}
	return qrcode.Medium, fmt.Errorf("unknown error correction level %q", name)
}

// Encode builds the module grid for text. Library failures are returned as
// *domain.EncodingError.
func (e *Encoder) Encode(text string) (domain.ModuleGrid, error) {
	q, err := qrcode.New(text, e.Level)
	if err != nil {
		return nil, &domain.EncodingError{Err: err}
	}
	q.DisableBorder = true
	return &Grid{bits: q.Bitmap()}, nil
}
