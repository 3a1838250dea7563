package encoder

import (
	"errors"
	"strings"
	"testing"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qr2svg/internal/domain"
)

func TestEncode_HelloIsVersionOne(t *testing.T) {
	enc, err := New("medium")
	require.NoError(t, err)

	grid, err := enc.Encode("hello")
	require.NoError(t, err)
	assert.Equal(t, 21, grid.Size())

	// Finder pattern corners are dark without a quiet zone.
	assert.True(t, grid.Cell(0, 0))
	assert.True(t, grid.Cell(0, 20))
	assert.True(t, grid.Cell(20, 0))
}

func TestEncode_IsSquare(t *testing.T) {
	enc := &Encoder{Level: qrcode.Medium}
	grid, err := enc.Encode(strings.Repeat("a", 120))
	require.NoError(t, err)

	g := grid.(*Grid)
	for _, row := range g.bits {
		assert.Len(t, row, g.Size())
	}
}

func TestEncode_TooLongIsEncodingError(t *testing.T) {
	enc := &Encoder{Level: qrcode.Highest}
	_, err := enc.Encode(strings.Repeat("x", 5000))
	require.Error(t, err)

	var encErr *domain.EncodingError
	assert.True(t, errors.As(err, &encErr))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"", qrcode.Medium},
		{"medium", qrcode.Medium},
		{"LOW", qrcode.Low},
		{"high", qrcode.High},
		{"highest", qrcode.Highest},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseLevel("ultra")
	assert.Error(t, err)
	_, err = New("ultra")
	assert.Error(t, err)
}
