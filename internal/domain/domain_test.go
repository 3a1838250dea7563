package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseShape(t *testing.T) {
	tests := []struct {
		in   string
		want Shape
	}{
		{"square", ShapeSquare},
		{"circle", ShapeCircle},
		{"diamond", ShapeDiamond},
		{"triangle", ShapeSquare},
		{"", ShapeSquare},
		{"CIRCLE", ShapeSquare},
		{"Diamond", ShapeSquare},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ParseShape(tc.in), "shape %q", tc.in)
	}
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "square", ShapeSquare.String())
	assert.Equal(t, "circle", ShapeCircle.String())
	assert.Equal(t, "diamond", ShapeDiamond.String())
	assert.Equal(t, "square", Shape(42).String())
}

func TestDomainErrors_AreDistinctAndMatchable(t *testing.T) {
	if ErrMissingData == ErrInvalidColor {
		t.Fatalf("domain errors must be distinct")
	}
	assert.Equal(t, "Missing required parameter 'data'.", ErrMissingData.Error())
	assert.Equal(t, "Invalid 'color' parameter, must be a valid 6 digit hex code.", ErrInvalidColor.Error())

	wrapped := errors.Join(errors.New("context"), ErrInvalidColor)
	assert.True(t, errors.Is(wrapped, ErrInvalidColor))
}

func TestEncodingError_Unwrap(t *testing.T) {
	cause := errors.New("content too long to encode")
	var err error = &EncodingError{Err: cause}

	assert.True(t, errors.Is(err, cause))
	var encErr *EncodingError
	assert.True(t, errors.As(err, &encErr))
	assert.Contains(t, err.Error(), "content too long")
	assert.Equal(t, "qr encoding failed", (&EncodingError{}).Error())
}
