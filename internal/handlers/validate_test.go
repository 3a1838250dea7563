package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qr2svg/internal/domain"
)

func TestValidateParams_Defaults(t *testing.T) {
	req, err := ValidateParams(map[string]string{"data": "hello"})
	require.NoError(t, err)
	assert.Equal(t, domain.RenderRequest{Data: "hello", Color: "#000000", Shape: domain.ShapeSquare}, *req)
}

func TestValidateParams_MissingData(t *testing.T) {
	for _, params := range []map[string]string{
		nil,
		{},
		{"data": ""},
		{"color": "ff0000", "shape": "circle"},
	} {
		_, err := ValidateParams(params)
		assert.ErrorIs(t, err, domain.ErrMissingData)
	}
}

func TestValidateParams_MissingDataCheckedBeforeColor(t *testing.T) {
	_, err := ValidateParams(map[string]string{"color": "zzzzzz"})
	assert.ErrorIs(t, err, domain.ErrMissingData)
}

func TestValidateParams_ColorNormalization(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ff0000", "#ff0000"},
		{"#ff0000", "#ff0000"},
		{"ABCDEF", "#ABCDEF"},
		{"#aBc123", "#aBc123"},
	}
	for _, tc := range tests {
		req, err := ValidateParams(map[string]string{"data": "x", "color": tc.in})
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, req.Color, tc.in)
	}
}

func TestValidateParams_AbsentColorDefaults(t *testing.T) {
	req, err := ValidateParams(map[string]string{"data": "x", "shape": "circle"})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultColor, req.Color)
}

func TestValidateParams_InvalidColor(t *testing.T) {
	for _, c := range []string{"", "zzzzzz", "#12345", "1234567", "##123456", "#12345g", "red", " 123456", "123456 "} {
		_, err := ValidateParams(map[string]string{"data": "x", "color": c})
		assert.ErrorIs(t, err, domain.ErrInvalidColor, c)
	}
}

func TestValidateParams_ShapeIsPermissive(t *testing.T) {
	tests := map[string]domain.Shape{
		"square":   domain.ShapeSquare,
		"circle":   domain.ShapeCircle,
		"diamond":  domain.ShapeDiamond,
		"triangle": domain.ShapeSquare,
		"CIRCLE":   domain.ShapeSquare,
		"":         domain.ShapeSquare,
	}
	for in, want := range tests {
		req, err := ValidateParams(map[string]string{"data": "x", "shape": in})
		require.NoError(t, err, in)
		assert.Equal(t, want, req.Shape, in)
	}
}

func TestValidateParams_IgnoresUnknownParams(t *testing.T) {
	req, err := ValidateParams(map[string]string{"data": "x", "size": "huge", "format": "png"})
	require.NoError(t, err)
	assert.Equal(t, "x", req.Data)
}
