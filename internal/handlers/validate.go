package handlers

import (
	"regexp"

	"qr2svg/internal/domain"
)

var hexColor = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// ValidateParams turns raw query parameters into a RenderRequest. A color
// that is present must be a 6 digit hex code, even when empty. Unknown
// parameters are ignored and unknown shapes fall back to square.
func ValidateParams(params map[string]string) (*domain.RenderRequest, error) {
	data := params["data"]
	if data == "" {
		return nil, domain.ErrMissingData
	}

	color := domain.DefaultColor
	if c, ok := params["color"]; ok {
		if !hexColor.MatchString(c) {
			return nil, domain.ErrInvalidColor
		}
		if c[0] != '#' {
			c = "#" + c
		}
		color = c
	}

	return &domain.RenderRequest{
		Data:  data,
		Color: color,
		Shape: domain.ParseShape(params["shape"]),
	}, nil
}
