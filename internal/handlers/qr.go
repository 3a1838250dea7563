package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"qr2svg/internal/domain"
	"qr2svg/internal/encoder"
	"qr2svg/internal/render"
	u "qr2svg/internal/utils"
)

// MsgEncodingFailed is returned to clients when the encoder rejects the input.
const MsgEncodingFailed = "Unable to encode 'data' as a QR code."

// Encoder produces the module grid for a piece of text.
type Encoder interface {
	Encode(text string) (domain.ModuleGrid, error)
}

// QRService bundles the encoder and renderer used to answer QR requests.
type QRService struct {
	Encoder  Encoder
	Renderer *render.Renderer
}

// NewQRService creates a QRService from the render section of cfg.
func NewQRService(cfg u.Config) (*QRService, error) {
	enc, err := encoder.New(cfg.Render.ErrorCorrection)
	if err != nil {
		return nil, err
	}
	return &QRService{
		Encoder:  enc,
		Renderer: render.New(cfg.Render.BlockSize),
	}, nil
}

// Generate validates params, encodes the data and renders the document.
// Validation errors are domain sentinels; encoder failures are
// *domain.EncodingError.
func (svc *QRService) Generate(params map[string]string) (*domain.RenderRequest, render.Document, error) {
	req, err := ValidateParams(params)
	if err != nil {
		return nil, render.Document{}, err
	}

	grid, err := svc.Encoder.Encode(req.Data)
	if err != nil {
		var encErr *domain.EncodingError
		if !errors.As(err, &encErr) {
			err = &domain.EncodingError{Err: err}
		}
		return req, render.Document{}, err
	}

	return req, svc.Renderer.Render(grid, *req), nil
}

// HandleQR answers GET / with an SVG QR code.
func (svc *QRService) HandleQR(c *fiber.Ctx) error {
	req, doc, err := svc.Generate(c.Queries())
	if err != nil {
		return toHTTPError(err)
	}

	requestID := c.GetRespHeader(fiber.HeaderXRequestID)
	u.Info("QR generated", "canvas_size", doc.CanvasSize, "shapes", len(doc.Shapes), "shape", req.Shape.String(), "request_id", requestID)

	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.Send(doc.SVG())
}

func toHTTPError(err error) error {
	var encErr *domain.EncodingError
	switch {
	case errors.Is(err, domain.ErrMissingData), errors.Is(err, domain.ErrInvalidColor):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.As(err, &encErr):
		u.Warn("QR encoding failed", "error", encErr.Err)
		return fiber.NewError(fiber.StatusBadRequest, MsgEncodingFailed)
	default:
		u.Error("QR generation failed", "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}
}
