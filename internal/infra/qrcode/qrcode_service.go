// Package qrcode renders and parses the scan codes printed on catalog products.
package qrcode

import (
	"encoding/json"
	"strings"

	"greenscore/config"
	"greenscore/internal/domain/service"
	"greenscore/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256

	productCodeType = "product"
)

// ErrInvalidProductCode is returned when scanned data is not a product code.
var ErrInvalidProductCode = errors.New("invalid product code")

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// ProductCodeData is the JSON payload carried by a product scan code.
type ProductCodeData struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"`
}

// New builds the scan code service from the qrcode config section.
func New(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateProductQR encodes the product reference as JSON and renders it as a PNG
func (s *qrcodeService) GenerateProductQR(productID uuid.UUID) ([]byte, error) {
	jsonData, err := json.Marshal(ProductCodeData{
		ProductID: productID.String(),
		Type:      productCodeType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal product code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseProductQR decodes scanned data and returns the product ID it references.
// Every failure wraps ErrInvalidProductCode.
func (s *qrcodeService) ParseProductQR(qrData string) (uuid.UUID, error) {
	var data ProductCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, errors.Wrap(ErrInvalidProductCode, "payload is not JSON")
	}

	if data.Type != productCodeType {
		return uuid.Nil, errors.Wrapf(ErrInvalidProductCode, "unexpected code type %q", data.Type)
	}

	productID, err := uuid.Parse(data.ProductID)
	if err != nil {
		return uuid.Nil, errors.Wrapf(ErrInvalidProductCode, "malformed product id %q", data.ProductID)
	}

	return productID, nil
}
