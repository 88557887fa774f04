package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for product scan code generation and parsing
type QRCodeService interface {
	// GenerateProductQR generates a PNG QR code identifying the product
	GenerateProductQR(productID uuid.UUID) ([]byte, error)

	// ParseProductQR parses scanned QR code data and returns the product ID
	ParseProductQR(qrData string) (uuid.UUID, error)
}
