package service

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"otc-randomizer/logger"
)

// NormalizeBarcodeImage decodes a barcode image and re-encodes it as PNG.
// When width is positive the image is scaled to that width, keeping its aspect
// ratio. Nearest neighbour keeps bar edges crisp.
func NormalizeBarcodeImage(imageData []byte, width int) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	logger.Debug("📸 Image decoded", zap.Stringer("bounds", img.Bounds()))

	var resized image.Image = img
	if width > 0 && img.Bounds().Dx() != width {
		resized = imaging.Resize(img, width, 0, imaging.NearestNeighbor)
		logger.Debug("🔄 Resized barcode",
			zap.Int("from", img.Bounds().Dx()),
			zap.Int("to", resized.Bounds().Dx()))
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return nil, fmt.Errorf("failed to encode to PNG: %w", err)
	}
	return buf.Bytes(), nil
}
