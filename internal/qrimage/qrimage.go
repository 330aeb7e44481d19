// Package qrimage renders target URLs into scannable QR rasters.
package qrimage

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Rendered PNG edge length in pixels.
const imageSize = 300

// PNG encodes url into a QR code PNG with high error correction, so codes
// stay readable on weathered stickers.
func PNG(url string) ([]byte, error) {
	png, err := qrcode.Encode(url, qrcode.High, imageSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}

// DataURL encodes url into a base64 PNG data URL for direct embedding in an
// <img> tag.
func DataURL(url string) (string, error) {
	png, err := PNG(url)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
