package gatepass

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// qrSize is the edge length in pixels of rendered pass images.
const qrSize = 256

// RenderPNG encodes a pass token string as a scannable QR PNG. The image is a
// presentation artifact only; the signed token inside it carries the security.
func RenderPNG(code string) ([]byte, error) {
	png, err := qrcode.Encode(code, qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("failed to render QR image: %w", err)
	}
	return png, nil
}

// RenderDataURL renders the token as a PNG and wraps it in a data URL so the
// frontend can drop it straight into an <img> tag.
func RenderDataURL(code string) (string, error) {
	png, err := RenderPNG(code)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
