// Package qr derives the shareable scan link for a message and renders it
// as a QR image. Pure transformations: no state, no side effects.
package qr

import (
	"encoding/base64"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const pngSize = 256

// BuildScanURL returns the fully-qualified public URL for a message.
// origin must be the externally visible scheme+host; an internal host here
// produces QR codes nobody outside can reach.
func BuildScanURL(origin string, messageID uint64) string {
	return fmt.Sprintf("%s/scan/%d", strings.TrimRight(origin, "/"), messageID)
}

// RenderDataURL encodes url into a PNG QR code and wraps it in a data URL,
// ready for an <img> src or a standalone download.
func RenderDataURL(url string) (string, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, pngSize)
	if err != nil {
		return "", fmt.Errorf("qr encode failed: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
