//go:build unit || e2e

package testutil

import (
	"fmt"
	"strings"
)

const SignatureImage = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

// SignatureSVG returns an SVG with a zigzag stroke of n commands spanning size x size units.
func SignatureSVG(n int, size float64) string {
	var sb strings.Builder
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 400 200"><path d="`)
	for i := 0; i < n; i++ {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		y := 0.0
		if i%2 == 1 {
			y = size
		}
		fmt.Fprintf(&sb, "%s%.1f %.1f ", cmd, size*float64(i)/float64(max(n-1, 1)), y)
	}
	sb.WriteString(`" stroke="black" fill="none"/></svg>`)
	return sb.String()
}

func ValidSignatureSVG() string {
	return SignatureSVG(24, 150)
}
