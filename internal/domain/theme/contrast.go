package theme

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ContrastRatio computes the WCAG 2.x contrast ratio between two hex colours.
func ContrastRatio(foreground, background string) (float64, error) {
	fg, err := colorful.Hex(foreground)
	if err != nil {
		return 0, fmt.Errorf("parse foreground %q: %w", foreground, err)
	}
	bg, err := colorful.Hex(background)
	if err != nil {
		return 0, fmt.Errorf("parse background %q: %w", background, err)
	}

	l1, l2 := relativeLuminance(fg), relativeLuminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return math.Round((l1+0.05)/(l2+0.05)*100) / 100, nil
}

func relativeLuminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// MeasuredContrast computes the contrast of textPrimary on bgPrimary. The
// result is informational and is never used to reject a theme.
func MeasuredContrast(def Definition) (float64, error) {
	return ContrastRatio(def.Colors.TextPrimary, def.Colors.BgPrimary)
}
