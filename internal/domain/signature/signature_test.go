//go:build unit

package signature_test

import (
	"fmt"
	"strings"
	"testing"

	"parkspace-booking/internal/domain/signature"
	"parkspace-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

// zigzag draws n commands spanning roughly size x size units.
func zigzag(n int, size float64) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		x := size * float64(i) / float64(n-1)
		y := 0.0
		if i%2 == 1 {
			y = size
		}
		fmt.Fprintf(&sb, "%s%.1f %.1f ", cmd, x, y)
	}
	return strings.TrimSpace(sb.String())
}

func svg(paths ...string) string {
	var sb strings.Builder
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 400 200">`)
	for _, p := range paths {
		fmt.Fprintf(&sb, `<path d="%s" stroke="black" fill="none"/>`, p)
	}
	sb.WriteString(`</svg>`)
	return sb.String()
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		errIs  error
		reason string
	}{
		{name: "valid svg", input: svg(zigzag(12, 100))},
		{name: "valid raw path", input: zigzag(10, 50)},
		{name: "strokes split across paths", input: svg(zigzag(5, 100), zigzag(5, 100))},
		{name: "empty input", input: "", errIs: signature.ErrEmptySignature, reason: "empty"},
		{name: "svg without paths", input: `<svg><path stroke="black"/></svg>`, errIs: signature.ErrEmptySignature, reason: "empty"},
		{name: "three commands", input: "M0 0 L100 100 L0 100", errIs: signature.ErrTooSimple, reason: "too_simple"},
		{name: "nine commands", input: svg(zigzag(9, 200)), errIs: signature.ErrTooSimple, reason: "too_simple"},
		{name: "ten commands in 5x5 box", input: svg(zigzag(10, 5)), errIs: signature.ErrTooSmall, reason: "too_small"},
		{name: "flat line has no area", input: "M0 10 L10 10 L20 10 L30 10 L40 10 L50 10 L60 10 L70 10 L80 10 L90 10", errIs: signature.ErrTooSmall, reason: "too_small"},
		{name: "lowercase commands count", input: "m0 0 l100 100 l0 -100 l100 100 l0 -100 l100 100 l0 -100 l100 100 l0 -100 l100 100"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := signature.Validate(tc.input)
			if tc.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
			assert.True(t, errs.Is(err, signature.ErrInvalidSignature))
			assert.Equal(t, tc.reason, signature.Reason(err))
			for _, other := range []error{signature.ErrEmptySignature, signature.ErrTooSimple, signature.ErrTooSmall} {
				if other != tc.errIs {
					assert.False(t, errs.Is(err, other), "%v must not match %v", err, other)
				}
			}
		})
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{signature.ErrEmptySignature, signature.ErrTooSimple, signature.ErrTooSmall}
	for i, a := range sentinels {
		assert.True(t, errs.Is(a, signature.ErrInvalidSignature))
		assert.False(t, errs.Is(signature.ErrInvalidSignature, a))
		for j, b := range sentinels {
			assert.Equal(t, i == j, errs.Is(a, b), "Is(%v, %v)", a, b)
		}
	}
}

func TestParse(t *testing.T) {
	s := signature.Parse(`<path d="M10 20 L30 -5.5"/><path fill="none" d="M.5 1"/>`)
	assert.Equal(t, 3, s.Commands)
	assert.Equal(t, []signature.Point{{X: 10, Y: 20}, {X: 30, Y: -5.5}, {X: 0.5, Y: 1}}, s.Points)

	w, h := s.BoundingBox()
	assert.InDelta(t, 29.5, w, 1e-9)
	assert.InDelta(t, 25.5, h, 1e-9)
}
