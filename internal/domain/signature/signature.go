// Package signature checks hand-drawn signatures captured as SVG path data.
package signature

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"parkspace-booking/internal/pkg/errs"
)

const (
	MinCommands = 10
	MinArea     = 1000.0
)

var (
	ErrInvalidSignature = errs.New("invalid signature")
	ErrEmptySignature   = errs.NewKind("signature appears to be empty", ErrInvalidSignature)
	ErrTooSimple        = errs.NewKind("signature is too simple", ErrInvalidSignature)
	ErrTooSmall         = errs.NewKind("signature is too small", ErrInvalidSignature)
)

var (
	pathElement = regexp.MustCompile(`<path\b[^>]*?\sd="([^"]*)"`)
	command     = regexp.MustCompile(`[MmLl]`)
	number      = regexp.MustCompile(`-?\d*\.?\d+`)
)

type Point struct {
	X, Y float64
}

// Stroke is the parsed form of a signature: all M/L commands and coordinates
// across every path element.
type Stroke struct {
	Commands int
	Points   []Point
}

// Parse accepts SVG markup or bare path data.
func Parse(input string) Stroke {
	var paths []string
	if strings.Contains(input, "<path") {
		for _, m := range pathElement.FindAllStringSubmatch(input, -1) {
			paths = append(paths, m[1])
		}
	} else {
		paths = []string{input}
	}

	var s Stroke
	for _, p := range paths {
		s.Commands += len(command.FindAllStringIndex(p, -1))
		nums := number.FindAllString(p, -1)
		for i := 0; i+1 < len(nums); i += 2 {
			x, errX := strconv.ParseFloat(nums[i], 64)
			y, errY := strconv.ParseFloat(nums[i+1], 64)
			if errX != nil || errY != nil {
				continue
			}
			s.Points = append(s.Points, Point{X: x, Y: y})
		}
	}
	return s
}

// BoundingBox returns the width and height spanned by all points.
func (s Stroke) BoundingBox() (width, height float64) {
	if len(s.Points) == 0 {
		return 0, 0
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range s.Points {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return maxX - minX, maxY - minY
}

// Validate stops at the first failing check: empty, too simple, too small.
func Validate(input string) error {
	s := Parse(input)
	if s.Commands == 0 {
		return ErrEmptySignature
	}
	if s.Commands < MinCommands {
		return errs.Wrapf(ErrTooSimple, "%d commands", s.Commands)
	}
	if w, h := s.BoundingBox(); w*h < MinArea {
		return errs.Wrapf(ErrTooSmall, "bounding box %.0fx%.0f", w, h)
	}
	return nil
}

// Reason maps a validation error to a stable machine-readable code.
func Reason(err error) string {
	switch {
	case errs.Is(err, ErrEmptySignature):
		return "empty"
	case errs.Is(err, ErrTooSimple):
		return "too_simple"
	case errs.Is(err, ErrTooSmall):
		return "too_small"
	}
	return ""
}
