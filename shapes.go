package decochain

import (
	"fmt"
	"strconv"
)

// Square is a leaf shape with a side length in centimetres.
type Square struct {
	Side float64
}

// NewSquare creates a Square, rejecting negative sides.
func NewSquare(side float64) (Square, error) {
	if side < 0 {
		return Square{}, NewInvalidArgumentError("side", fmt.Sprintf("must not be negative, got %s", formatNumber(side)))
	}
	return Square{Side: side}, nil
}

// Describe implements Capability.
func (s Square) Describe() string {
	return fmt.Sprintf("Square with %s cm side length", formatNumber(s.Side))
}

// Circle is a leaf shape with a radius.
type Circle struct {
	Radius float64
}

// NewCircle creates a Circle, rejecting negative radii.
func NewCircle(radius float64) (Circle, error) {
	if radius < 0 {
		return Circle{}, NewInvalidArgumentError("radius", fmt.Sprintf("must not be negative, got %s", formatNumber(radius)))
	}
	return Circle{Radius: radius}, nil
}

// Describe implements Capability.
func (c Circle) Describe() string {
	return fmt.Sprintf("Circle with radius %s", formatNumber(c.Radius))
}

// formatNumber prints the shortest representation that round-trips: 4, 20.5.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
