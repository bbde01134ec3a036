package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidHeading is returned when a heading name cannot be parsed.
var ErrInvalidHeading = errors.New("invalid heading")

// Heading is one of the four grid directions. The zero value is not a valid heading.
type Heading uint8

const (
	HeadingUp Heading = iota + 1
	HeadingRight
	HeadingDown
	HeadingLeft
)

var headingNames = [...]string{
	HeadingUp:    "up",
	HeadingRight: "right",
	HeadingDown:  "down",
	HeadingLeft:  "left",
}

// Valid reports whether h is one of the four directions.
func (h Heading) Valid() bool { return h >= HeadingUp && h <= HeadingLeft }

// Opposite returns the reverse direction. It panics on an invalid heading.
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	case HeadingRight:
		return HeadingLeft
	}
	panic(fmt.Sprintf("core: invalid heading %d", uint8(h)))
}

// IsOpposite reports whether h and other point in exactly reverse directions.
func (h Heading) IsOpposite(other Heading) bool {
	return h.Valid() && other.Valid() && h.Opposite() == other
}

// Delta returns the unit step for h. Up is +Y because render space grows upward.
func (h Heading) Delta() Point {
	switch h {
	case HeadingUp:
		return Point{Y: 1}
	case HeadingDown:
		return Point{Y: -1}
	case HeadingLeft:
		return Point{X: -1}
	case HeadingRight:
		return Point{X: 1}
	}
	panic(fmt.Sprintf("core: invalid heading %d", uint8(h)))
}

func (h Heading) String() string {
	if !h.Valid() {
		return fmt.Sprintf("Heading(%d)", uint8(h))
	}
	return headingNames[h]
}

// ParseHeading converts a case-insensitive direction name into a Heading.
func ParseHeading(s string) (Heading, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for h := HeadingUp; h <= HeadingLeft; h++ {
		if headingNames[h] == name {
			return h, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidHeading, s)
}

// Set implements flag.Value.
func (h *Heading) Set(s string) error {
	parsed, err := ParseHeading(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
