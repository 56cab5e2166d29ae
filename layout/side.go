package layout

import (
	"strings"

	"github.com/vdobler/prettyplot/errors"
)

// Side is one of the four sides of an axes.
type Side int

const (
	Top Side = iota
	Bottom
	Left
	Right
)

var sideNames = [...]string{"top", "bottom", "left", "right"}

// Sides lists all sides.
var Sides = []Side{Top, Bottom, Left, Right}

func (s Side) String() string {
	if s < Top || s > Right {
		return "invalid"
	}
	return sideNames[s]
}

// Valid reports whether s is one of the four sides.
func (s Side) Valid() bool {
	return s >= Top && s <= Right
}

// Opposite maps top to bottom and left to right and vice versa.
// It panics on an invalid side.
func (s Side) Opposite() Side {
	switch s {
	case Top:
		return Bottom
	case Bottom:
		return Top
	case Left:
		return Right
	case Right:
		return Left
	}
	panic("layout: opposite of invalid side")
}

// Horizontal reports whether s is top or bottom, i.e. whether it belongs to
// the x axis.
func (s Side) Horizontal() bool {
	return s == Top || s == Bottom
}

// ParseSide parses one of "top", "bottom", "left" or "right".
func ParseSide(s string) (Side, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range sideNames {
		if n == name {
			return Side(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidSide,
		"side %q needs to be one of [%s]", s, strings.Join(sideNames[:], ", "))
}

// OppositeSide parses s and returns its opposite.
func OppositeSide(s string) (Side, error) {
	side, err := ParseSide(s)
	if err != nil {
		return 0, err
	}
	return side.Opposite(), nil
}

// UnmarshalText lets sides be read from configuration files.
func (s *Side) UnmarshalText(text []byte) error {
	side, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = side
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidSide, "side %d is invalid", int(s))
	}
	return []byte(s.String()), nil
}
