package cli

import (
	"strconv"
	"strings"

	"github.com/mklettner/dropzone/pkg/errors"
	"github.com/mklettner/dropzone/pkg/hover"
)

// parseRoom parses a "WIDTHxHEIGHT" flag value (e.g., "800x120") into a
// room rectangle. Both dimensions must be positive.
func parseRoom(s string) (hover.Room, error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return hover.Room{}, errors.New(errors.ErrCodeInvalidRoom, "room must be WIDTHxHEIGHT, got %q", s)
	}
	width, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
	if err != nil {
		return hover.Room{}, errors.New(errors.ErrCodeInvalidRoom, "room width %q is not a number", w)
	}
	height, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
	if err != nil {
		return hover.Room{}, errors.New(errors.ErrCodeInvalidRoom, "room height %q is not a number", h)
	}
	room := hover.Room{Width: width, Height: height}
	if room.IsDegenerate() {
		return hover.Room{}, errors.New(errors.ErrCodeInvalidRoom, "room %q must have positive dimensions", s)
	}
	return room, nil
}

// parseMouse parses an "X,Y" flag value (e.g., "40,12") into a pointer
// position. Positions outside the room are allowed; the engine clamps.
func parseMouse(s string) (hover.Vector, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return hover.Vector{}, errors.New(errors.ErrCodeInvalidRequest, "mouse must be X,Y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return hover.Vector{}, errors.New(errors.ErrCodeInvalidRequest, "mouse x %q is not a number", xs)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return hover.Vector{}, errors.New(errors.ErrCodeInvalidRequest, "mouse y %q is not a number", ys)
	}
	return hover.Vector{X: x, Y: y}, nil
}
