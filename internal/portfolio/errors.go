package portfolio

import "errors"

// ErrUnknownSection is returned when input does not name one of the fixed sections.
var ErrUnknownSection = errors.New("unknown section")

// ErrInvalidContent indicates loaded content cannot be rendered.
var ErrInvalidContent = errors.New("invalid portfolio content")
