package errorz

import "errors"

var (
	InvalidColor     = errors.New("invalid color")
	MissingInput     = errors.New("missing input")
	LogoUnreadable   = errors.New("logo unreadable")
	DegenerateLayout = errors.New("degenerate layout")
	ValidationFailed = errors.New("validation failed")
)
