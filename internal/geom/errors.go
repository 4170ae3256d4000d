package geom

import "errors"

var (
	ErrInputRead        = errors.New("geom: input read error")
	ErrNoGeometry       = errors.New("geom: no geometry found")
	ErrUnsupportedShape = errors.New("geom: unsupported shape kind")
)
