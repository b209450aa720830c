package geom

import "errors"

var (
	// ErrEmptyGeometry is returned when no atoms are available to bound.
	ErrEmptyGeometry = errors.New("empty geometry set")

	// ErrUnrepresentable is returned for NaN or infinite coordinates.
	ErrUnrepresentable = errors.New("coordinate not representable")

	// ErrNoGeometry is returned by decoders that found nothing usable.
	ErrNoGeometry = errors.New("no geometries found")

	// ErrUnsupportedFormat is returned for input formats with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported format")
)
