package spinpak

import (
	"errors"
	"fmt"
)

// ErrEmptyGeometry is returned when an export is attempted with no points in
// any layer.
var ErrEmptyGeometry = errors.New("spinpak: no geometry to export")

// DomainError reports an input for which a geometric construction is
// undefined, such as a conformal map whose generating circle passes through
// the origin, or a joint fillet between collinear segments. It is fatal to
// the single computation that raised it; callers receive the error instead
// of NaN coordinates.
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("spinpak: %s: %s", e.Op, e.Reason)
}

// FitError reports a tangent-circle fit whose final residual exceeded the
// acceptance tolerance. The fitted geometry is still the solver's best
// iterate; the error exists so that callers about to cache the result can
// reject it.
type FitError struct {
	Site     string
	Residual float64
}

func (e *FitError) Error() string {
	return fmt.Sprintf("spinpak: tangent fit at %s did not converge (residual %.3g)", e.Site, e.Residual)
}
