package solve

import "fmt"

// InvalidGeometryError reports non-positive reference area, span or
// chord at solve entry, and a bound/camber mesh count mismatch. Chord,
// span and section/segment count checks on the wing itself are made by
// wing.NewHalfWing, which returns plain errors, not this type.
type InvalidGeometryError struct {
	Reason string
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid geometry: %s", e.Reason)
}

// InvalidFreestreamError reports a non-positive freestream speed.
type InvalidFreestreamError struct {
	Reason string
}

func (e *InvalidFreestreamError) Error() string {
	return fmt.Sprintf("invalid freestream: %s", e.Reason)
}

// SingularSystemError reports a numerically singular AIC matrix
// (LU condition estimate above tolerance, or a failed LU solve), fatal
// per spec.md §7; callers can recover Pivot/Cond via errors.As for
// diagnostics. Pivot holds the reciprocal of the condition estimate,
// or 0 when the solve itself fails.
type SingularSystemError struct {
	Pivot float64
	Cond  float64
}

func (e *SingularSystemError) Error() string {
	return fmt.Sprintf("singular AIC system: reciprocal condition %.3e, condition estimate %.3e", e.Pivot, e.Cond)
}
