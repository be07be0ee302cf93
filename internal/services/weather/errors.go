package weather

import (
	stderrors "errors"

	"weather-advisor/internal/repositories"
)

// joinErrors keeps every provider error reachable through errors.Is.
func joinErrors(errs []error) error {
	return stderrors.Join(errs...)
}

// IsNotFound reports whether every provider rejected the location.
func IsNotFound(err error) bool {
	var joined interface{ Unwrap() []error }
	if stderrors.As(err, &joined) {
		errs := joined.Unwrap()
		for _, e := range errs {
			if !stderrors.Is(e, repositories.ErrLocationNotFound) {
				return false
			}
		}
		return len(errs) > 0
	}
	return stderrors.Is(err, repositories.ErrLocationNotFound)
}
