package reports

import (
	"fmt"
	"time"
)

func validatePeriod(from, to *time.Time) error {
	if from != nil && to != nil && to.Before(*from) {
		return fmt.Errorf("%w: 'to' must not be before 'from'", ErrInvalidInput)
	}
	return nil
}
