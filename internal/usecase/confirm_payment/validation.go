package confirm_payment

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

func validateRequest(req *Request) (domain.PaymentMethod, error) {
	if req.AppointmentID <= 0 {
		return "", fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}

	method := domain.PaymentMethod(strings.ToLower(strings.TrimSpace(req.PaymentMethod)))
	if !method.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, req.PaymentMethod)
	}
	return method, nil
}
