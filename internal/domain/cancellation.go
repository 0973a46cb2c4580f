package domain

import (
	"errors"
	"strings"
)

// CancellationReason причина отмены записи
type CancellationReason string

const (
	ReasonNoShow                  CancellationReason = "Client is a no show"
	ReasonClientCancelled         CancellationReason = "Client cancelled"
	ReasonClientRescheduled       CancellationReason = "Client rescheduled"
	ReasonServiceProviderCanceled CancellationReason = "Service provider cancelled"
	ReasonOther                   CancellationReason = "Other"
)

var (
	// ErrReasonRequired причина отмены не указана
	ErrReasonRequired = errors.New("domain: cancellation reason is required")

	// ErrUnknownReason причина отмены не из списка
	ErrUnknownReason = errors.New("domain: unknown cancellation reason")

	// ErrOtherReasonRequired для причины "Other" нужен текст
	ErrOtherReasonRequired = errors.New("domain: other reason text is required")
)

// CancellationReasons допустимые причины отмены
var CancellationReasons = []CancellationReason{
	ReasonNoShow,
	ReasonClientCancelled,
	ReasonClientRescheduled,
	ReasonServiceProviderCanceled,
	ReasonOther,
}

// ResolveCancellation проверяет причину и возвращает итоговый статус и текст причины
// "Client is a no show" переводит запись в no_show, остальные причины в cancelled.
func ResolveCancellation(reason string, otherReason *string) (AppointmentStatus, string, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return "", "", ErrReasonRequired
	}

	r := CancellationReason(reason)
	known := false
	for _, cr := range CancellationReasons {
		if r == cr {
			known = true
			break
		}
	}
	if !known {
		return "", "", ErrUnknownReason
	}

	switch r {
	case ReasonNoShow:
		return StatusNoShow, reason, nil
	case ReasonOther:
		if otherReason == nil || strings.TrimSpace(*otherReason) == "" {
			return "", "", ErrOtherReasonRequired
		}
		text := strings.TrimSpace(*otherReason)
		if len(text) > MaxOtherReasonLength {
			text = text[:MaxOtherReasonLength]
		}
		return StatusCancelled, string(ReasonOther) + ": " + text, nil
	default:
		return StatusCancelled, reason, nil
	}
}
