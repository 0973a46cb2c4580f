package sms

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonCalendar/pkg/types"
)

// ConfirmationText текст подтверждения записи
func ConfirmationText(salon, clientName string, date time.Time, start types.TimeString) string {
	return fmt.Sprintf("Hi %s, your appointment at %s is confirmed for %s at %s.",
		clientName, salon, date.Format("Mon, 02 Jan 2006"), start)
}

// ReminderText текст напоминания о записи на завтра
func ReminderText(salon, clientName string, date time.Time, start types.TimeString) string {
	return fmt.Sprintf("Hi %s, a reminder of your appointment at %s tomorrow, %s at %s. See you soon!",
		clientName, salon, date.Format("Mon, 02 Jan 2006"), start)
}
