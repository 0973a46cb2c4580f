package tips_report

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/m04kA/SMC-SalonCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/reports/models"
)

// ToServiceRequest разбирает query параметры teamMember, from, to
func ToServiceRequest(q url.Values) (*models.TipsRequest, error) {
	from, err := handlers.ParseOptionalDate(q.Get("from"))
	if err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	to, err := handlers.ParseOptionalDate(q.Get("to"))
	if err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}

	return &models.TipsRequest{
		TeamMember: strings.TrimSpace(q.Get("teamMember")),
		From:       from,
		To:         to,
	}, nil
}
