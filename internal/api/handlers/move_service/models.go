package move_service

// MoveServiceRequest HTTP request model: колонка и слот, куда перетащили услугу
type MoveServiceRequest struct {
	StaffID   int64  `json:"staffId"`
	StartTime string `json:"startTime"`
}
