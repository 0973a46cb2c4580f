package models

import (
	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

// ServiceResponse услуга меню
type ServiceResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Duration        string `json:"duration"`
	DurationMinutes int    `json:"durationMinutes"`
	Price           string `json:"price"`
	Category        string `json:"category,omitempty"`
}

// ServiceListResponse список услуг меню
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// StaffResponse мастер салона
type StaffResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Initial string `json:"initial"`
}

// StaffListResponse список мастеров
type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
}

// FromDomainServices конвертирует услуги меню в response
func FromDomainServices(services []*domain.CatalogService) *ServiceListResponse {
	resp := &ServiceListResponse{Services: make([]ServiceResponse, 0, len(services))}
	for _, s := range services {
		resp.Services = append(resp.Services, ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Duration:        s.Duration,
			DurationMinutes: s.DurationMinutes(),
			Price:           s.Price,
			Category:        s.Category,
		})
	}
	return resp
}

// FromDomainStaff конвертирует мастеров в response
func FromDomainStaff(staff []*domain.Staff) *StaffListResponse {
	resp := &StaffListResponse{Staff: make([]StaffResponse, 0, len(staff))}
	for _, s := range staff {
		resp.Staff = append(resp.Staff, StaffResponse{ID: s.ID, Name: s.Name, Initial: s.Initial})
	}
	return resp
}
