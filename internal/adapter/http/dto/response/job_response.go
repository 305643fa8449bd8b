package response

import (
	"time"

	"repairdesk/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type StatusEntryResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}

type OutsourcedResponse struct {
	VendorName  string          `json:"vendor_name"`
	VendorPhone string          `json:"vendor_phone,omitempty"`
	Cost        decimal.Decimal `json:"cost"`
	AssignedAt  time.Time       `json:"assigned_at"`
}

type ImageRefsResponse struct {
	Before []string `json:"before,omitempty"`
	After  []string `json:"after,omitempty"`
}

type JobResponse struct {
	ID           string `json:"id"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`

	DeviceType string `json:"device_type"`
	Brand      string `json:"brand,omitempty"`
	Model      string `json:"model,omitempty"`
	Issue      string `json:"issue,omitempty"`

	ServiceType       string     `json:"service_type"`
	Address           string     `json:"address,omitempty"`
	VisitDate         *time.Time `json:"visit_date,omitempty"`
	EstimatedDelivery *time.Time `json:"estimated_delivery,omitempty"`

	Status string `json:"status"`

	TotalAmount   decimal.Decimal `json:"total_amount"`
	AdvanceAmount decimal.Decimal `json:"advance_amount"`
	Balance       decimal.Decimal `json:"balance"`

	IsWarranty bool   `json:"is_warranty"`
	Warranty   string `json:"warranty,omitempty"`

	Outsourced *OutsourcedResponse `json:"outsourced,omitempty"`

	Images ImageRefsResponse `json:"images"`

	StatusHistory []StatusEntryResponse `json:"status_history"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	res := JobResponse{
		ID:                j.ID,
		CustomerName:      j.CustomerName,
		Phone:             j.Phone,
		DeviceType:        j.DeviceType,
		Brand:             j.Brand,
		Model:             j.Model,
		Issue:             j.Issue,
		ServiceType:       string(j.ServiceType),
		Address:           j.Address,
		VisitDate:         optionalTime(j.VisitDate),
		EstimatedDelivery: optionalTime(j.EstimatedDelivery),
		Status:            string(j.Status),
		TotalAmount:       j.TotalAmount,
		AdvanceAmount:     j.AdvanceAmount,
		Balance:           j.Balance(),
		IsWarranty:        j.IsWarranty,
		Warranty:          j.Warranty,
		Images:            ImageRefsResponse{Before: j.Images.Before, After: j.Images.After},
		CreatedAt:         j.CreatedAt,
		UpdatedAt:         j.UpdatedAt,
	}

	if j.Outsourced != nil {
		res.Outsourced = &OutsourcedResponse{
			VendorName:  j.Outsourced.VendorName,
			VendorPhone: j.Outsourced.VendorPhone,
			Cost:        j.Outsourced.Cost,
			AssignedAt:  j.Outsourced.AssignedAt,
		}
	}

	res.StatusHistory = make([]StatusEntryResponse, 0, len(j.StatusHistory))
	for _, e := range j.StatusHistory {
		res.StatusHistory = append(res.StatusHistory, StatusEntryResponse{
			Status:    string(e.Status),
			Timestamp: e.Timestamp,
			Note:      e.Note,
		})
	}
	return res
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
