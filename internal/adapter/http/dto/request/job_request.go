package request

import (
	"time"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase"

	"github.com/shopspring/decimal"
)

type ImageRefsRequest struct {
	Before []string `json:"before"`
	After  []string `json:"after"`
}

// CreateJobRequest is the intake payload. Monetary values and dates travel
// as strings so malformed input is rejected explicitly instead of silently
// coerced.
type CreateJobRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`

	DeviceType string `json:"device_type" binding:"required"`
	Brand      string `json:"brand"`
	Model      string `json:"model"`
	Issue      string `json:"issue"`

	ServiceType       string `json:"service_type" binding:"required"`
	Address           string `json:"address"`
	VisitDate         string `json:"visit_date"`
	EstimatedDelivery string `json:"estimated_delivery"`

	TotalAmount   string `json:"total_amount"`
	AdvanceAmount string `json:"advance_amount"`

	IsWarranty bool   `json:"is_warranty"`
	Warranty   string `json:"warranty"`

	Images ImageRefsRequest `json:"images"`
}

func (r CreateJobRequest) ToParams() (usecase.CreateJobParams, error) {
	total, err := parseMoney(r.TotalAmount, false)
	if err != nil {
		return usecase.CreateJobParams{}, err
	}
	advance, err := parseMoney(r.AdvanceAmount, false)
	if err != nil {
		return usecase.CreateJobParams{}, err
	}
	visitDate, err := parseDate(r.VisitDate)
	if err != nil {
		return usecase.CreateJobParams{}, err
	}
	estimated, err := parseDate(r.EstimatedDelivery)
	if err != nil {
		return usecase.CreateJobParams{}, err
	}

	return usecase.CreateJobParams{
		CustomerName:      r.CustomerName,
		Phone:             r.Phone,
		DeviceType:        r.DeviceType,
		Brand:             r.Brand,
		Model:             r.Model,
		Issue:             r.Issue,
		ServiceType:       entities.ServiceType(r.ServiceType),
		Address:           r.Address,
		VisitDate:         visitDate,
		EstimatedDelivery: estimated,
		TotalAmount:       total,
		AdvanceAmount:     advance,
		IsWarranty:        r.IsWarranty,
		Warranty:          r.Warranty,
		Images:            entities.ImageRefs{Before: r.Images.Before, After: r.Images.After},
	}, nil
}

// UpdateJobRequest is a partial edit; absent fields stay untouched.
type UpdateJobRequest struct {
	CustomerName *string `json:"customer_name"`
	Phone        *string `json:"phone"`

	DeviceType *string `json:"device_type"`
	Brand      *string `json:"brand"`
	Model      *string `json:"model"`
	Issue      *string `json:"issue"`

	ServiceType       *string `json:"service_type"`
	Address           *string `json:"address"`
	VisitDate         *string `json:"visit_date"`
	EstimatedDelivery *string `json:"estimated_delivery"`

	TotalAmount   *string `json:"total_amount"`
	AdvanceAmount *string `json:"advance_amount"`

	IsWarranty *bool   `json:"is_warranty"`
	Warranty   *string `json:"warranty"`

	Images *ImageRefsRequest `json:"images"`

	Status *string `json:"status"`
	Note   string  `json:"note"`
}

func (r UpdateJobRequest) ToParams() (usecase.UpdateJobParams, error) {
	p := usecase.UpdateJobParams{
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		DeviceType:   r.DeviceType,
		Brand:        r.Brand,
		Model:        r.Model,
		Issue:        r.Issue,
		Address:      r.Address,
		IsWarranty:   r.IsWarranty,
		Warranty:     r.Warranty,
		Note:         r.Note,
	}

	if r.ServiceType != nil {
		st := entities.ServiceType(*r.ServiceType)
		p.ServiceType = &st
	}
	if r.Status != nil {
		s := entities.JobStatus(*r.Status)
		p.Status = &s
	}
	if r.Images != nil {
		imgs := entities.ImageRefs{Before: r.Images.Before, After: r.Images.After}
		p.Images = &imgs
	}

	var err error
	if p.VisitDate, err = parseDatePtr(r.VisitDate); err != nil {
		return usecase.UpdateJobParams{}, err
	}
	if p.EstimatedDelivery, err = parseDatePtr(r.EstimatedDelivery); err != nil {
		return usecase.UpdateJobParams{}, err
	}
	if p.TotalAmount, err = parseMoneyPtr(r.TotalAmount); err != nil {
		return usecase.UpdateJobParams{}, err
	}
	if p.AdvanceAmount, err = parseMoneyPtr(r.AdvanceAmount); err != nil {
		return usecase.UpdateJobParams{}, err
	}
	return p, nil
}

func parseMoneyPtr(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := parseMoney(*s, true)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
