package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// JobStatus represents the lifecycle of a service order (job).
//
// Domain notes:
//   - The tracker is the source of truth for job state and money fields.
//   - delivered and returned are terminal; outsourced may only be left
//     through the receive-back operation.

type JobStatus string

const (
	JobStatusReceived   JobStatus = "received"
	JobStatusInProgress JobStatus = "in-progress"
	JobStatusWaiting    JobStatus = "waiting"
	JobStatusReady      JobStatus = "ready"
	JobStatusOutsourced JobStatus = "outsourced"
	JobStatusDelivered  JobStatus = "delivered"
	JobStatusReturned   JobStatus = "returned"
)

// ServiceType distinguishes walk-in jobs from home visits.
//
// home-service jobs require an address and visit date; walk-in jobs use an
// estimated delivery date instead.

type ServiceType string

const (
	ServiceTypeWalkIn      ServiceType = "walk-in"
	ServiceTypeHomeService ServiceType = "home-service"
)

// StatusEntry is one element of the append-only status history.
// Entries are immutable once written; storage order is creation order.
type StatusEntry struct {
	Status    JobStatus `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}

// Outsourced is the vendor sub-record attached to a job while (or after) it
// has been handed to a third party. It survives receive-back so the fact of
// outsourcing stays on record.
type Outsourced struct {
	VendorName  string          `json:"vendor_name"`
	VendorPhone string          `json:"vendor_phone,omitempty"`
	Cost        decimal.Decimal `json:"cost"`
	AssignedAt  time.Time       `json:"assigned_at"`
}

// ImageRefs groups references to externally stored photos. Only the
// references matter here; the binary store is a collaborator.
type ImageRefs struct {
	Before []string `json:"before,omitempty"`
	After  []string `json:"after,omitempty"`
}

// Job is the service order aggregate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - TotalAmount and AdvanceAmount are exact decimals; the balance is always
//     derived, never stored.
//
type Job struct {
	ID           string `json:"id"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`

	DeviceType string `json:"device_type"`
	Brand      string `json:"brand,omitempty"`
	Model      string `json:"model,omitempty"`
	Issue      string `json:"issue,omitempty"`

	ServiceType       ServiceType `json:"service_type"`
	Address           string      `json:"address,omitempty"`
	VisitDate         time.Time   `json:"visit_date,omitempty"`
	EstimatedDelivery time.Time   `json:"estimated_delivery,omitempty"`

	Status JobStatus `json:"status"`

	TotalAmount   decimal.Decimal `json:"total_amount"`
	AdvanceAmount decimal.Decimal `json:"advance_amount"`

	IsWarranty bool   `json:"is_warranty"`
	Warranty   string `json:"warranty,omitempty"`

	Outsourced *Outsourced `json:"outsourced,omitempty"`

	Images ImageRefs `json:"images,omitempty"`

	StatusHistory []StatusEntry `json:"status_history"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Balance is the amount still owed by the customer.
func (j Job) Balance() decimal.Decimal {
	return j.TotalAmount.Sub(j.AdvanceAmount)
}

// AppendHistory adds one entry to the status history. Every successful
// mutating operation appends exactly one entry.
func (j *Job) AppendHistory(status JobStatus, at time.Time, note string) {
	j.StatusHistory = append(j.StatusHistory, StatusEntry{
		Status:    status,
		Timestamp: at,
		Note:      note,
	})
}
