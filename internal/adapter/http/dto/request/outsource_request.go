package request

import (
	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase"
)

// OutsourceRequest hands a job to a third-party vendor. Cost is the
// estimated amount paid to the vendor at assignment time.
type OutsourceRequest struct {
	VendorName  string `json:"vendor_name" binding:"required"`
	VendorPhone string `json:"vendor_phone"`
	Cost        string `json:"cost" binding:"required"`
}

func (r OutsourceRequest) ToParams() (usecase.AssignVendorParams, error) {
	cost, err := parseMoney(r.Cost, true)
	if err != nil {
		return usecase.AssignVendorParams{}, err
	}
	return usecase.AssignVendorParams{
		VendorName:  r.VendorName,
		VendorPhone: r.VendorPhone,
		Cost:        cost,
	}, nil
}

// ReceiveBackRequest closes the outsourcing round trip. Outcome is the
// status the job lands on (ready, received or in-progress).
type ReceiveBackRequest struct {
	Outcome   string `json:"outcome" binding:"required"`
	FinalCost string `json:"final_cost" binding:"required"`
}

func (r ReceiveBackRequest) ToParams() (usecase.ReceiveBackParams, error) {
	cost, err := parseMoney(r.FinalCost, true)
	if err != nil {
		return usecase.ReceiveBackParams{}, err
	}
	return usecase.ReceiveBackParams{
		Outcome:   entities.JobStatus(r.Outcome),
		FinalCost: cost,
	}, nil
}
