package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// AssignVendorParams is the validated input for handing a job to a vendor.
// Cost is the estimated amount paid to the vendor at assignment time.
type AssignVendorParams struct {
	VendorName  string
	VendorPhone string
	Cost        decimal.Decimal
}

// ReceiveBackParams closes the outsourcing round trip. Outcome says what the
// vendor achieved; FinalCost overwrites the estimated cost on record.
type ReceiveBackParams struct {
	Outcome   entities.JobStatus
	FinalCost decimal.Decimal
}

// IOutsourceUseCase manages vendor assignment and the receive-back
// transition, the only way out of the outsourced status.

type IOutsourceUseCase interface {
	AssignVendor(ctx context.Context, jobID string, params AssignVendorParams) (entities.Job, error)
	ReceiveBack(ctx context.Context, jobID string, params ReceiveBackParams) (entities.Job, error)
	GetVendor(ctx context.Context, name string) (entities.Vendor, error)
}

type OutsourceUseCase struct {
	jobs    interfaces.IJobRepository
	vendors interfaces.IVendorRepository
}

var _ IOutsourceUseCase = (*OutsourceUseCase)(nil)

func NewOutsourceUseCase(jobs interfaces.IJobRepository, vendors interfaces.IVendorRepository) *OutsourceUseCase {
	return &OutsourceUseCase{jobs: jobs, vendors: vendors}
}

func (u *OutsourceUseCase) AssignVendor(ctx context.Context, jobID string, params AssignVendorParams) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	name := strings.TrimSpace(params.VendorName)
	if name == "" {
		return entities.Job{}, ErrMissingVendorName
	}
	if params.Cost.IsNegative() {
		return entities.Job{}, ErrNegativeVendorCost
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	if !entities.CanTransition(j.Status, entities.JobStatusOutsourced) {
		return entities.Job{}, ErrInvalidTransition
	}
	expected := j.UpdatedAt

	now := time.Now().UTC()
	if _, err := u.vendors.Upsert(ctx, entities.Vendor{
		Name:      name,
		Phone:     strings.TrimSpace(params.VendorPhone),
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		return entities.Job{}, err
	}

	j.Outsourced = &entities.Outsourced{
		VendorName:  name,
		VendorPhone: strings.TrimSpace(params.VendorPhone),
		Cost:        params.Cost,
		AssignedAt:  now,
	}
	j.Status = entities.JobStatusOutsourced
	j.AppendHistory(entities.JobStatusOutsourced, now, entities.OutsourceNote(name))
	j.UpdatedAt = now

	updated, err := u.jobs.Update(ctx, j, expected)
	if err != nil {
		if errors.Is(err, interfaces.ErrStaleWrite) {
			return entities.Job{}, ErrConcurrentModification
		}
		return entities.Job{}, err
	}
	log.Printf("[outsource][usecase] assigned job_id=%s vendor=%s cost=%s", updated.ID, name, params.Cost.String())
	return updated, nil
}

func (u *OutsourceUseCase) ReceiveBack(ctx context.Context, jobID string, params ReceiveBackParams) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	switch params.Outcome {
	case entities.JobStatusReady, entities.JobStatusReceived, entities.JobStatusInProgress:
	default:
		return entities.Job{}, ErrInvalidTransition
	}
	if params.FinalCost.IsNegative() {
		return entities.Job{}, ErrNegativeVendorCost
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	if j.Status != entities.JobStatusOutsourced || j.Outsourced == nil {
		return entities.Job{}, ErrInvalidTransition
	}
	expected := j.UpdatedAt

	now := time.Now().UTC()
	j.Outsourced.Cost = params.FinalCost
	j.Status = params.Outcome
	j.AppendHistory(params.Outcome, now, entities.ReceiveBackNote(j.Outsourced.VendorName, params.Outcome))
	j.UpdatedAt = now

	updated, err := u.jobs.Update(ctx, j, expected)
	if err != nil {
		if errors.Is(err, interfaces.ErrStaleWrite) {
			return entities.Job{}, ErrConcurrentModification
		}
		return entities.Job{}, err
	}
	log.Printf("[outsource][usecase] received back job_id=%s outcome=%s final_cost=%s", updated.ID, params.Outcome, params.FinalCost.String())
	return updated, nil
}

func (u *OutsourceUseCase) GetVendor(ctx context.Context, name string) (entities.Vendor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Vendor{}, ErrMissingVendorName
	}

	v, err := u.vendors.GetByName(ctx, name)
	if err != nil {
		return entities.Vendor{}, err
	}
	if v.Name == "" {
		return entities.Vendor{}, ErrVendorNotFound
	}
	return v, nil
}
