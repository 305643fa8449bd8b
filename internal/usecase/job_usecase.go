package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateJobParams is the validated input for job intake.
type CreateJobParams struct {
	CustomerName string
	Phone        string

	DeviceType string
	Brand      string
	Model      string
	Issue      string

	ServiceType       entities.ServiceType
	Address           string
	VisitDate         time.Time
	EstimatedDelivery time.Time

	TotalAmount   decimal.Decimal
	AdvanceAmount decimal.Decimal

	IsWarranty bool
	Warranty   string

	Images entities.ImageRefs
}

// UpdateJobParams is a partial edit; nil fields are left untouched.
// A status change is validated against the transition table before any other
// field is applied.
type UpdateJobParams struct {
	CustomerName *string
	Phone        *string

	DeviceType *string
	Brand      *string
	Model      *string
	Issue      *string

	ServiceType       *entities.ServiceType
	Address           *string
	VisitDate         *time.Time
	EstimatedDelivery *time.Time

	TotalAmount   *decimal.Decimal
	AdvanceAmount *decimal.Decimal

	IsWarranty *bool
	Warranty   *string

	Images *entities.ImageRefs

	Status *entities.JobStatus
	Note   string
}

// IJobUseCase exposes intake, edit, lookup and delete for jobs.

type IJobUseCase interface {
	CreateJob(ctx context.Context, params CreateJobParams) (entities.Job, error)
	GetJob(ctx context.Context, id string) (entities.Job, error)
	UpdateJob(ctx context.Context, id string, params UpdateJobParams) (entities.Job, error)
	DeleteJob(ctx context.Context, id string) error
}

type JobUseCase struct {
	repo interfaces.IJobRepository
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository) *JobUseCase {
	return &JobUseCase{repo: repo}
}

func (u *JobUseCase) CreateJob(ctx context.Context, params CreateJobParams) (entities.Job, error) {
	now := time.Now().UTC()
	j := entities.Job{
		ID:                uuid.NewString(),
		CustomerName:      strings.TrimSpace(params.CustomerName),
		Phone:             strings.TrimSpace(params.Phone),
		DeviceType:        strings.TrimSpace(params.DeviceType),
		Brand:             strings.TrimSpace(params.Brand),
		Model:             strings.TrimSpace(params.Model),
		Issue:             strings.TrimSpace(params.Issue),
		ServiceType:       params.ServiceType,
		Address:           strings.TrimSpace(params.Address),
		VisitDate:         params.VisitDate,
		EstimatedDelivery: params.EstimatedDelivery,
		TotalAmount:       params.TotalAmount,
		AdvanceAmount:     params.AdvanceAmount,
		IsWarranty:        params.IsWarranty,
		Warranty:          strings.TrimSpace(params.Warranty),
		Images:            params.Images,
		Status:            entities.JobStatusReceived,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	enforceWarranty(&j)

	if err := validateJobFields(j); err != nil {
		return entities.Job{}, err
	}

	j.AppendHistory(entities.JobStatusReceived, now, entities.IntakeNote())

	created, err := u.repo.Create(ctx, j)
	if err != nil {
		return entities.Job{}, err
	}
	log.Printf("[job][usecase] created job_id=%s customer=%s device=%s", created.ID, created.CustomerName, created.DeviceType)
	return created, nil
}

func (u *JobUseCase) GetJob(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobUseCase) UpdateJob(ctx context.Context, id string, params UpdateJobParams) (entities.Job, error) {
	j, err := u.GetJob(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	expected := j.UpdatedAt

	note := entities.DetailsUpdatedNote()
	if params.Status != nil && *params.Status != j.Status {
		target := *params.Status
		if !entities.ValidStatus(target) {
			return entities.Job{}, ErrInvalidTransition
		}
		if target == entities.JobStatusOutsourced {
			return entities.Job{}, ErrOutsourceViaAssign
		}
		if j.Status == entities.JobStatusOutsourced {
			return entities.Job{}, ErrLeaveOutsourcedViaRecv
		}
		if !entities.CanTransition(j.Status, target) {
			return entities.Job{}, ErrInvalidTransition
		}
		j.Status = target
		note = entities.StatusChangeNote(target)
	}

	applyJobEdit(&j, params)
	enforceWarranty(&j)
	if err := validateJobFields(j); err != nil {
		return entities.Job{}, err
	}

	if params.Note != "" {
		note = strings.TrimSpace(params.Note)
	}

	now := time.Now().UTC()
	j.AppendHistory(j.Status, now, note)
	j.UpdatedAt = now

	updated, err := u.repo.Update(ctx, j, expected)
	if err != nil {
		if errors.Is(err, interfaces.ErrStaleWrite) {
			return entities.Job{}, ErrConcurrentModification
		}
		return entities.Job{}, err
	}
	log.Printf("[job][usecase] updated job_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

func (u *JobUseCase) DeleteJob(ctx context.Context, id string) error {
	if _, err := u.GetJob(ctx, id); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		return err
	}
	log.Printf("[job][usecase] deleted job_id=%s", strings.TrimSpace(id))
	return nil
}

func applyJobEdit(j *entities.Job, p UpdateJobParams) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	setString(&j.CustomerName, p.CustomerName)
	setString(&j.Phone, p.Phone)
	setString(&j.DeviceType, p.DeviceType)
	setString(&j.Brand, p.Brand)
	setString(&j.Model, p.Model)
	setString(&j.Issue, p.Issue)
	setString(&j.Address, p.Address)
	setString(&j.Warranty, p.Warranty)

	if p.ServiceType != nil {
		j.ServiceType = *p.ServiceType
	}
	if p.VisitDate != nil {
		j.VisitDate = *p.VisitDate
	}
	if p.EstimatedDelivery != nil {
		j.EstimatedDelivery = *p.EstimatedDelivery
	}
	if p.TotalAmount != nil {
		j.TotalAmount = *p.TotalAmount
	}
	if p.AdvanceAmount != nil {
		j.AdvanceAmount = *p.AdvanceAmount
	}
	if p.IsWarranty != nil {
		j.IsWarranty = *p.IsWarranty
	}
	if p.Images != nil {
		j.Images = *p.Images
	}
}

// enforceWarranty zeroes billing fields on warranty jobs.
func enforceWarranty(j *entities.Job) {
	if j.IsWarranty {
		j.TotalAmount = decimal.Zero
		j.AdvanceAmount = decimal.Zero
	}
}

func validateJobFields(j entities.Job) error {
	if j.CustomerName == "" {
		return ErrMissingCustomerName
	}
	if j.Phone == "" {
		return ErrMissingPhone
	}
	if j.DeviceType == "" {
		return ErrMissingDeviceType
	}
	if j.TotalAmount.IsNegative() {
		return ErrNegativeTotal
	}
	if j.AdvanceAmount.IsNegative() {
		return ErrNegativeAdvance
	}

	switch j.ServiceType {
	case entities.ServiceTypeHomeService:
		if j.Address == "" {
			return ErrMissingAddress
		}
		if j.VisitDate.IsZero() {
			return ErrMissingVisitDate
		}
		if !j.EstimatedDelivery.IsZero() {
			return ErrVisitDeliveryConflict
		}
	case entities.ServiceTypeWalkIn:
		// estimated delivery is optional for walk-ins
	default:
		return ErrInvalidServiceType
	}
	return nil
}
