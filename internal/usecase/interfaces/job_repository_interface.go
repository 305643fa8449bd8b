package interfaces

import (
	"context"
	"errors"
	"time"

	"repairdesk/internal/domain/entities"
)

// ErrStaleWrite is returned by Update when the persisted job no longer
// matches the state the caller read (optimistic lock failure).
var ErrStaleWrite = errors.New("job was modified concurrently")

// IJobRepository abstracts DynamoDB persistence for Job.
//
// The tracker must be able to:
//   - create a job at intake (id must not already exist)
//   - read a job by id (consistent read; every mutating operation
//     read-validates against the persisted state)
//   - replace a job conditionally on the updated_at it was read with, so the
//     transition check, money update, and history append land atomically
//   - delete a job
type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	Update(ctx context.Context, j entities.Job, expectedUpdatedAt time.Time) (entities.Job, error)
	Delete(ctx context.Context, id string) error
}
