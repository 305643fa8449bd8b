package interfaces

import (
	"context"

	"repairdesk/internal/domain/entities"
)

// IVendorRepository abstracts DynamoDB persistence for Vendor.
//
// Vendors are keyed by name: assigning a job to a vendor upserts the name
// (create if absent, else reuse and refresh the phone).
type IVendorRepository interface {
	Upsert(ctx context.Context, v entities.Vendor) (entities.Vendor, error)
	GetByName(ctx context.Context, name string) (entities.Vendor, error)
}
