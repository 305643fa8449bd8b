package entities

import "time"

// Vendor is a third-party technician/shop jobs can be outsourced to.
//
// Storage model (DynamoDB):
//   - PK: name
//
// Vendors are upserted by name when a job is outsourced; jobs reference them
// by name and do not own them.
type Vendor struct {
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
