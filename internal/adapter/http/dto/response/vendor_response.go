package response

import (
	"time"

	"repairdesk/internal/domain/entities"
)

type VendorResponse struct {
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromVendor(v entities.Vendor) VendorResponse {
	return VendorResponse{
		Name:      v.Name,
		Phone:     v.Phone,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
