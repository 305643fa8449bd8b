package interfaces

import "context"

// INotifier dispatches a status message to the customer's phone.
//
// Delivery is best-effort: operations log dispatch failures and never fail
// because of them. OTP and bulk messaging live with the real dispatcher, not
// here.
type INotifier interface {
	NotifyStatus(ctx context.Context, phone, message string) error
}
