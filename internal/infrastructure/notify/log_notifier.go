package notify

import (
	"context"
	"log"

	"repairdesk/internal/usecase/interfaces"
)

// LogNotifier writes status messages to the application log. The real
// dispatcher (SMS/WhatsApp) is an external collaborator; this keeps the
// notification path exercised in every environment.
type LogNotifier struct{}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) NotifyStatus(_ context.Context, phone, message string) error {
	log.Printf("[notify] phone=%s message=%q", phone, message)
	return nil
}
