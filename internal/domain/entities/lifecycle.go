package entities

import "fmt"

// Transition table for the job lifecycle. A missing source means no
// transitions are allowed out of it (terminal states).
//
// outsourced appears as a target here, but entering it requires vendor data
// (assign operation) and leaving it requires a final cost (receive-back
// operation); a generic status edit may not cross that boundary.
var jobTransitions = map[JobStatus][]JobStatus{
	JobStatusReceived:   {JobStatusInProgress, JobStatusWaiting, JobStatusReady, JobStatusOutsourced, JobStatusDelivered, JobStatusReturned},
	JobStatusInProgress: {JobStatusWaiting, JobStatusReady, JobStatusOutsourced, JobStatusDelivered, JobStatusReturned},
	JobStatusWaiting:    {JobStatusInProgress, JobStatusReady, JobStatusOutsourced, JobStatusDelivered, JobStatusReturned},
	JobStatusReady:      {JobStatusInProgress, JobStatusOutsourced, JobStatusDelivered, JobStatusReturned},
	JobStatusOutsourced: {JobStatusReady, JobStatusReceived, JobStatusInProgress},
	JobStatusDelivered:  {},
	JobStatusReturned:   {},
}

// ValidStatus reports whether s is a known job status.
func ValidStatus(s JobStatus) bool {
	_, ok := jobTransitions[s]
	return ok
}

// IsTerminal reports whether no further status change is allowed from s.
func IsTerminal(s JobStatus) bool {
	return s == JobStatusDelivered || s == JobStatusReturned
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to JobStatus) bool {
	for _, allowed := range jobTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Note builders for the status history. Kept here so every operation writes
// the same wording regardless of which transport triggered it.

func IntakeNote() string {
	return "Job received"
}

func StatusChangeNote(to JobStatus) string {
	return fmt.Sprintf("Status changed to %s", to)
}

func DetailsUpdatedNote() string {
	return "Job details updated"
}

func OutsourceNote(vendorName string) string {
	return fmt.Sprintf("Outsourced to %s", vendorName)
}

func ReceiveBackNote(vendorName string, outcome JobStatus) string {
	desc := "needs further work"
	switch outcome {
	case JobStatusReady:
		desc = "repaired"
	case JobStatusReceived:
		desc = "not repaired"
	}
	return fmt.Sprintf("Received back from %s: %s", vendorName, desc)
}
