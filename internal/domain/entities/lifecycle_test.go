package entities

import (
	"testing"
	"time"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to JobStatus }{
		{JobStatusReceived, JobStatusInProgress},
		{JobStatusReceived, JobStatusWaiting},
		{JobStatusReceived, JobStatusReady},
		{JobStatusReceived, JobStatusOutsourced},
		{JobStatusReceived, JobStatusDelivered},
		{JobStatusReceived, JobStatusReturned},
		{JobStatusInProgress, JobStatusReady},
		{JobStatusInProgress, JobStatusDelivered},
		{JobStatusWaiting, JobStatusInProgress},
		{JobStatusReady, JobStatusInProgress},
		{JobStatusReady, JobStatusDelivered},
		{JobStatusOutsourced, JobStatusReady},
		{JobStatusOutsourced, JobStatusReceived},
		{JobStatusOutsourced, JobStatusInProgress},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Fatalf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to JobStatus }{
		{JobStatusDelivered, JobStatusReceived},
		{JobStatusDelivered, JobStatusInProgress},
		{JobStatusReturned, JobStatusReceived},
		{JobStatusReturned, JobStatusDelivered},
		{JobStatusOutsourced, JobStatusDelivered},
		{JobStatusOutsourced, JobStatusReturned},
		{JobStatusOutsourced, JobStatusWaiting},
		{JobStatusReady, JobStatusWaiting},
		{JobStatusReceived, JobStatusReceived},
	}
	for _, tc := range denied {
		if CanTransition(tc.from, tc.to) {
			t.Fatalf("expected %s -> %s to be rejected", tc.from, tc.to)
		}
	}
}

func TestCanTransition_UnknownStatus(t *testing.T) {
	if CanTransition(JobStatus("bogus"), JobStatusReady) {
		t.Fatalf("expected unknown source to have no transitions")
	}
	if CanTransition(JobStatusReceived, JobStatus("bogus")) {
		t.Fatalf("expected unknown target to be rejected")
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []JobStatus{
		JobStatusReceived, JobStatusInProgress, JobStatusWaiting, JobStatusReady,
		JobStatusOutsourced, JobStatusDelivered, JobStatusReturned,
	} {
		if !ValidStatus(s) {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if ValidStatus(JobStatus("shipped")) {
		t.Fatalf("expected shipped to be invalid")
	}
}

func TestIsTerminal(t *testing.T) {
	if !IsTerminal(JobStatusDelivered) || !IsTerminal(JobStatusReturned) {
		t.Fatalf("expected delivered and returned to be terminal")
	}
	for _, s := range []JobStatus{JobStatusReceived, JobStatusInProgress, JobStatusWaiting, JobStatusReady, JobStatusOutsourced} {
		if IsTerminal(s) {
			t.Fatalf("expected %s to be non-terminal", s)
		}
	}
}

func TestNoteBuilders(t *testing.T) {
	if got := IntakeNote(); got != "Job received" {
		t.Fatalf("unexpected intake note: %q", got)
	}
	if got := StatusChangeNote(JobStatusReady); got != "Status changed to ready" {
		t.Fatalf("unexpected status note: %q", got)
	}
	if got := OutsourceNote("FixIt Co"); got != "Outsourced to FixIt Co" {
		t.Fatalf("unexpected outsource note: %q", got)
	}
	cases := []struct {
		outcome JobStatus
		want    string
	}{
		{JobStatusReady, "Received back from FixIt Co: repaired"},
		{JobStatusReceived, "Received back from FixIt Co: not repaired"},
		{JobStatusInProgress, "Received back from FixIt Co: needs further work"},
	}
	for _, tc := range cases {
		if got := ReceiveBackNote("FixIt Co", tc.outcome); got != tc.want {
			t.Fatalf("outcome %s: expected %q got %q", tc.outcome, tc.want, got)
		}
	}
}

func TestAppendHistory(t *testing.T) {
	var j Job
	t0 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	j.AppendHistory(JobStatusReceived, t0, IntakeNote())
	j.AppendHistory(JobStatusInProgress, t0.Add(time.Hour), StatusChangeNote(JobStatusInProgress))

	if len(j.StatusHistory) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(j.StatusHistory))
	}
	if j.StatusHistory[0].Status != JobStatusReceived || j.StatusHistory[0].Note != "Job received" {
		t.Fatalf("unexpected first entry: %+v", j.StatusHistory[0])
	}
	if !j.StatusHistory[1].Timestamp.After(j.StatusHistory[0].Timestamp) {
		t.Fatalf("expected entries in creation order")
	}
}
