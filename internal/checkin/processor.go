// Package checkin implements the organizer's attendance workflow: QR
// payloads (registration UUIDs) arrive one at a time — typed, pasted, piped,
// or injected by a hardware scanner acting as a keyboard — and each one is
// validated, deduplicated, and confirmed against the platform.
package checkin

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/studafishka/afishactl/internal/platform"
)

// StatusKind classifies the outcome of one scanned code.
type StatusKind int

const (
	// StatusSuccess means the student was checked in.
	StatusSuccess StatusKind = iota
	// StatusRejected means the server refused the code (already attended,
	// wrong event, unknown registration).
	StatusRejected
	// StatusInvalid means the payload is not a registration UUID.
	StatusInvalid
	// StatusDuplicate means the code equals the previously accepted one.
	StatusDuplicate
	// StatusFailed means the round-trip itself failed.
	StatusFailed
)

// Status is the transient feedback for one scan.
type Status struct {
	Kind    StatusKind
	Code    string
	Message string
}

// OK reports whether the scan resulted in a confirmed check-in.
func (s Status) OK() bool {
	return s.Kind == StatusSuccess
}

// Processor runs the per-code workflow for a single event. It is not safe
// for concurrent use; the console serializes submissions (at most one
// request in flight).
type Processor struct {
	client  *platform.Client
	eventID int

	// lastAccepted suppresses an immediate re-scan of the same QR code
	// without a round-trip.
	lastAccepted string
}

// NewProcessor creates a processor for the given event.
func NewProcessor(client *platform.Client, eventID int) *Processor {
	return &Processor{client: client, eventID: eventID}
}

// Process validates and submits one scanned payload.
//
// Check-in failures never mutate the session: they surface as a transient
// status and the console keeps scanning.
func (p *Processor) Process(ctx context.Context, raw string) Status {
	code := strings.TrimSpace(raw)
	if code == "" {
		return Status{Kind: StatusInvalid, Code: code, Message: "empty scan"}
	}

	parsed, err := uuid.Parse(code)
	if err != nil {
		return Status{Kind: StatusInvalid, Code: code, Message: "not a registration code"}
	}
	code = parsed.String()

	if code == p.lastAccepted {
		return Status{Kind: StatusDuplicate, Code: code, Message: "already scanned"}
	}

	result, err := p.client.CheckIn(ctx, p.eventID, code)
	if err != nil {
		var apiErr *platform.APIError
		if errors.As(err, &apiErr) {
			return Status{Kind: StatusRejected, Code: code, Message: apiErr.Error()}
		}
		return Status{Kind: StatusFailed, Code: code, Message: err.Error()}
	}

	p.lastAccepted = code
	return Status{Kind: StatusSuccess, Code: code, Message: result.StudentName() + " checked in"}
}

// Summary counts the outcomes of a batch run.
type Summary struct {
	Accepted int
	Rejected int
	Invalid  int
}

// RunBatch processes a fixed list of codes, as when payloads are piped in.
// The same validation and dedupe rules apply as in the interactive console.
func (p *Processor) RunBatch(ctx context.Context, codes []string, report func(Status)) Summary {
	var sum Summary
	for _, code := range codes {
		status := p.Process(ctx, code)
		if report != nil {
			report(status)
		}
		switch status.Kind {
		case StatusSuccess:
			sum.Accepted++
		case StatusInvalid, StatusDuplicate:
			sum.Invalid++
		default:
			sum.Rejected++
		}
	}
	return sum
}
