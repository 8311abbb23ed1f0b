package platform

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ListEventsOptions filters the event listing.
type ListEventsOptions struct {
	// TagIDs filters by tag IDs (comma-joined in the query).
	TagIDs []int
	// TagNames filters by tag names, matched case-insensitively.
	TagNames []string
}

func (o ListEventsOptions) query() string {
	q := url.Values{}
	if len(o.TagIDs) > 0 {
		ids := make([]string, len(o.TagIDs))
		for i, id := range o.TagIDs {
			ids[i] = strconv.Itoa(id)
		}
		q.Set("tags", strings.Join(ids, ","))
	}
	if len(o.TagNames) > 0 {
		q.Set("tag_names", strings.Join(o.TagNames, ","))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// ListEvents retrieves events via GET /events/. Anonymous callers see only
// upcoming events; organizers additionally see their own past ones.
func (c *Client) ListEvents(ctx context.Context, opts ListEventsOptions) ([]Event, error) {
	resp, err := c.doRequest(ctx, "GET", "/events/"+opts.query(), nil)
	if err != nil {
		return nil, err
	}

	var events []Event
	if err := parseResponse(resp, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetEvent retrieves a single event via GET /events/{id}/.
func (c *Client) GetEvent(ctx context.Context, id int) (*Event, error) {
	resp, err := c.doRequest(ctx, "GET", fmt.Sprintf("/events/%d/", id), nil)
	if err != nil {
		return nil, err
	}

	var event Event
	if err := parseResponse(resp, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// CreateEvent creates an event via POST /events/. Organizer-only.
func (c *Client) CreateEvent(ctx context.Context, input EventInput) (*Event, error) {
	resp, err := c.doRequest(ctx, "POST", "/events/", input)
	if err != nil {
		return nil, err
	}

	var event Event
	if err := parseResponse(resp, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// UpdateEvent replaces an event via PUT /events/{id}/. Organizer-only.
func (c *Client) UpdateEvent(ctx context.Context, id int, input EventInput) (*Event, error) {
	resp, err := c.doRequest(ctx, "PUT", fmt.Sprintf("/events/%d/", id), input)
	if err != nil {
		return nil, err
	}

	var event Event
	if err := parseResponse(resp, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// RegisterForEvent signs the current student up via POST /events/{id}/register/.
// Domain conflicts (already registered, no spots left, past event) come back
// as an *APIError with the server's message.
func (c *Client) RegisterForEvent(ctx context.Context, eventID int) (*MyRegistration, error) {
	resp, err := c.doRequest(ctx, "POST", fmt.Sprintf("/events/%d/register/", eventID), nil)
	if err != nil {
		return nil, err
	}

	var reg MyRegistration
	if err := parseResponse(resp, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

// UnregisterFromEvent cancels the current student's registration via
// DELETE /events/{id}/unregister/.
func (c *Client) UnregisterFromEvent(ctx context.Context, eventID int) error {
	resp, err := c.doRequest(ctx, "DELETE", fmt.Sprintf("/events/%d/unregister/", eventID), nil)
	if err != nil {
		return err
	}
	return parseResponse(resp, nil)
}

// EventParticipants lists an event's registrations via
// GET /events/{id}/participants/. Organizer-only.
func (c *Client) EventParticipants(ctx context.Context, eventID int) ([]Registration, error) {
	resp, err := c.doRequest(ctx, "GET", fmt.Sprintf("/events/%d/participants/", eventID), nil)
	if err != nil {
		return nil, err
	}

	var regs []Registration
	if err := parseResponse(resp, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

// MyRegistrations lists the current student's registrations via
// GET /my-registrations/.
func (c *Client) MyRegistrations(ctx context.Context) ([]MyRegistration, error) {
	resp, err := c.doRequest(ctx, "GET", "/my-registrations/", nil)
	if err != nil {
		return nil, err
	}

	var regs []MyRegistration
	if err := parseResponse(resp, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

type checkInRequest struct {
	RegistrationID string `json:"registration_id"`
}

// CheckIn confirms attendance via POST /events/{id}/check_in/. The
// registration ID must be the canonical UUID text form; it is validated
// before any round-trip so garbage scans never hit the network.
func (c *Client) CheckIn(ctx context.Context, eventID int, registrationID string) (*CheckInResult, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(registrationID))
	if err != nil {
		return nil, fmt.Errorf("invalid registration code: %w", err)
	}

	resp, err := c.doRequest(ctx, "POST", fmt.Sprintf("/events/%d/check_in/", eventID), checkInRequest{
		RegistrationID: parsed.String(),
	})
	if err != nil {
		return nil, err
	}

	var result CheckInResult
	if err := parseResponse(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
