package platform

import (
	"time"

	"github.com/studafishka/afishactl/internal/session"
)

// Tag labels events for filtering.
type Tag struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Event is a campus event as served by the API.
type Event struct {
	ID              int          `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	DtStart         time.Time    `json:"dt_start"`
	LocationText    string       `json:"location_text"`
	Tags            []Tag        `json:"tags,omitempty"`
	Organizer       session.User `json:"organizer"`
	MaxParticipants *int         `json:"max_participants"`
	CreatedAt       time.Time    `json:"created_at"`

	// Viewer-dependent fields.
	IsRegistered bool `json:"is_registered"`
	SpotsLeft    *int `json:"spots_left"`
	IsOrganizer  bool `json:"is_organizer"`
}

// EventInput is the writable subset of an event for create and edit.
type EventInput struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DtStart         time.Time `json:"dt_start"`
	LocationText    string    `json:"location_text"`
	TagIDs          []int     `json:"tag_ids,omitempty"`
	MaxParticipants *int      `json:"max_participants"`
}

// MyRegistration is the student-facing registration record. Its ID doubles
// as the QR payload presented at check-in.
type MyRegistration struct {
	ID            string    `json:"id"`
	EventTitle    string    `json:"event_title"`
	EventDtStart  time.Time `json:"event_dt_start"`
	EventLocation string    `json:"event_location"`
	Attended      bool      `json:"attended"`
	QRCodeData    string    `json:"qr_code_data"`
}

// Registration is the organizer-facing participant record.
type Registration struct {
	ID           string       `json:"id"`
	Student      session.User `json:"student"`
	RegisteredAt time.Time    `json:"registered_at"`
	Attended     bool         `json:"attended"`
}

// TokenPair is the credential pair issued by POST /auth/token/.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RegisterRequest creates a new account. No auto-login follows.
type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	IsOrganizer bool   `json:"is_organizer"`
}

// CheckInResult is the confirmation returned by the check-in endpoint.
type CheckInResult struct {
	Message      string `json:"message"`
	Registration struct {
		ID      string `json:"id"`
		Student struct {
			Name     string `json:"name"`
			Username string `json:"username"`
		} `json:"student"`
		Attended bool `json:"attended"`
	} `json:"registration"`
}

// StudentName returns the checked-in student's display name, falling back to
// the username.
func (r *CheckInResult) StudentName() string {
	if r.Registration.Student.Name != "" {
		return r.Registration.Student.Name
	}
	return r.Registration.Student.Username
}
