package models

import (
	"slices"
	"time"

	id "maricheck/pkg/domain"
	dErrors "maricheck/pkg/domain-errors"
	"maricheck/pkg/email"
)

// Ranks accepted on the crew registration form.
var Ranks = []string{
	"Fresher", "Captain", "Chief Officer", "Second Officer", "Third Officer",
	"Chief Engineer", "First Engineer", "Second Engineer", "Third Engineer",
	"Bosun", "AB Seaman", "Ordinary Seaman", "Cook", "Steward", "Oiler", "Wiper", "Other",
}

// CrewMember is the aggregate root for a seafarer application.
//
// Invariants:
//   - Passport is uppercase, unique across crew members, and never changes
//   - Status is one of the CrewStatus values and only changes via ApplyAction
//   - ProfileToken is empty or a 64-char hex digest, and is written at most once
//   - Completion is always derived from Documents, never stored
type CrewMember struct {
	ID          id.CrewID   `json:"id"`
	Name        string      `json:"name"`
	Rank        string      `json:"rank"`
	Passport    id.Passport `json:"passport"`
	Nationality string      `json:"nationality"`
	DateOfBirth time.Time   `json:"date_of_birth"`

	YearsExperience   int       `json:"years_experience"`
	LastVesselType    string    `json:"last_vessel_type,omitempty"`
	NextAvailablePort string    `json:"next_available_port,omitempty"`
	AvailabilityDate  time.Time `json:"availability_date"`
	MobileNumber      string    `json:"mobile_number"`
	Email             string    `json:"email"`

	EmergencyContactName         string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone        string `json:"emergency_contact_phone,omitempty"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship,omitempty"`

	Documents    Documents  `json:"documents"`
	ProfileToken string     `json:"-"`
	Status       CrewStatus `json:"status"`

	AdminNotes     string    `json:"admin_notes,omitempty"`
	ScreeningNotes string    `json:"screening_notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CrewRegistration is the validated-at-construction input of NewCrewMember.
type CrewRegistration struct {
	Name                         string
	Rank                         string
	Passport                     string
	Nationality                  string
	DateOfBirth                  time.Time
	YearsExperience              int
	LastVesselType               string
	NextAvailablePort            string
	AvailabilityDate             time.Time
	MobileNumber                 string
	Email                        string
	EmergencyContactName         string
	EmergencyContactPhone        string
	EmergencyContactRelationship string
}

// NewCrewMember builds a Registered crew member with no documents.
func NewCrewMember(reg CrewRegistration, now time.Time) (*CrewMember, error) {
	passport, err := id.ParsePassport(reg.Passport)
	if err != nil {
		return nil, err
	}
	address := email.Normalize(reg.Email)

	switch {
	case !lengthBetween(reg.Name, 2, 128):
		return nil, validation("name must be between 2 and 128 characters")
	case !slices.Contains(Ranks, reg.Rank):
		return nil, validation("rank is not recognised")
	case !lengthBetween(reg.Nationality, 1, 64):
		return nil, validation("nationality is required and must be at most 64 characters")
	case reg.DateOfBirth.IsZero():
		return nil, validation("date of birth is required")
	case reg.YearsExperience < 0 || reg.YearsExperience > 50:
		return nil, validation("years of experience must be between 0 and 50")
	case reg.AvailabilityDate.IsZero():
		return nil, validation("availability date is required")
	case !lengthBetween(reg.MobileNumber, 1, 20):
		return nil, validation("mobile number is required and must be at most 20 characters")
	case len(address) > 120 || !email.IsValid(address):
		return nil, validation("email address is invalid")
	case len(reg.LastVesselType) > 128, len(reg.NextAvailablePort) > 128:
		return nil, validation("vessel type and port must be at most 128 characters")
	case len(reg.EmergencyContactName) > 128,
		len(reg.EmergencyContactPhone) > 20,
		len(reg.EmergencyContactRelationship) > 64:
		return nil, validation("emergency contact details are too long")
	}

	return &CrewMember{
		Name:                         reg.Name,
		Rank:                         reg.Rank,
		Passport:                     passport,
		Nationality:                  reg.Nationality,
		DateOfBirth:                  reg.DateOfBirth,
		YearsExperience:              reg.YearsExperience,
		LastVesselType:               reg.LastVesselType,
		NextAvailablePort:            reg.NextAvailablePort,
		AvailabilityDate:             reg.AvailabilityDate,
		MobileNumber:                 reg.MobileNumber,
		Email:                        address,
		EmergencyContactName:         reg.EmergencyContactName,
		EmergencyContactPhone:        reg.EmergencyContactPhone,
		EmergencyContactRelationship: reg.EmergencyContactRelationship,
		Documents:                    Documents{},
		Status:                       CrewStatusRegistered,
		CreatedAt:                    now,
		UpdatedAt:                    now,
	}, nil
}

func (c *CrewMember) DocumentSlots() []SlotSpec { return crewSlots }
func (c *CrewMember) DocumentRefs() Documents   { return c.Documents }

func (c *CrewMember) RequiredDocuments() []DocumentStatus { return ListRequiredDocuments(c) }
func (c *CrewMember) CompletionPercentage() int           { return CompletionPercentage(c) }
func (c *CrewMember) IsComplete() bool                    { return IsComplete(c) }

// AttachDocument stores a reference in a crew slot, replacing any previous file.
func (c *CrewMember) AttachDocument(slot Slot, ref string, now time.Time) error {
	if _, ok := LookupSlot(crewSlots, slot); !ok {
		return dErrors.New(dErrors.CodeInvalidInput, "unknown crew document slot "+string(slot))
	}
	if c.Documents == nil {
		c.Documents = Documents{}
	}
	c.Documents[slot] = ref
	c.UpdatedAt = now
	return nil
}

// Clone returns a deep copy safe to hand out of a store.
func (c *CrewMember) Clone() *CrewMember {
	out := *c
	out.Documents = c.Documents.Clone()
	return &out
}

func lengthBetween(s string, lo, hi int) bool {
	n := len([]rune(s))
	return n >= lo && n <= hi
}

func validation(msg string) error {
	return dErrors.New(dErrors.CodeValidation, msg)
}
