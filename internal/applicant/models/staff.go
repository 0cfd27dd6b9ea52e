package models

import (
	"slices"
	"time"

	id "maricheck/pkg/domain"
	dErrors "maricheck/pkg/domain-errors"
)

// Departments accepted on the staff registration form.
var Departments = []string{"Ops", "HR", "Tech", "Crewing"}

// StaffMember is the aggregate root for an office or offshore staff application.
type StaffMember struct {
	ID               id.StaffID `json:"id"`
	FullName         string     `json:"full_name"`
	EmailOrWhatsApp  string     `json:"email_or_whatsapp"`
	PositionApplying string     `json:"position_applying"`
	Department       string     `json:"department"`
	YearsExperience  int        `json:"years_experience"`
	CurrentEmployer  string     `json:"current_employer,omitempty"`
	Location         string     `json:"location"`
	AvailabilityDate time.Time  `json:"availability_date"`
	MobileNumber     string     `json:"mobile_number"`

	Education         string `json:"education,omitempty"`
	Certifications    string `json:"certifications,omitempty"`
	SalaryExpectation string `json:"salary_expectation,omitempty"`

	Documents Documents   `json:"documents"`
	Status    StaffStatus `json:"status"`

	AdminNotes     string    `json:"admin_notes,omitempty"`
	ScreeningNotes string    `json:"screening_notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type StaffRegistration struct {
	FullName          string
	EmailOrWhatsApp   string
	PositionApplying  string
	Department        string
	YearsExperience   int
	CurrentEmployer   string
	Location          string
	AvailabilityDate  time.Time
	MobileNumber      string
	Education         string
	Certifications    string
	SalaryExpectation string
}

// NewStaffMember builds a staff member in Screening, the staff initial state.
func NewStaffMember(reg StaffRegistration, now time.Time) (*StaffMember, error) {
	switch {
	case !lengthBetween(reg.FullName, 2, 128):
		return nil, validation("full name must be between 2 and 128 characters")
	case !lengthBetween(reg.EmailOrWhatsApp, 1, 128):
		return nil, validation("email or WhatsApp is required and must be at most 128 characters")
	case !lengthBetween(reg.MobileNumber, 1, 20):
		return nil, validation("mobile number is required and must be at most 20 characters")
	case !lengthBetween(reg.Location, 1, 128):
		return nil, validation("location is required and must be at most 128 characters")
	case !lengthBetween(reg.PositionApplying, 1, 128):
		return nil, validation("position is required and must be at most 128 characters")
	case !slices.Contains(Departments, reg.Department):
		return nil, validation("department must be one of Ops, HR, Tech, Crewing")
	case reg.YearsExperience < 0 || reg.YearsExperience > 50:
		return nil, validation("years of experience must be between 0 and 50")
	case reg.AvailabilityDate.IsZero():
		return nil, validation("availability date is required")
	case len(reg.CurrentEmployer) > 128, len(reg.Education) > 255, len(reg.SalaryExpectation) > 64:
		return nil, validation("optional details are too long")
	}

	return &StaffMember{
		FullName:          reg.FullName,
		EmailOrWhatsApp:   reg.EmailOrWhatsApp,
		PositionApplying:  reg.PositionApplying,
		Department:        reg.Department,
		YearsExperience:   reg.YearsExperience,
		CurrentEmployer:   reg.CurrentEmployer,
		Location:          reg.Location,
		AvailabilityDate:  reg.AvailabilityDate,
		MobileNumber:      reg.MobileNumber,
		Education:         reg.Education,
		Certifications:    reg.Certifications,
		SalaryExpectation: reg.SalaryExpectation,
		Documents:         Documents{},
		Status:            StaffStatusScreening,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

func (s *StaffMember) DocumentSlots() []SlotSpec { return staffSlots }
func (s *StaffMember) DocumentRefs() Documents   { return s.Documents }

func (s *StaffMember) RequiredDocuments() []DocumentStatus { return ListRequiredDocuments(s) }
func (s *StaffMember) CompletionPercentage() int           { return CompletionPercentage(s) }

func (s *StaffMember) AttachDocument(slot Slot, ref string, now time.Time) error {
	if _, ok := LookupSlot(staffSlots, slot); !ok {
		return dErrors.New(dErrors.CodeInvalidInput, "unknown staff document slot "+string(slot))
	}
	if s.Documents == nil {
		s.Documents = Documents{}
	}
	s.Documents[slot] = ref
	s.UpdatedAt = now
	return nil
}

func (s *StaffMember) Clone() *StaffMember {
	out := *s
	out.Documents = s.Documents.Clone()
	return &out
}
