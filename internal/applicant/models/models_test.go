package models

import (
	"bytes"
	"testing"
	"time"

	id "maricheck/pkg/domain"
	dErrors "maricheck/pkg/domain-errors"

	"github.com/stretchr/testify/suite"
)

var testNow = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

func validCrewRegistration() CrewRegistration {
	return CrewRegistration{
		Name:             "Arjun Nair",
		Rank:             "Second Officer",
		Passport:         "ab1234567",
		Nationality:      "Indian",
		DateOfBirth:      time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		YearsExperience:  8,
		AvailabilityDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		MobileNumber:     "+91 98200 00000",
		Email:            "arjun@Example.COM",
	}
}

func validStaffRegistration() StaffRegistration {
	return StaffRegistration{
		FullName:         "Meera Shah",
		EmailOrWhatsApp:  "+91 99000 11111",
		PositionApplying: "Crewing Executive",
		Department:       "Crewing",
		YearsExperience:  3,
		Location:         "Mumbai",
		AvailabilityDate: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		MobileNumber:     "+91 99000 11111",
	}
}

func mandatoryCrewSlots() []Slot {
	var out []Slot
	for _, s := range CrewSlots() {
		if s.Required {
			out = append(out, s.Slot)
		}
	}
	return out
}

type CrewModelSuite struct {
	suite.Suite
}

func TestCrewModelSuite(t *testing.T) {
	suite.Run(t, new(CrewModelSuite))
}

func (s *CrewModelSuite) newCrew() *CrewMember {
	c, err := NewCrewMember(validCrewRegistration(), testNow)
	s.Require().NoError(err)
	c.ID = id.CrewID(1)
	return c
}

func (s *CrewModelSuite) TestNewCrewMember() {
	s.Run("normalizes passport and email domain", func() {
		c := s.newCrew()
		s.Equal(id.Passport("AB1234567"), c.Passport)
		s.Equal("arjun@example.com", c.Email)
		s.Equal(CrewStatusRegistered, c.Status)
		s.Equal(testNow, c.CreatedAt)
		s.Equal(testNow, c.UpdatedAt)
		s.False(c.HasProfileToken())
	})

	invalid := map[string]func(r *CrewRegistration){
		"short name":          func(r *CrewRegistration) { r.Name = "A" },
		"unknown rank":        func(r *CrewRegistration) { r.Rank = "Admiral" },
		"short passport":      func(r *CrewRegistration) { r.Passport = "ab1" },
		"missing dob":         func(r *CrewRegistration) { r.DateOfBirth = time.Time{} },
		"experience ceiling":  func(r *CrewRegistration) { r.YearsExperience = 51 },
		"negative experience": func(r *CrewRegistration) { r.YearsExperience = -1 },
		"bad email":           func(r *CrewRegistration) { r.Email = "not-an-email" },
		"missing mobile":      func(r *CrewRegistration) { r.MobileNumber = "" },
		"missing nationality": func(r *CrewRegistration) { r.Nationality = "" },
	}
	for name, mutate := range invalid {
		s.Run(name, func() {
			reg := validCrewRegistration()
			mutate(&reg)
			_, err := NewCrewMember(reg, testNow)
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}
}

func (s *CrewModelSuite) TestDocumentRegistry() {
	s.Run("lists fourteen slots in declaration order", func() {
		c := s.newCrew()
		docs := c.RequiredDocuments()
		s.Require().Len(docs, 14)
		s.Equal(SlotPassport, docs[0].Slot)
		s.Equal(SlotGovernmentID, docs[13].Slot)
		s.True(docs[13].Required)
		for _, d := range docs {
			s.False(d.Uploaded)
		}
	})

	s.Run("ten slots are mandatory", func() {
		s.Len(mandatoryCrewSlots(), 10)
	})

	s.Run("no mandatory documents is zero percent", func() {
		c := s.newCrew()
		c.Documents[SlotGMDSSDCE] = "crew/crew_1a2b3c4d_gmdss.pdf"
		s.Equal(0, c.CompletionPercentage())
		s.False(c.IsComplete())
	})

	s.Run("all mandatory documents is complete regardless of optional slots", func() {
		c := s.newCrew()
		for _, slot := range mandatoryCrewSlots() {
			c.Documents[slot] = "crew/" + string(slot)
		}
		s.Equal(100, c.CompletionPercentage())
		s.True(c.IsComplete())

		c.Documents[SlotYellowFever] = "crew/yf.pdf"
		c.Documents[SlotOtherDocument] = "crew/other.pdf"
		s.Equal(100, c.CompletionPercentage())
	})

	s.Run("passport and cdc only is twenty percent", func() {
		c := s.newCrew()
		c.Documents[SlotPassport] = "crew/p.pdf"
		c.Documents[SlotCDC] = "crew/c.pdf"
		s.Equal(20, c.CompletionPercentage())

		docs := c.RequiredDocuments()
		s.True(docs[0].Uploaded)
		s.True(docs[1].Uploaded)
		s.False(docs[2].Uploaded)
	})

	s.Run("percentage truncates toward zero", func() {
		c := s.newCrew()
		for _, slot := range mandatoryCrewSlots()[:3] {
			c.Documents[slot] = "x"
		}
		s.Equal(30, c.CompletionPercentage())
		c.Documents = Documents{}
		for _, slot := range mandatoryCrewSlots()[:9] {
			c.Documents[slot] = "x"
		}
		s.Equal(90, c.CompletionPercentage())
	})

	s.Run("empty reference does not count as uploaded", func() {
		c := s.newCrew()
		c.Documents[SlotPassport] = ""
		s.Equal(0, c.CompletionPercentage())
	})
}

func (s *CrewModelSuite) TestAttachDocument() {
	c := s.newCrew()
	later := testNow.Add(time.Hour)

	s.Require().NoError(c.AttachDocument(SlotINDOSCertificate, "crew/crew_00aa11bb_indos.pdf", later))
	s.Equal("crew/crew_00aa11bb_indos.pdf", c.Documents[SlotINDOSCertificate])
	s.Equal(later, c.UpdatedAt)

	err := c.AttachDocument(Slot("tattoo_file"), "x", later)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func (s *CrewModelSuite) TestStatusMachine() {
	later := testNow.Add(2 * time.Hour)

	s.Run("approve from flagged is unconditional", func() {
		c := s.newCrew()
		c.Status = CrewStatusFlagged
		c.AdminNotes = "old"
		s.True(c.ApplyAction(ActionApprove, "cleared after call", later))
		s.Equal(CrewStatusApproved, c.Status)
		s.Equal(3, c.Status.Code())
		s.Equal("cleared after call", c.AdminNotes)
		s.Equal(later, c.UpdatedAt)
	})

	s.Run("screening writes screening notes only", func() {
		c := s.newCrew()
		c.AdminNotes = "keep"
		s.True(c.ApplyAction(ActionScreening, "phone screen booked", later))
		s.Equal(CrewStatusScreening, c.Status)
		s.Equal("phone screen booked", c.ScreeningNotes)
		s.Equal("keep", c.AdminNotes)
	})

	s.Run("each recognised action targets its status", func() {
		expected := map[Action]CrewStatus{
			ActionApprove:   CrewStatusApproved,
			ActionReject:    CrewStatusRejected,
			ActionFlag:      CrewStatusFlagged,
			ActionScreening: CrewStatusScreening,
			ActionVerified:  CrewStatusDocumentsVerified,
		}
		for action, status := range expected {
			c := s.newCrew()
			s.True(c.CanApplyAction(action))
			s.True(c.ApplyAction(action, "n", later))
			s.Equal(status, c.Status, string(action))
		}
	})

	s.Run("notes are overwritten not appended", func() {
		c := s.newCrew()
		c.ApplyAction(ActionReject, "first", later)
		c.ApplyAction(ActionReject, "second", later)
		s.Equal("second", c.AdminNotes)
	})

	s.Run("unrecognised action changes nothing", func() {
		c := s.newCrew()
		c.Status = CrewStatusScreening
		c.AdminNotes = "a"
		c.ScreeningNotes = "b"
		before := *c

		s.False(c.CanApplyAction("bogus"))
		s.False(c.ApplyAction("bogus", "ignored", later))
		s.Equal(before.Status, c.Status)
		s.Equal(before.AdminNotes, c.AdminNotes)
		s.Equal(before.ScreeningNotes, c.ScreeningNotes)
		s.Equal(before.UpdatedAt, c.UpdatedAt)
	})
}

func (s *CrewModelSuite) TestProfileToken() {
	c := s.newCrew()

	s.Run("deterministic for a fixed entropy source", func() {
		src := bytes.Repeat([]byte{0x42}, 64)
		a, err := NewProfileToken(c.ID, c.Passport, bytes.NewReader(src))
		s.Require().NoError(err)
		b, err := NewProfileToken(c.ID, c.Passport, bytes.NewReader(src))
		s.Require().NoError(err)
		s.Equal(a, b)
		s.True(IsWellFormedProfileToken(a))
	})

	s.Run("many tokens never collide", func() {
		seen := make(map[string]struct{}, 500)
		for i := range 500 {
			tok, err := NewProfileToken(id.CrewID(i+1), c.Passport, nil)
			s.Require().NoError(err)
			s.Len(tok, 64)
			_, dup := seen[tok]
			s.False(dup)
			seen[tok] = struct{}{}
		}
	})

	s.Run("short entropy source fails", func() {
		_, err := NewProfileToken(c.ID, c.Passport, bytes.NewReader([]byte{1, 2, 3}))
		s.Error(err)
	})

	s.Run("matching", func() {
		tok, err := NewProfileToken(c.ID, c.Passport, nil)
		s.Require().NoError(err)
		s.False(c.MatchesProfileToken(tok))
		c.ProfileToken = tok
		s.True(c.MatchesProfileToken(tok))
		s.False(c.MatchesProfileToken(""))
		s.False(c.MatchesProfileToken(tok[:63] + "0"))
		s.False(IsWellFormedProfileToken("ZZ"))
	})
}

func (s *CrewModelSuite) TestFilter() {
	c := s.newCrew()
	c.Status = CrewStatusScreening

	s.True(c.Matches(ListFilter{}))
	s.True(c.Matches(ListFilter{Statuses: []int{1, 3}}))
	s.False(c.Matches(ListFilter{Statuses: []int{0}}))
	s.True(c.Matches(ListFilter{Search: "  officer "}))
	s.True(c.Matches(ListFilter{Search: "ab123"}))
	s.True(c.Matches(ListFilter{Search: "ARJUN"}))
	s.False(c.Matches(ListFilter{Search: "engineer"}))
}

type StaffModelSuite struct {
	suite.Suite
}

func TestStaffModelSuite(t *testing.T) {
	suite.Run(t, new(StaffModelSuite))
}

func (s *StaffModelSuite) newStaff() *StaffMember {
	m, err := NewStaffMember(validStaffRegistration(), testNow)
	s.Require().NoError(err)
	m.ID = id.StaffID(1)
	return m
}

func (s *StaffModelSuite) TestDefaultsToScreening() {
	m := s.newStaff()
	s.Equal(StaffStatusScreening, m.Status)
	s.Equal(1, m.Status.Code())
}

func (s *StaffModelSuite) TestValidation() {
	reg := validStaffRegistration()
	reg.Department = "Finance"
	_, err := NewStaffMember(reg, testNow)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))

	reg = validStaffRegistration()
	reg.FullName = ""
	_, err = NewStaffMember(reg, testNow)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *StaffModelSuite) TestFlagAndVerifiedAreNoOps() {
	for _, action := range []Action{ActionFlag, ActionVerified, "bogus"} {
		m := s.newStaff()
		s.False(m.CanApplyAction(action))
		s.False(m.ApplyAction(action, "note", testNow.Add(time.Hour)))
		s.Equal(StaffStatusScreening, m.Status)
		s.Empty(m.AdminNotes)
		s.Equal(testNow, m.UpdatedAt)
	}
}

func (s *StaffModelSuite) TestTransitions() {
	m := s.newStaff()
	s.True(m.ApplyAction(ActionApprove, "strong interview", testNow))
	s.Equal(StaffStatusApproved, m.Status)
	s.Equal("strong interview", m.AdminNotes)

	s.True(m.ApplyAction(ActionScreening, "second round", testNow))
	s.Equal(StaffStatusScreening, m.Status)
	s.Equal("second round", m.ScreeningNotes)

	s.True(m.ApplyAction(ActionReject, "position filled", testNow))
	s.Equal(StaffStatusRejected, m.Status)
}

func (s *StaffModelSuite) TestDocumentsAreOptional() {
	m := s.newStaff()
	s.Equal(100, m.CompletionPercentage())
	docs := m.RequiredDocuments()
	s.Require().Len(docs, 2)
	s.False(docs[0].Required)
	s.False(docs[1].Required)

	s.Require().NoError(m.AttachDocument(SlotResume, "staff/staff_0a0b0c0d_cv.pdf", testNow))
	s.Error(m.AttachDocument(SlotPassport, "x", testNow))
}

func (s *StaffModelSuite) TestFilter() {
	m := s.newStaff()
	s.True(m.Matches(ListFilter{Search: "crewing"}))
	s.True(m.Matches(ListFilter{Search: "executive"}))
	s.False(m.Matches(ListFilter{Search: "mumbai"}))
	s.False(m.Matches(ListFilter{Statuses: []int{3}}))
}
