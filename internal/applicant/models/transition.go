package models

import "time"

// Action is an admin review action. Unknown values are carried through so
// callers can report them; they never change an applicant.
type Action string

const (
	ActionApprove   Action = "approve"
	ActionReject    Action = "reject"
	ActionFlag      Action = "flag"
	ActionScreening Action = "screening"
	ActionVerified  Action = "verified"
)

type noteField int

const (
	adminNote noteField = iota
	screeningNote
)

type crewTransition struct {
	to   CrewStatus
	note noteField
}

type staffTransition struct {
	to   StaffStatus
	note noteField
}

// Transitions are unconditional on the prior state: any action may be taken
// from any status, including the terminal-looking ones.
var crewTransitions = map[Action]crewTransition{
	ActionApprove:   {CrewStatusApproved, adminNote},
	ActionReject:    {CrewStatusRejected, adminNote},
	ActionFlag:      {CrewStatusFlagged, adminNote},
	ActionScreening: {CrewStatusScreening, screeningNote},
	ActionVerified:  {CrewStatusDocumentsVerified, adminNote},
}

var staffTransitions = map[Action]staffTransition{
	ActionApprove:   {StaffStatusApproved, adminNote},
	ActionReject:    {StaffStatusRejected, adminNote},
	ActionScreening: {StaffStatusScreening, screeningNote},
}

// CanApplyAction reports whether the action is defined for crew members.
func (c *CrewMember) CanApplyAction(action Action) bool {
	_, ok := crewTransitions[action]
	return ok
}

// ApplyAction moves the crew member to the action's target status and
// overwrites the matching notes field. Unknown actions leave the record,
// including UpdatedAt, untouched and return false.
func (c *CrewMember) ApplyAction(action Action, note string, now time.Time) bool {
	t, ok := crewTransitions[action]
	if !ok {
		return false
	}
	c.Status = t.to
	if t.note == screeningNote {
		c.ScreeningNotes = note
	} else {
		c.AdminNotes = note
	}
	c.UpdatedAt = now
	return true
}

func (s *StaffMember) CanApplyAction(action Action) bool {
	_, ok := staffTransitions[action]
	return ok
}

// ApplyAction is the staff counterpart of CrewMember.ApplyAction; flag and
// verified are not defined for staff and are ignored.
func (s *StaffMember) ApplyAction(action Action, note string, now time.Time) bool {
	t, ok := staffTransitions[action]
	if !ok {
		return false
	}
	s.Status = t.to
	if t.note == screeningNote {
		s.ScreeningNotes = note
	} else {
		s.AdminNotes = note
	}
	s.UpdatedAt = now
	return true
}
