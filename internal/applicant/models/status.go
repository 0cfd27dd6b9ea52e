package models

import (
	"strconv"

	dErrors "maricheck/pkg/domain-errors"
)

// CrewStatus is the review state of a crew application. The integer values
// are the public codes used in filters, exports and the API.
type CrewStatus int

const (
	CrewStatusFlagged           CrewStatus = -2
	CrewStatusRejected          CrewStatus = -1
	CrewStatusRegistered        CrewStatus = 0
	CrewStatusScreening         CrewStatus = 1
	CrewStatusDocumentsVerified CrewStatus = 2
	CrewStatusApproved          CrewStatus = 3
)

// StaffStatus is the review state of a staff application.
type StaffStatus int

const (
	StaffStatusRejected  StaffStatus = -1
	StaffStatusScreening StaffStatus = 1
	StaffStatusApproved  StaffStatus = 3
)

// statusLabel carries the display name and presentation class of a status.
type statusLabel struct {
	name  string
	class string
}

var crewStatusLabels = map[CrewStatus]statusLabel{
	CrewStatusRegistered:        {"Registered", "secondary"},
	CrewStatusScreening:         {"Screening", "warning"},
	CrewStatusDocumentsVerified: {"Documents Verified", "info"},
	CrewStatusApproved:          {"Approved", "success"},
	CrewStatusRejected:          {"Rejected", "danger"},
	CrewStatusFlagged:           {"Flagged", "dark"},
}

var staffStatusLabels = map[StaffStatus]statusLabel{
	StaffStatusScreening: {"Screening", "warning"},
	StaffStatusApproved:  {"Approved", "success"},
	StaffStatusRejected:  {"Rejected", "danger"},
}

// CrewStatuses lists every crew status in pipeline order.
func CrewStatuses() []CrewStatus {
	return []CrewStatus{
		CrewStatusRegistered,
		CrewStatusScreening,
		CrewStatusDocumentsVerified,
		CrewStatusApproved,
		CrewStatusRejected,
		CrewStatusFlagged,
	}
}

// StaffStatuses lists every staff status in pipeline order.
func StaffStatuses() []StaffStatus {
	return []StaffStatus{StaffStatusScreening, StaffStatusApproved, StaffStatusRejected}
}

func (s CrewStatus) IsValid() bool {
	_, ok := crewStatusLabels[s]
	return ok
}

func (s CrewStatus) Code() int { return int(s) }

func (s CrewStatus) Name() string {
	if l, ok := crewStatusLabels[s]; ok {
		return l.name
	}
	return "Unknown"
}

func (s CrewStatus) Class() string {
	if l, ok := crewStatusLabels[s]; ok {
		return l.class
	}
	return "secondary"
}

func (s CrewStatus) String() string { return s.Name() }

func (s StaffStatus) IsValid() bool {
	_, ok := staffStatusLabels[s]
	return ok
}

func (s StaffStatus) Code() int { return int(s) }

func (s StaffStatus) Name() string {
	if l, ok := staffStatusLabels[s]; ok {
		return l.name
	}
	return "Unknown"
}

func (s StaffStatus) Class() string {
	if l, ok := staffStatusLabels[s]; ok {
		return l.class
	}
	return "warning"
}

func (s StaffStatus) String() string { return s.Name() }

// ParseCrewStatus converts a public status code into a CrewStatus.
func ParseCrewStatus(code int) (CrewStatus, error) {
	s := CrewStatus(code)
	if !s.IsValid() {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "unknown crew status code "+strconv.Itoa(code))
	}
	return s, nil
}

// ParseStaffStatus converts a public status code into a StaffStatus.
func ParseStaffStatus(code int) (StaffStatus, error) {
	s := StaffStatus(code)
	if !s.IsValid() {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "unknown staff status code "+strconv.Itoa(code))
	}
	return s, nil
}
