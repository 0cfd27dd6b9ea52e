package domain

import (
	"strconv"
	"strings"

	dErrors "maricheck/pkg/domain-errors"
)

// CrewID identifies a crew applicant. Zero means "not yet persisted".
type CrewID int64

// StaffID identifies an office/offshore staff applicant.
type StaffID int64

// AdminID identifies a dashboard administrator.
type AdminID int64

func (i CrewID) String() string  { return strconv.FormatInt(int64(i), 10) }
func (i StaffID) String() string { return strconv.FormatInt(int64(i), 10) }
func (i AdminID) String() string { return strconv.FormatInt(int64(i), 10) }

func (i CrewID) IsNil() bool  { return i <= 0 }
func (i StaffID) IsNil() bool { return i <= 0 }
func (i AdminID) IsNil() bool { return i <= 0 }

// ParseCrewID parses a crew identifier from a path or form value.
func ParseCrewID(s string) (CrewID, error) {
	n, err := parsePositive(s, "crew id")
	return CrewID(n), err
}

// ParseStaffID parses a staff identifier from a path or form value.
func ParseStaffID(s string) (StaffID, error) {
	n, err := parsePositive(s, "staff id")
	return StaffID(n), err
}

// ParseAdminID parses an administrator identifier, e.g. from a session subject.
func ParseAdminID(s string) (AdminID, error) {
	n, err := parsePositive(s, "admin id")
	return AdminID(n), err
}

func parsePositive(s, label string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "invalid "+label)
	}
	if n <= 0 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, label+" must be positive")
	}
	return n, nil
}
