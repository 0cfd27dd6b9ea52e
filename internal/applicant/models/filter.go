package models

import (
	"slices"
	"strings"
)

// ListFilter narrows applicant listings. Zero value lists everything.
type ListFilter struct {
	// Statuses is an exact-match set of public status codes; empty means any.
	Statuses []int
	// Search is a case-insensitive substring matched against the variant's text fields.
	Search string
	// Limit caps the result size; zero means no cap.
	Limit int
}

func (f ListFilter) MatchesStatus(code int) bool {
	return len(f.Statuses) == 0 || slices.Contains(f.Statuses, code)
}

// SearchTerm returns the trimmed search string.
func (f ListFilter) SearchTerm() string {
	return strings.TrimSpace(f.Search)
}

func containsFold(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// Matches applies the filter to a crew member: search covers name, passport and rank.
func (c *CrewMember) Matches(f ListFilter) bool {
	return f.MatchesStatus(c.Status.Code()) &&
		containsFold(f.SearchTerm(), c.Name, c.Passport.String(), c.Rank)
}

// Matches applies the filter to a staff member: search covers full name,
// position and department.
func (s *StaffMember) Matches(f ListFilter) bool {
	return f.MatchesStatus(s.Status.Code()) &&
		containsFold(f.SearchTerm(), s.FullName, s.PositionApplying, s.Department)
}

// Dashboard is the admin overview: totals, per-status counts and the five
// most recent applicants of each variant.
type Dashboard struct {
	TotalCrew      int            `json:"total_crew"`
	TotalStaff     int            `json:"total_staff"`
	CrewScreening  int            `json:"crew_screening"`
	StaffScreening int            `json:"staff_screening"`
	CrewApproved   int            `json:"crew_approved"`
	StaffApproved  int            `json:"staff_approved"`
	RecentCrew     []*CrewMember  `json:"recent_crew"`
	RecentStaff    []*StaffMember `json:"recent_staff"`
}
