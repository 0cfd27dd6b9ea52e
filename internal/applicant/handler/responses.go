package handler

import (
	"fmt"
	"time"

	"maricheck/internal/applicant/models"
	id "maricheck/pkg/domain"
)

// StatusView is the public code of a status with its display name and class.
type StatusView struct {
	Code  int    `json:"code"`
	Name  string `json:"name"`
	Class string `json:"class"`
}

func crewStatusView(s models.CrewStatus) StatusView {
	return StatusView{Code: s.Code(), Name: s.Name(), Class: s.Class()}
}

func staffStatusView(s models.StaffStatus) StatusView {
	return StatusView{Code: s.Code(), Name: s.Name(), Class: s.Class()}
}

// DocumentView is one slot of an applicant's document checklist.
type DocumentView struct {
	Slot        models.Slot `json:"slot"`
	DisplayName string      `json:"display_name"`
	Required    bool        `json:"required"`
	Uploaded    bool        `json:"uploaded"`
	Reference   string      `json:"reference,omitempty"`
}

func documentViews(holder models.DocumentHolder, withRefs bool) []DocumentView {
	refs := holder.DocumentRefs()
	statuses := models.ListRequiredDocuments(holder)
	out := make([]DocumentView, 0, len(statuses))
	for _, d := range statuses {
		v := DocumentView{Slot: d.Slot, DisplayName: d.DisplayName, Required: d.Required, Uploaded: d.Uploaded}
		if withRefs {
			v.Reference = refs[d.Slot]
		}
		out = append(out, v)
	}
	return out
}

func profilePath(crewID id.CrewID, token string) string {
	if token == "" {
		return ""
	}
	return fmt.Sprintf("/my-profile/%d-%s", crewID, token)
}

// RegistrationResponse confirms a registration. ProfilePath is the private
// upload link and is only present for crew.
type RegistrationResponse struct {
	ID          int64      `json:"id"`
	Status      StatusView `json:"status"`
	Message     string     `json:"message"`
	ProfilePath string     `json:"profile_path,omitempty"`
	TrackPath   string     `json:"track_path,omitempty"`
}

// TrackResponse is what an applicant sees on the public status page.
type TrackResponse struct {
	Name                 string     `json:"name"`
	Rank                 string     `json:"rank"`
	Passport             string     `json:"passport"`
	Status               StatusView `json:"status"`
	CompletionPercentage int        `json:"completion_percentage"`
	RegisteredAt         time.Time  `json:"registered_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func toTrackResponse(m *models.CrewMember) *TrackResponse {
	return &TrackResponse{
		Name:                 m.Name,
		Rank:                 m.Rank,
		Passport:             m.Passport.String(),
		Status:               crewStatusView(m.Status),
		CompletionPercentage: m.CompletionPercentage(),
		RegisteredAt:         m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// PrivateProfileResponse is the crew member's own view of their record.
type PrivateProfileResponse struct {
	ID                   int64          `json:"id"`
	Name                 string         `json:"name"`
	Rank                 string         `json:"rank"`
	Passport             string         `json:"passport"`
	Status               StatusView     `json:"status"`
	CompletionPercentage int            `json:"completion_percentage"`
	Documents            []DocumentView `json:"documents"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

func toPrivateProfile(m *models.CrewMember) *PrivateProfileResponse {
	return &PrivateProfileResponse{
		ID:                   int64(m.ID),
		Name:                 m.Name,
		Rank:                 m.Rank,
		Passport:             m.Passport.String(),
		Status:               crewStatusView(m.Status),
		CompletionPercentage: m.CompletionPercentage(),
		Documents:            documentViews(m, false),
		UpdatedAt:            m.UpdatedAt,
	}
}

// UploadResponse reports which slots a private upload filled.
type UploadResponse struct {
	Message              string   `json:"message"`
	Updated              []string `json:"updated"`
	CompletionPercentage int      `json:"completion_percentage"`
}

// CrewSummary is one row of the admin crew list.
type CrewSummary struct {
	ID                   int64      `json:"id"`
	Name                 string     `json:"name"`
	Rank                 string     `json:"rank"`
	Passport             string     `json:"passport"`
	Nationality          string     `json:"nationality"`
	Status               StatusView `json:"status"`
	CompletionPercentage int        `json:"completion_percentage"`
	CreatedAt            time.Time  `json:"created_at"`
}

func toCrewSummaries(members []*models.CrewMember) []CrewSummary {
	out := make([]CrewSummary, 0, len(members))
	for _, m := range members {
		out = append(out, CrewSummary{
			ID:                   int64(m.ID),
			Name:                 m.Name,
			Rank:                 m.Rank,
			Passport:             m.Passport.String(),
			Nationality:          m.Nationality,
			Status:               crewStatusView(m.Status),
			CompletionPercentage: m.CompletionPercentage(),
			CreatedAt:            m.CreatedAt,
		})
	}
	return out
}

// CrewDetail is the admin view of one crew member.
type CrewDetail struct {
	*models.CrewMember
	Status               StatusView     `json:"status"`
	CompletionPercentage int            `json:"completion_percentage"`
	DocumentChecklist    []DocumentView `json:"document_checklist"`
	ProfilePath          string         `json:"profile_path,omitempty"`
}

func toCrewDetail(m *models.CrewMember) *CrewDetail {
	return &CrewDetail{
		CrewMember:           m,
		Status:               crewStatusView(m.Status),
		CompletionPercentage: m.CompletionPercentage(),
		DocumentChecklist:    documentViews(m, true),
		ProfilePath:          profilePath(m.ID, m.ProfileToken),
	}
}

// StaffSummary is one row of the admin staff list.
type StaffSummary struct {
	ID               int64      `json:"id"`
	FullName         string     `json:"full_name"`
	PositionApplying string     `json:"position_applying"`
	Department       string     `json:"department"`
	Location         string     `json:"location"`
	Status           StatusView `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
}

func toStaffSummaries(members []*models.StaffMember) []StaffSummary {
	out := make([]StaffSummary, 0, len(members))
	for _, m := range members {
		out = append(out, StaffSummary{
			ID:               int64(m.ID),
			FullName:         m.FullName,
			PositionApplying: m.PositionApplying,
			Department:       m.Department,
			Location:         m.Location,
			Status:           staffStatusView(m.Status),
			CreatedAt:        m.CreatedAt,
		})
	}
	return out
}

// StaffDetail is the admin view of one staff applicant.
type StaffDetail struct {
	*models.StaffMember
	Status            StatusView     `json:"status"`
	DocumentChecklist []DocumentView `json:"document_checklist"`
}

func toStaffDetail(m *models.StaffMember) *StaffDetail {
	return &StaffDetail{
		StaffMember:       m,
		Status:            staffStatusView(m.Status),
		DocumentChecklist: documentViews(m, true),
	}
}

// TransitionResponse reports the outcome of a review action. Applied is false
// when the action is not defined for the applicant variant.
type TransitionResponse struct {
	ID      int64      `json:"id"`
	Action  string     `json:"action"`
	Applied bool       `json:"applied"`
	Status  StatusView `json:"status"`
	Message string     `json:"message"`
}

var transitionMessages = map[models.Action]string{
	models.ActionApprove:   "approved successfully",
	models.ActionReject:    "rejected",
	models.ActionFlag:      "flagged for review",
	models.ActionScreening: "moved to screening",
}

func transitionMessage(subject string, action models.Action, applied bool) string {
	if !applied {
		return "Unknown action " + string(action) + " ignored."
	}
	if action == models.ActionVerified {
		return "Documents verified."
	}
	return subject + " " + transitionMessages[action] + "."
}

// DashboardResponse is the admin overview.
type DashboardResponse struct {
	TotalCrew      int            `json:"total_crew"`
	TotalStaff     int            `json:"total_staff"`
	CrewScreening  int            `json:"crew_screening"`
	StaffScreening int            `json:"staff_screening"`
	CrewApproved   int            `json:"crew_approved"`
	StaffApproved  int            `json:"staff_approved"`
	RecentCrew     []CrewSummary  `json:"recent_crew"`
	RecentStaff    []StaffSummary `json:"recent_staff"`
}

func toDashboardResponse(d *models.Dashboard) *DashboardResponse {
	return &DashboardResponse{
		TotalCrew:      d.TotalCrew,
		TotalStaff:     d.TotalStaff,
		CrewScreening:  d.CrewScreening,
		StaffScreening: d.StaffScreening,
		CrewApproved:   d.CrewApproved,
		StaffApproved:  d.StaffApproved,
		RecentCrew:     toCrewSummaries(d.RecentCrew),
		RecentStaff:    toStaffSummaries(d.RecentStaff),
	}
}

// ListResponse wraps admin lists with the applied filter.
type ListResponse[T any] struct {
	Items  []T    `json:"items"`
	Count  int    `json:"count"`
	Search string `json:"search,omitempty"`
	Status []int  `json:"status,omitempty"`
}
