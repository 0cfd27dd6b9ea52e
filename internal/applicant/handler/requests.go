package handler

import (
	"mime/multipart"
	"net/url"
	"strconv"
	"strings"
	"time"

	"maricheck/internal/applicant/models"
	"maricheck/internal/applicant/service"
	dErrors "maricheck/pkg/domain-errors"
	pstrings "maricheck/pkg/platform/strings"
)

const (
	dateLayout    = "2006-01-02"
	maxActionSize = 32
	maxNoteSize   = 4000
)

// formReader pulls trimmed values out of a submitted form and remembers the
// first parse failure.
type formReader struct {
	values url.Values
	err    error
}

func (f *formReader) text(key string) string {
	return strings.TrimSpace(f.values.Get(key))
}

func (f *formReader) date(key, label string) time.Time {
	raw := f.text(key)
	if raw == "" || f.err != nil {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		f.err = dErrors.New(dErrors.CodeValidation, label+" must be a date in YYYY-MM-DD format")
		return time.Time{}
	}
	return t
}

func (f *formReader) integer(key, label string) int {
	raw := f.text(key)
	if raw == "" || f.err != nil {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		f.err = dErrors.New(dErrors.CodeValidation, label+" must be a whole number")
		return 0
	}
	return n
}

func crewRegistrationFromForm(values url.Values) (models.CrewRegistration, error) {
	f := &formReader{values: values}
	reg := models.CrewRegistration{
		Name:                         f.text("name"),
		Rank:                         f.text("rank"),
		Passport:                     f.text("passport"),
		Nationality:                  f.text("nationality"),
		DateOfBirth:                  f.date("date_of_birth", "date of birth"),
		YearsExperience:              f.integer("years_experience", "years of experience"),
		LastVesselType:               f.text("last_vessel_type"),
		NextAvailablePort:            f.text("next_available_port"),
		AvailabilityDate:             f.date("availability_date", "availability date"),
		MobileNumber:                 f.text("mobile_number"),
		Email:                        f.text("email"),
		EmergencyContactName:         f.text("emergency_contact_name"),
		EmergencyContactPhone:        f.text("emergency_contact_phone"),
		EmergencyContactRelationship: f.text("emergency_contact_relationship"),
	}
	return reg, f.err
}

func staffRegistrationFromForm(values url.Values) (models.StaffRegistration, error) {
	f := &formReader{values: values}
	reg := models.StaffRegistration{
		FullName:          f.text("full_name"),
		EmailOrWhatsApp:   f.text("email_or_whatsapp"),
		PositionApplying:  f.text("position_applying"),
		Department:        f.text("department"),
		YearsExperience:   f.integer("years_experience", "years of experience"),
		CurrentEmployer:   f.text("current_employer"),
		Location:          f.text("location"),
		AvailabilityDate:  f.date("availability_date", "availability date"),
		MobileNumber:      f.text("mobile_number"),
		Education:         f.text("education"),
		Certifications:    f.text("certifications"),
		SalaryExpectation: f.text("salary_expectation"),
	}
	return reg, f.err
}

// uploadsFromForm opens the first non-empty file part for each slot. Parts
// named after unknown slots are ignored. The returned closer releases every
// opened part.
func uploadsFromForm(form *multipart.Form, specs []models.SlotSpec) ([]service.Upload, func(), error) {
	var (
		uploads []service.Upload
		opened  []multipart.File
	)
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}
	if form == nil {
		return nil, closeAll, nil
	}
	for _, spec := range specs {
		for _, fh := range form.File[string(spec.Slot)] {
			if fh.Filename == "" || fh.Size == 0 {
				continue
			}
			f, err := fh.Open()
			if err != nil {
				closeAll()
				return nil, func() {}, dErrors.Wrap(err, dErrors.CodeBadRequest, "unreadable upload")
			}
			opened = append(opened, f)
			uploads = append(uploads, service.Upload{Slot: spec.Slot, Filename: fh.Filename, Content: f})
			break
		}
	}
	return uploads, closeAll, nil
}

// StatusRequest is the body of POST /admin/{crew,staff}/{id}/status.
type StatusRequest struct {
	Action string `json:"action"`
	Notes  string `json:"notes"`
}

// Validate only bounds the sizes. Action and notes pass through verbatim;
// anything that is not an exact action name is reported back as not applied.
func (r *StatusRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Action) > maxActionSize {
		return dErrors.New(dErrors.CodeBadRequest, "action must be at most 32 characters")
	}
	if len(r.Notes) > maxNoteSize {
		return dErrors.New(dErrors.CodeBadRequest, "notes must be at most 4000 characters")
	}
	return nil
}

// listFilterFromQuery reads ?status=1,2&status=3&search=..&limit=.. .
func listFilterFromQuery(q url.Values) (models.ListFilter, error) {
	filter := models.ListFilter{Search: strings.TrimSpace(q.Get("search"))}
	for _, raw := range pstrings.DedupeAndTrim(splitAll(q["status"])) {
		code, err := strconv.Atoi(raw)
		if err != nil {
			return filter, dErrors.New(dErrors.CodeValidation, "status must be an integer status code")
		}
		filter.Statuses = append(filter.Statuses, code)
	}
	if raw := strings.TrimSpace(q.Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return filter, dErrors.New(dErrors.CodeValidation, "limit must be a non-negative integer")
		}
		filter.Limit = limit
	}
	if len(filter.Search) > 128 {
		return filter, dErrors.New(dErrors.CodeValidation, "search must be at most 128 characters")
	}
	return filter, nil
}

func splitAll(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, pstrings.SplitList(v)...)
	}
	return out
}
