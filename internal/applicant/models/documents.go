package models

import (
	"path/filepath"
	"slices"
	"strings"
)

// Slot names a document attachment field. Values double as storage column names.
type Slot string

const (
	SlotPassport           Slot = "passport_file"
	SlotCDC                Slot = "cdc_file"
	SlotResume             Slot = "resume_file"
	SlotPhoto              Slot = "photo_file"
	SlotMedicalCertificate Slot = "medical_certificate_file"
	SlotCOCCOP             Slot = "coc_cop_file"
	SlotSTCWCertificates   Slot = "stcw_certificates_file"
	SlotINDOSCertificate   Slot = "indos_certificate_file"
	SlotExperienceLetters  Slot = "experience_letters_file"
	SlotBankDetails        Slot = "bank_details_file"
	SlotGMDSSDCE           Slot = "gmdss_dce_file"
	SlotYellowFever        Slot = "yellow_fever_file"
	SlotOtherDocument      Slot = "other_document_file"
	SlotGovernmentID       Slot = "aadhaar_pan_file"
)

var (
	documentExtensions = []string{"pdf", "jpg", "jpeg", "png"}
	resumeExtensions   = []string{"pdf", "doc", "docx"}
	imageExtensions    = []string{"jpg", "jpeg", "png"}
)

// SlotSpec declares one document slot of an applicant variant.
type SlotSpec struct {
	Slot        Slot
	DisplayName string
	Required    bool
	Extensions  []string
}

// AllowsFile reports whether filename carries one of the slot's extensions.
func (s SlotSpec) AllowsFile(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	return ext != "" && slices.Contains(s.Extensions, ext)
}

// crewSlots is the single declaration of crew document slots, in display order.
var crewSlots = []SlotSpec{
	{SlotPassport, "Passport", true, documentExtensions},
	{SlotCDC, "CDC (Seaman Book)", true, documentExtensions},
	{SlotResume, "Resume/CV", true, resumeExtensions},
	{SlotPhoto, "Photo (Passport Size)", true, imageExtensions},
	{SlotMedicalCertificate, "Medical Certificate", true, documentExtensions},
	{SlotCOCCOP, "COC/COP Certificate", true, documentExtensions},
	{SlotSTCWCertificates, "STCW Certificates", true, documentExtensions},
	{SlotINDOSCertificate, "INDOS Certificate / Number", true, documentExtensions},
	{SlotExperienceLetters, "Experience Letters / Sea Service Testimonials", true, documentExtensions},
	{SlotBankDetails, "SEA (Seafarer's Employment Agreement)", false, documentExtensions},
	{SlotGMDSSDCE, "GMDSS/DCE Certificate", false, documentExtensions},
	{SlotYellowFever, "Yellow Fever Certificate", false, documentExtensions},
	{SlotOtherDocument, "Other Document", false, documentExtensions},
	{SlotGovernmentID, "Government ID (Aadhar, PAN, SSN)", true, documentExtensions},
}

var staffSlots = []SlotSpec{
	{SlotResume, "Resume/CV", false, resumeExtensions},
	{SlotPhoto, "Photo", false, imageExtensions},
}

// crewRegistrationSlots are the slots the public registration form accepts;
// the rest are collected later through the private profile page.
var crewRegistrationSlots = []Slot{SlotPassport, SlotCDC, SlotResume, SlotPhoto, SlotMedicalCertificate}

func CrewSlots() []SlotSpec  { return slices.Clone(crewSlots) }
func StaffSlots() []SlotSpec { return slices.Clone(staffSlots) }

func CrewRegistrationSlots() []Slot { return slices.Clone(crewRegistrationSlots) }

// LookupSlot finds a slot by name in a slot table.
func LookupSlot(specs []SlotSpec, slot Slot) (SlotSpec, bool) {
	for _, s := range specs {
		if s.Slot == slot {
			return s, true
		}
	}
	return SlotSpec{}, false
}

// Documents maps filled slots to opaque storage references.
type Documents map[Slot]string

// Has reports whether a slot holds a reference.
func (d Documents) Has(slot Slot) bool {
	return d[slot] != ""
}

func (d Documents) Clone() Documents {
	out := make(Documents, len(d))
	for k, v := range d {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// DocumentStatus is one row of the Document Registry report.
type DocumentStatus struct {
	Slot        Slot   `json:"slot"`
	DisplayName string `json:"display_name"`
	Required    bool   `json:"required"`
	Uploaded    bool   `json:"uploaded"`
}

// DocumentHolder is an applicant with a slot table and filled documents.
type DocumentHolder interface {
	DocumentSlots() []SlotSpec
	DocumentRefs() Documents
}

// ListRequiredDocuments reports every slot of the applicant in declaration order.
func ListRequiredDocuments(a DocumentHolder) []DocumentStatus {
	docs := a.DocumentRefs()
	slots := a.DocumentSlots()
	out := make([]DocumentStatus, 0, len(slots))
	for _, s := range slots {
		out = append(out, DocumentStatus{
			Slot:        s.Slot,
			DisplayName: s.DisplayName,
			Required:    s.Required,
			Uploaded:    docs.Has(s.Slot),
		})
	}
	return out
}

// CompletionPercentage is floor(100 * uploaded mandatory / mandatory).
// A variant with no mandatory slots is complete by definition.
func CompletionPercentage(a DocumentHolder) int {
	docs := a.DocumentRefs()
	var required, uploaded int
	for _, s := range a.DocumentSlots() {
		if !s.Required {
			continue
		}
		required++
		if docs.Has(s.Slot) {
			uploaded++
		}
	}
	if required == 0 {
		return 100
	}
	return uploaded * 100 / required
}

func IsComplete(a DocumentHolder) bool {
	return CompletionPercentage(a) == 100
}
