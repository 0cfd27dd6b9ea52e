package models

import (
	"testing"

	dErrors "maricheck/pkg/domain-errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrewStatusLabels(t *testing.T) {
	tests := []struct {
		status CrewStatus
		code   int
		name   string
		class  string
	}{
		{CrewStatusRegistered, 0, "Registered", "secondary"},
		{CrewStatusScreening, 1, "Screening", "warning"},
		{CrewStatusDocumentsVerified, 2, "Documents Verified", "info"},
		{CrewStatusApproved, 3, "Approved", "success"},
		{CrewStatusRejected, -1, "Rejected", "danger"},
		{CrewStatusFlagged, -2, "Flagged", "dark"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.status.Code())
			assert.Equal(t, tt.name, tt.status.Name())
			assert.Equal(t, tt.class, tt.status.Class())
			assert.True(t, tt.status.IsValid())
		})
	}
	assert.Len(t, CrewStatuses(), len(tests))
}

func TestStaffStatusLabels(t *testing.T) {
	assert.Equal(t, "Screening", StaffStatusScreening.Name())
	assert.Equal(t, "success", StaffStatusApproved.Class())
	assert.Equal(t, "danger", StaffStatusRejected.Class())
	assert.False(t, StaffStatus(2).IsValid())
	assert.Equal(t, "Unknown", StaffStatus(2).Name())
	assert.Equal(t, "warning", StaffStatus(2).Class())
	assert.Len(t, StaffStatuses(), 3)
}

func TestParseStatus(t *testing.T) {
	s, err := ParseCrewStatus(-2)
	require.NoError(t, err)
	assert.Equal(t, CrewStatusFlagged, s)

	_, err = ParseCrewStatus(7)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))

	_, err = ParseStaffStatus(0)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))

	st, err := ParseStaffStatus(3)
	require.NoError(t, err)
	assert.Equal(t, StaffStatusApproved, st)
}

func TestSlotSpec_AllowsFile(t *testing.T) {
	resume, ok := LookupSlot(CrewSlots(), SlotResume)
	require.True(t, ok)
	assert.True(t, resume.AllowsFile("cv.DOCX"))
	assert.False(t, resume.AllowsFile("cv.png"))

	photo, _ := LookupSlot(CrewSlots(), SlotPhoto)
	assert.True(t, photo.AllowsFile("me.jpeg"))
	assert.False(t, photo.AllowsFile("me.pdf"))
	assert.False(t, photo.AllowsFile("noextension"))

	_, ok = LookupSlot(StaffSlots(), SlotCDC)
	assert.False(t, ok)
	assert.Len(t, CrewRegistrationSlots(), 5)
}
