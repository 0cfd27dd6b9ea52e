package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "maricheck/pkg/domain-errors"
)

func TestLoginRequest_Validate(t *testing.T) {
	req := &LoginRequest{Username: "  Admin ", Password: "admin123"}
	require.NoError(t, req.Validate())
	assert.Equal(t, "admin", req.Username)

	for name, r := range map[string]*LoginRequest{
		"missing password": {Username: "admin"},
		"blank username":   {Username: "   ", Password: "x"},
	} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, dErrors.HasCode(r.Validate(), dErrors.CodeValidation))
		})
	}

	var nilReq *LoginRequest
	assert.True(t, dErrors.HasCode(nilReq.Validate(), dErrors.CodeBadRequest))
}
