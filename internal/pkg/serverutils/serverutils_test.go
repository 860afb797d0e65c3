package serverutils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccessResponseEnvelope(t *testing.T) {
	res := SuccessResponse("Pet details", map[string]string{"name": "Bella"})

	assert.True(t, res.Success)
	assert.Equal(t, 200, res.Code)
	assert.Equal(t, "Pet details", res.Message)

	data, err := json.Marshal(res)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"code":200,"message":"Pet details","data":{"name":"Bella"}}`, string(data))
}

func TestErrorResponseOmitsData(t *testing.T) {
	res := ErrorResponse(404, "pet not found")

	data, err := json.Marshal(res)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"code":404,"message":"pet not found"}`, string(data))
}

func TestValidateRequest(t *testing.T) {
	type registerReq struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
		FullName string `json:"full_name" validate:"required,min=2,max=255"`
	}

	tests := []struct {
		name    string
		req     registerReq
		wantErr bool
	}{
		{
			name:    "valid",
			req:     registerReq{Email: "jane@example.com", Password: "secret1", FullName: "Jane Doe"},
			wantErr: false,
		},
		{
			name:    "bad email",
			req:     registerReq{Email: "not-an-email", Password: "secret1", FullName: "Jane Doe"},
			wantErr: true,
		},
		{
			name:    "short password",
			req:     registerReq{Email: "jane@example.com", Password: "abc", FullName: "Jane Doe"},
			wantErr: true,
		},
		{
			name:    "name too short",
			req:     registerReq{Email: "jane@example.com", Password: "secret1", FullName: "J"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
				var vErr *ValidationError
				assert.ErrorAs(t, err, &vErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("  hello  "))
	assert.Equal(t, "hello", SanitizeString("<script>alert(1)</script>hello"))
	assert.Equal(t, "bold text", SanitizeString("<b>bold</b> text"))
}
