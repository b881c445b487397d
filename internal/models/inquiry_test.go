package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeForm(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]interface{}
		want    InquiryForm
	}{
		{
			name: "canonical keys",
			payload: map[string]interface{}{
				"name":    "Jane Doe",
				"email":   "jane@example.com",
				"company": "Acme",
				"message": "hello",
			},
			want: InquiryForm{Name: "Jane Doe", Email: "jane@example.com", Company: "Acme", Message: "hello"},
		},
		{
			name: "aliases resolved",
			payload: map[string]interface{}{
				"full_name":     "Jane Doe",
				"email_address": "jane@example.com",
				"organization":  "Acme",
				"phone_number":  "555-0100",
				"details":       "hello",
				"service":       "automation",
			},
			want: InquiryForm{
				Name: "Jane Doe", Email: "jane@example.com", Company: "Acme",
				Phone: "555-0100", Message: "hello", Services: "automation",
			},
		},
		{
			name: "canonical key wins over alias",
			payload: map[string]interface{}{
				"name":      "Jane",
				"full_name": "Someone Else",
			},
			want: InquiryForm{Name: "Jane"},
		},
		{
			name: "empty canonical falls through to alias",
			payload: map[string]interface{}{
				"name":      "   ",
				"full_name": "Jane Doe",
			},
			want: InquiryForm{Name: "Jane Doe"},
		},
		{
			name: "non-string values ignored",
			payload: map[string]interface{}{
				"name":  42,
				"email": "jane@example.com",
			},
			want: InquiryForm{Email: "jane@example.com"},
		},
		{
			name: "whitespace trimmed",
			payload: map[string]interface{}{
				"email": "  jane@example.com  ",
			},
			want: InquiryForm{Email: "jane@example.com"},
		},
		{
			name:    "empty payload",
			payload: map[string]interface{}{},
			want:    InquiryForm{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeForm(tt.payload))
		})
	}
}

func TestNewInquiry(t *testing.T) {
	form := InquiryForm{Name: "Jane", Email: "jane@example.com"}
	inquiry := NewInquiry(form, "consultation")

	assert.NotEmpty(t, inquiry.ID)
	assert.Equal(t, form, inquiry.Form)
	assert.Equal(t, "consultation", inquiry.Page)
	assert.Equal(t, InquiryStatusNew, inquiry.Status)
	assert.False(t, inquiry.IsDeleted)
	assert.Zero(t, inquiry.EmailsSent)
	assert.NotZero(t, inquiry.CreatedAt)
}
