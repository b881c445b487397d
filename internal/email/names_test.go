package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveFirstName(t *testing.T) {
	tests := []struct {
		name         string
		contactName  string
		businessName string
		want         string
	}{
		{
			name:        "multi token name yields first token",
			contactName: "Jane Doe",
			want:        "Jane",
		},
		{
			name:         "multi token name wins over business name",
			contactName:  "Jane Doe",
			businessName: "Acme LLC",
			want:         "Jane",
		},
		{
			name:        "single personal token used as-is",
			contactName: "Marcus",
			want:        "Marcus",
		},
		{
			name:         "single business keyword falls through to business name",
			contactName:  "LLC",
			businessName: "Summit Roofing LLC",
			want:         "Summit",
		},
		{
			name:        "overlong single token rejected",
			contactName: "Abcdefghijklmnopqrstuvwxyz",
			want:        "there",
		},
		{
			name:         "business name with suffix stripped",
			businessName: "Bob's Plumbing LLC",
			want:         "Bob's",
		},
		{
			name:         "short first business token keeps second",
			businessName: "JB Electrical Services",
			want:         "JB Electrical",
		},
		{
			name:         "dotted suffix stripped",
			businessName: "Hilltop Co.",
			want:         "Hilltop",
		},
		{
			name:         "business name of only suffixes",
			businessName: "Roofing Contractors LLC",
			want:         "there",
		},
		{
			name: "nothing usable",
			want: "there",
		},
		{
			name:        "whitespace only name",
			contactName: "   ",
			want:        "there",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveFirstName(tt.contactName, tt.businessName))
		})
	}
}
