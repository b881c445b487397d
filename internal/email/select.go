package email

import (
	"strings"

	"github.com/FallenDelta563/EMOR-OS-V1/internal/models"
)

// TemplateType identifies one programmatic template variant
type TemplateType string

// Inquiry reply variants
const (
	InquiryProfessional    TemplateType = "inquiry_professional"
	InquiryFriendly        TemplateType = "inquiry_friendly"
	InquiryConsultative    TemplateType = "inquiry_consultative"
	InquiryServiceSpecific TemplateType = "inquiry_service_specific"
)

// Prospect outreach variants
const (
	ProspectColdHigh   TemplateType = "prospect_cold_high"
	ProspectColdMedium TemplateType = "prospect_cold_medium"
	ProspectFollowUp   TemplateType = "prospect_follow_up"
	ProspectValueBased TemplateType = "prospect_value_based"
)

// KnownInquiryTemplate reports whether t names an inquiry reply variant
func KnownInquiryTemplate(t TemplateType) bool {
	switch t {
	case InquiryProfessional, InquiryFriendly, InquiryConsultative, InquiryServiceSpecific:
		return true
	}
	return false
}

// KnownProspectTemplate reports whether t names a prospect outreach variant
func KnownProspectTemplate(t TemplateType) bool {
	switch t {
	case ProspectColdHigh, ProspectColdMedium, ProspectFollowUp, ProspectValueBased:
		return true
	}
	return false
}

// Selection boundaries. A message of exactly 200 characters is not yet
// consultative; scores of exactly 70 and 50 land in the high and medium
// buckets respectively.
const (
	consultativeMessageLen = 200
	highIntentScore        = 70
	mediumIntentScore      = 50
)

// PickTemplateKeyFromPage derives the stored auto-reply template key from an
// inquiry's source page by case-insensitive substring match, in priority
// order partnership > consultation > newsletter. Unmatched or empty pages
// default to the newsletter template.
func PickTemplateKeyFromPage(page string) string {
	lower := strings.ToLower(page)

	switch {
	case strings.Contains(lower, "partnership"):
		return models.TemplateKeyPartnership
	case strings.Contains(lower, "consultation"):
		return models.TemplateKeyConsultation
	default:
		return models.TemplateKeyNewsletter
	}
}

// SuggestInquiryTemplate picks the reply variant for an inquiry: detailed
// messages get the consultative treatment, stated services or interest get
// the service-specific one, everything else the professional default.
func SuggestInquiryTemplate(data InquiryData) TemplateType {
	if len(data.Message) > consultativeMessageLen {
		return InquiryConsultative
	}
	if data.Services != "" || data.Interest != "" {
		return InquiryServiceSpecific
	}
	return InquiryProfessional
}

// SuggestProspectTemplate picks the outreach variant from the automation
// score: high scorers get the direct cold pitch, mid scorers the softer one,
// the rest the value-first audit offer.
func SuggestProspectTemplate(data ProspectData) TemplateType {
	if data.AutomationScore >= highIntentScore {
		return ProspectColdHigh
	}
	if data.AutomationScore >= mediumIntentScore {
		return ProspectColdMedium
	}
	return ProspectValueBased
}
