package email

import "strings"

// Business-entity keywords that disqualify a single-token "name" from being
// treated as a person's first name.
var businessNameKeywords = map[string]bool{
	"llc":      true,
	"inc":      true,
	"corp":     true,
	"company":  true,
	"co.":      true,
	"ltd":      true,
	"services": true,
	"group":    true,
}

// Common business suffixes stripped when deriving a greeting from a
// business name.
var businessSuffixes = map[string]bool{
	"llc":         true,
	"inc":         true,
	"corp":        true,
	"company":     true,
	"co":          true,
	"ltd":         true,
	"services":    true,
	"group":       true,
	"roofing":     true,
	"contractors": true,
}

const (
	maxPersonNameLen   = 20
	maxBusinessNameLen = 25

	// fallbackGreeting is used when neither name yields anything usable
	fallbackGreeting = "there"
)

// DeriveFirstName produces a greeting-friendly first name from a contact
// name and a business name.
//
// A multi-token contact name yields its first token. A single-token contact
// name is used as-is when it is not a business-entity keyword and is under
// 20 characters. Otherwise the business name is used with common suffixes
// stripped, keeping the first one or two tokens capped at 25 characters.
// When nothing usable remains the literal "there" is returned.
func DeriveFirstName(name, businessName string) string {
	name = strings.TrimSpace(name)

	if name != "" {
		tokens := strings.Fields(name)
		if len(tokens) > 1 {
			return tokens[0]
		}
		single := tokens[0]
		if !businessNameKeywords[strings.ToLower(single)] && len(single) < maxPersonNameLen {
			return single
		}
	}

	return firstNameFromBusiness(businessName)
}

func firstNameFromBusiness(businessName string) string {
	var kept []string
	for _, token := range strings.Fields(businessName) {
		normalized := strings.ToLower(strings.Trim(token, ".,"))
		// "co." appears in both lists; the keyword set keys on the dotted form
		if businessSuffixes[normalized] {
			continue
		}
		kept = append(kept, token)
	}

	if len(kept) == 0 {
		return fallbackGreeting
	}

	// Very short first tokens (initials, "JB") read better with the second
	// token attached; otherwise the first token alone is the greeting.
	candidate := kept[0]
	if len(candidate) <= 2 && len(kept) > 1 {
		candidate = kept[0] + " " + kept[1]
	}

	if len(candidate) > maxBusinessNameLen {
		candidate = candidate[:maxBusinessNameLen]
	}

	return candidate
}
