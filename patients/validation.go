package patients

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/healthdesk/registry/config"
)

var (
	fullNameRegexp    = regexp.MustCompile(`^[A-Za-z ]+$`)
	emailLocalRegexp  = regexp.MustCompile(`^[a-z0-9]+$`)
	countryCodeRegexp = regexp.MustCompile(`^\+\d{1,4}$`)
	numberRegexp      = regexp.MustCompile(`^\d+$`)
)

const (
	maxFullNameLength = 255
	maxNumberLength   = 15
)

// Rule checks one field of a normalized form and returns a human-readable
// message when the field is invalid.
type Rule struct {
	Field string
	Check func(form *Form) string
}

// Validator applies an ordered list of field rules. Client-side validation
// is advisory only; these rules are the authority on every request.
type Validator struct {
	rules []Rule
}

func NewValidator(cfg *config.Config) *Validator {
	return &Validator{
		rules: []Rule{
			{Field: "full_name", Check: checkFullName},
			{Field: "email", Check: checkEmail(cfg.AllowedEmailDomain)},
			{Field: "country_code", Check: checkCountryCode},
			{Field: "number", Check: checkNumber},
			{Field: "photo", Check: checkPhoto(cfg.MaxPhotoSizeBytes)},
		},
	}
}

// Validate normalizes the form in place and returns a field to message
// map, empty when the form is valid.
func (v *Validator) Validate(form *Form) map[string]string {
	form.FullName = strings.TrimSpace(form.FullName)
	form.Email = strings.ToLower(strings.TrimSpace(form.Email))
	form.CountryCode = strings.TrimSpace(form.CountryCode)
	form.Number = strings.TrimSpace(form.Number)

	failures := map[string]string{}
	for _, rule := range v.rules {
		if _, failed := failures[rule.Field]; failed {
			continue
		}
		if message := rule.Check(form); message != "" {
			failures[rule.Field] = message
		}
	}
	return failures
}

func checkFullName(form *Form) string {
	switch {
	case form.FullName == "":
		return "full name is required"
	case len(form.FullName) > maxFullNameLength:
		return fmt.Sprintf("full name must be at most %d characters", maxFullNameLength)
	case !fullNameRegexp.MatchString(form.FullName):
		return "full name may only contain letters and spaces"
	}
	return ""
}

func checkEmail(allowedDomain string) func(*Form) string {
	return func(form *Form) string {
		if form.Email == "" {
			return "email is required"
		}
		local, domain, found := strings.Cut(form.Email, "@")
		if !found || !emailLocalRegexp.MatchString(local) || domain == "" {
			return "email is not a valid address"
		}
		if domain != allowedDomain {
			return fmt.Sprintf("email must be a %s address", allowedDomain)
		}
		return ""
	}
}

func checkCountryCode(form *Form) string {
	if form.CountryCode == "" {
		return "country code is required"
	}
	if !countryCodeRegexp.MatchString(form.CountryCode) {
		return "country code must be a + followed by up to 4 digits"
	}
	return ""
}

func checkNumber(form *Form) string {
	switch {
	case form.Number == "":
		return "number is required"
	case len(form.Number) > maxNumberLength:
		return fmt.Sprintf("number must be at most %d digits", maxNumberLength)
	case !numberRegexp.MatchString(form.Number):
		return "number may only contain digits"
	}
	return ""
}

func checkPhoto(maxSize int64) func(*Form) string {
	return func(form *Form) string {
		switch {
		case form.Photo == nil || form.Photo.Size == 0:
			return "photo is required"
		case form.Photo.ContentType != "image/jpeg":
			return "photo must be a jpeg image"
		case form.Photo.Size > maxSize:
			return fmt.Sprintf("photo must be at most %d bytes", maxSize)
		}
		return ""
	}
}
