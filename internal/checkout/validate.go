package checkout

import (
	"regexp"
	"strings"

	"github.com/xomerch/storefront/internal/models"
)

// Shipping form field names as the UI submits them.
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldAddress   = "address"
	FieldCity      = "city"
	FieldState     = "state"
	FieldZipCode   = "zip_code"
	FieldCountry   = "country"
)

var (
	// local@domain.tld shape; anything stricter tends to reject real
	// addresses.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Alphanumeric 3-10 characters, not country-specific.
	zipPattern = regexp.MustCompile(`^[A-Za-z0-9]{3,10}$`)
)

var requiredMessages = map[string]string{
	FieldFirstName: "First name is required",
	FieldLastName:  "Last name is required",
	FieldEmail:     "Email is required",
	FieldAddress:   "Address is required",
	FieldCity:      "City is required",
	FieldState:     "State is required",
	FieldZipCode:   "ZIP code is required",
	FieldCountry:   "Country is required",
}

// FieldErrors maps field name to its error message. It doubles as the error
// value a blocked submission returns.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	return "shipping details are invalid"
}

// ValidateField checks a single field, for immediate feedback on every edit.
// It returns the error message for the field, or "" when the value passes.
func ValidateField(field, value string) string {

	if strings.TrimSpace(value) == "" {
		if msg, ok := requiredMessages[field]; ok {
			return msg
		}

		return "This field is required"
	}

	switch field {
	case FieldEmail:
		if !emailPattern.MatchString(value) {
			return "Enter a valid email address"
		}
	case FieldZipCode:
		if !zipPattern.MatchString(value) {
			return "Enter a valid ZIP or postal code"
		}
	}

	return ""
}

// Validate checks every field of the shipping form, for the exhaustive pass
// on submit. An empty result means the form may proceed to payment.
func Validate(details *models.ShippingDetails) FieldErrors {

	fields := map[string]string{
		FieldFirstName: details.FirstName,
		FieldLastName:  details.LastName,
		FieldEmail:     details.Email,
		FieldAddress:   details.Address,
		FieldCity:      details.City,
		FieldState:     details.State,
		FieldZipCode:   details.ZipCode,
		FieldCountry:   details.Country,
	}

	errs := make(FieldErrors)

	for field, value := range fields {
		if msg := ValidateField(field, value); msg != "" {
			errs[field] = msg
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}
