package checkout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xomerch/storefront/internal/checkout"
	"github.com/xomerch/storefront/internal/models"
)

func validShipping() models.ShippingDetails {
	return models.ShippingDetails{
		FirstName: "Abel",
		LastName:  "Tesfaye",
		Email:     "abel@example.com",
		Address:   "123 Blinding Lights Blvd",
		City:      "Toronto",
		State:     "ON",
		ZipCode:   "M5V2T6",
		Country:   "Canada",
	}
}

func TestValidateField(t *testing.T) {
	t.Run("Blank Required Field", func(t *testing.T) {
		msg := checkout.ValidateField(checkout.FieldFirstName, "   ")
		assert.Equal(t, "First name is required", msg)
	})

	t.Run("Valid Email", func(t *testing.T) {
		assert.Empty(t, checkout.ValidateField(checkout.FieldEmail, "user@domain.com"))
	})

	t.Run("Email Without Domain Dot", func(t *testing.T) {
		assert.Equal(t, "Enter a valid email address", checkout.ValidateField(checkout.FieldEmail, "user@domain"))
	})

	t.Run("Email Without At Sign", func(t *testing.T) {
		assert.Equal(t, "Enter a valid email address", checkout.ValidateField(checkout.FieldEmail, "not-an-email"))
	})

	t.Run("Zip Codes Are International", func(t *testing.T) {
		assert.Empty(t, checkout.ValidateField(checkout.FieldZipCode, "10001"))
		assert.Empty(t, checkout.ValidateField(checkout.FieldZipCode, "SW1A1AA"))
	})

	t.Run("Zip Code Too Short", func(t *testing.T) {
		assert.NotEmpty(t, checkout.ValidateField(checkout.FieldZipCode, "12"))
	})

	t.Run("Zip Code Too Long", func(t *testing.T) {
		assert.NotEmpty(t, checkout.ValidateField(checkout.FieldZipCode, "12345678901"))
	})

	t.Run("Zip Code Rejects Symbols", func(t *testing.T) {
		assert.NotEmpty(t, checkout.ValidateField(checkout.FieldZipCode, "123-45"))
	})
}

func TestValidate(t *testing.T) {
	t.Run("Valid Form Produces No Errors", func(t *testing.T) {
		details := validShipping()

		assert.Nil(t, checkout.Validate(&details))
	})

	t.Run("Invalid Email Flags Only The Email Field", func(t *testing.T) {
		details := validShipping()
		details.Email = "not-an-email"

		errs := checkout.Validate(&details)

		assert.Len(t, errs, 1)
		assert.Contains(t, errs, checkout.FieldEmail)
	})

	t.Run("Every Blank Field Is Reported", func(t *testing.T) {
		errs := checkout.Validate(&models.ShippingDetails{})

		assert.Len(t, errs, 8)
		assert.Equal(t, "Country is required", errs[checkout.FieldCountry])
	})
}
