package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckUIDSyntax(t *testing.T) {
	valid := []string{
		"ATU12345678",
		"atu 1234 5678",
		"DE123456789",
		"NL123456789B01",
		"IE1234567FA",
		"BE0123456789",
		"EU123456789",
		"XI123456789",
		"EL123456789",
	}
	for _, uid := range valid {
		assert.True(t, CheckUIDSyntax(uid), "expected %q to be valid", uid)
	}

	invalid := []string{
		"",
		"AT",
		"ZZ12345678",   // unknown prefix is invalid, never merely unknown
		"AT12345678",   // AT requires the U marker
		"ATU1234567",   // too short
		"ATU123456789", // too long
		"DE12345678",   // DE is nine digits
		"NL123456789A01",
		"GB123456789", // GB left the scheme; XI replaced it
	}
	for _, uid := range invalid {
		assert.False(t, CheckUIDSyntax(uid), "expected %q to be invalid", uid)
	}
}

func TestUIDCountry(t *testing.T) {
	t.Run("national prefix maps to itself", func(t *testing.T) {
		country, ok := UIDCountry("ATU12345678")
		assert.True(t, ok)
		assert.Equal(t, "AT", country)
	})

	t.Run("pseudo prefixes map to issuing jurisdiction", func(t *testing.T) {
		country, ok := UIDCountry("EL123456789")
		assert.True(t, ok)
		assert.Equal(t, "GR", country)

		country, ok = UIDCountry("XI123456789")
		assert.True(t, ok)
		assert.Equal(t, "GB", country)
	})

	t.Run("unknown prefix yields no country", func(t *testing.T) {
		_, ok := UIDCountry("ZZ12345678")
		assert.False(t, ok)
	})
}
