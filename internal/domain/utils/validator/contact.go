package validator

import (
	"net/mail"
	"strings"

	"github.com/af0b9b/qrlogo/pkg/vcard"
)

// Required names the contact fields that must be present before a contact
// payload is built.
var Required = []string{"first name", "last name", "phone", "email", "url"}

func Email(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// MissingContactFields returns the required fields that are still empty, in
// prompt order.
func MissingContactFields(c vcard.Contact) []string {
	var missing []string
	if strings.TrimSpace(c.GivenName) == "" {
		missing = append(missing, "first name")
	}
	if strings.TrimSpace(c.FamilyName) == "" {
		missing = append(missing, "last name")
	}
	if !hasValue(c.Phones) {
		missing = append(missing, "phone")
	}
	if !hasValue(c.Emails) {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(c.URL) == "" {
		missing = append(missing, "url")
	}
	return missing
}

func hasValue(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
