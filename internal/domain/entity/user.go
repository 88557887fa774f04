// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"regexp"

	"github.com/google/uuid"
)

var phoneNumberPattern = regexp.MustCompile(`^[0-9]{10}$`)

// User is a registered shopper whose green score accumulates purchase impacts.
type User struct {
	ID          uuid.UUID // Globally unique identifier, assigned at registration and never changed.
	PhoneNumber string    // Exactly ten digits, unique across users.
	Name        string    // Display name.
	GreenScore  float64   // Sum of the impacts of every purchase recorded for this user.
}

// IsValidPhoneNumber reports whether s consists of exactly ten ASCII digits.
func IsValidPhoneNumber(s string) bool {
	return phoneNumberPattern.MatchString(s)
}
