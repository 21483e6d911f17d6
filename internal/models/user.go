package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	MobileNumber string    `json:"mobile_number" db:"mobile_number"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Dialing-prefix tables backing CountryCode. The tables cover common prefixes
// only and are not a complete numbering plan.
var (
	threeDigitCodes = map[string]bool{"971": true}
	twoDigitCodes   = map[string]bool{
		"91": true, "44": true, "86": true, "61": true, "81": true, "82": true,
		"65": true, "60": true, "66": true, "84": true, "62": true, "63": true,
		"92": true, "94": true, "95": true, "98": true,
	}
	oneDigitCodes = map[string]bool{"1": true, "7": true}
)

// CountryCode extracts the dialing prefix from the mobile number, e.g.
// +919876543210 -> +91. Unrecognized prefixes default to two digits.
func (u *User) CountryCode() string {
	if !strings.HasPrefix(u.MobileNumber, "+") {
		return ""
	}

	var b strings.Builder
	for _, r := range u.MobileNumber[1:] {
		if r < '0' || r > '9' {
			break
		}
		b.WriteRune(r)
	}
	digits := b.String()

	switch {
	case len(digits) >= 3 && threeDigitCodes[digits[:3]]:
		return "+" + digits[:3]
	case len(digits) >= 2 && twoDigitCodes[digits[:2]]:
		return "+" + digits[:2]
	case len(digits) >= 1 && oneDigitCodes[digits[:1]]:
		return "+" + digits[:1]
	case len(digits) >= 2:
		return "+" + digits[:2]
	default:
		return "+" + digits
	}
}
