package types

import "strconv"

// UserColumns is the persisted column order for the users table.
var UserColumns = []string{
	"id", "uid", "provider", "first_name", "last_name", "street", "city",
	"state", "country", "postal_code", "phone", "dob", "email", "password",
	"role", "enabled", "failed_login_attempts", "totp_secret",
	"totp_enabled", "totp_verified_at", "created_at", "updated_at",
}

// User is an account of the shop under test. Optional fields are empty
// strings when absent; they persist as blank CSV cells.
type User struct {
	ID                  string
	UID                 string // social-login subject, empty for local accounts
	Provider            string // social-login provider, empty for local accounts
	FirstName           string
	LastName            string
	Street              string
	City                string
	State               string // only for countries that have states
	Country             string // ISO 3166-1 alpha-2
	PostalCode          string
	Phone               string
	DOB                 string // date, ISO
	Email               string
	Password            string // bcrypt hash, empty for passwordless accounts
	Role                string
	Enabled             bool
	FailedLoginAttempts int
	TOTPSecret          string
	TOTPEnabled         bool
	TOTPVerifiedAt      string
	CreatedAt           string
	UpdatedAt           string
}

// Row renders the user in UserColumns order.
func (u User) Row() []string {
	return []string{
		u.ID, u.UID, u.Provider, u.FirstName, u.LastName, u.Street, u.City,
		u.State, u.Country, u.PostalCode, u.Phone, u.DOB, u.Email, u.Password,
		u.Role, strconv.FormatBool(u.Enabled),
		strconv.Itoa(u.FailedLoginAttempts), u.TOTPSecret,
		strconv.FormatBool(u.TOTPEnabled), u.TOTPVerifiedAt,
		u.CreatedAt, u.UpdatedAt,
	}
}
