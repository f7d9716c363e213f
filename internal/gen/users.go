package gen

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/toolshop/seedgen/pkg/types"
)

// bcryptHash is the fixed password hash assigned to accounts that have
// a password ("welcome01" in the application under test).
const bcryptHash = "$2y$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

// countriesWithStates are the countries for which a state field is set.
var countriesWithStates = map[string]bool{"US": true, "CA": true, "AU": true}

// Users generates count user accounts with unique emails, weighted
// roles, and probability-driven account flags.
func Users(src *Source, count int) []types.User {
	users := make([]types.User, 0, count)
	usedEmails := make(map[string]struct{}, count)

	for i := 0; i < count; i++ {
		first := src.f.FirstName()
		last := src.f.LastName()
		role := types.UserRoles[src.Weighted(types.UserRoleWeights)]
		created, updated := src.createdUpdated()

		u := types.User{
			ID:        src.NewID(),
			FirstName: first,
			LastName:  last,
			Street:    src.f.Street(),
			City:      src.f.City(),
			Country:   src.f.CountryAbr(),
			Phone:     src.f.Phone(),
			DOB:       src.dob(),
			Email:     src.uniqueEmail(first, last, usedEmails),
			Role:      role,
			CreatedAt: created,
			UpdatedAt: updated,
		}
		u.PostalCode = src.f.Zip()
		if countriesWithStates[u.Country] {
			u.State = src.f.State()
		}

		// Admins are always enabled; other accounts may be locked out.
		u.Enabled = role == types.RoleAdmin || src.Chance(src.cfg.UserEnabledProbability)
		if !u.Enabled {
			u.FailedLoginAttempts = src.Between(0, 3)
		}

		totpProb := src.cfg.UserTOTPProbability
		if role == types.RoleAdmin || role == types.RoleManager {
			totpProb = src.cfg.AdminTOTPProbability
		}
		if src.Chance(totpProb) {
			u.TOTPEnabled = true
			u.TOTPSecret = src.hexToken(16)
			u.TOTPVerifiedAt = Stamp(src.timeBetween(src.ref.AddDate(-2, 0, 0), src.ref))
		}

		if src.Chance(src.cfg.SocialProviderProbability) {
			u.Provider = Pick(src, types.SocialProviders)
			u.UID = uuid.Must(uuid.NewRandomFromReader(src.rng)).String()
		}

		if src.Chance(src.cfg.PasswordProbability) {
			u.Password = bcryptHash
		}

		users = append(users, u)
	}
	return users
}

// dob returns a birth date between 18 and 75 years before the
// reference clock.
func (s *Source) dob() string {
	d := s.timeBetween(s.ref.AddDate(-75, 0, 0), s.ref.AddDate(-18, 0, 0))
	return d.UTC().Format(dateLayout)
}

// uniqueEmail builds a business-style address from the name and
// registers it in used. Colliding addresses get a numeric local-part
// suffix, so the result is always unique.
func (s *Source) uniqueEmail(first, last string, used map[string]struct{}) string {
	f := emailToken(first)
	l := emailToken(last)
	domain := Pick(s, emailDomains)

	var local string
	switch s.rng.Intn(4) {
	case 0:
		local = f + "." + l
	case 1:
		local = f + l
	case 2:
		local = f[:1] + l
	default:
		local = fmt.Sprintf("%s%d", f, s.Between(1, 999))
	}

	email := local + "@" + domain
	for n := 1; ; n++ {
		if _, taken := used[email]; !taken {
			used[email] = struct{}{}
			return email
		}
		email = fmt.Sprintf("%s%d@%s", local, n, domain)
	}
}

// emailToken lowercases a name and strips everything outside [a-z0-9].
func emailToken(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "x"
	}
	return b.String()
}
