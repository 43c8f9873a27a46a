package domain

import (
	"time"

	"github.com/aussiebroadwan/stash/pkg/cryptox"
)

// Account is a registered user. Credential is the Argon2 digest of the
// password; the password itself is never kept.
type Account struct {
	ID         string
	Name       string
	Credential cryptox.Credential
	CreatedAt  time.Time
}
