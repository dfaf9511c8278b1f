// Package anonymous issues and validates browser session identifiers
// for carts that exist before login.
package anonymous

import (
	"time"

	"github.com/google/uuid"
)

type Service struct {
	cookieTTL time.Duration
}

func New() *Service {
	return &Service{cookieTTL: 30 * 24 * time.Hour}
}

// NewSessionID mints an identifier for an anonymous cart session.
func (s *Service) NewSessionID() string {
	return uuid.NewString()
}

// ValidSessionID reports whether a client-supplied identifier is one
// this service could have minted. Anything else is dropped so junk
// cookies cannot address arbitrary carts.
func (s *Service) ValidSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// CookieTTLSeconds exposes the session cookie lifetime in seconds.
func (s *Service) CookieTTLSeconds() int {
	return int(s.cookieTTL.Seconds())
}
