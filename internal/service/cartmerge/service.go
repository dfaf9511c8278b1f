// Package cartmerge reconciles an anonymous session cart into an account
// cart. It runs once per successful login, before the login response is
// written.
package cartmerge

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"partymenu/internal/domain"
	cartlinerepo "partymenu/internal/repository/cartline"
)

type Service struct {
	repo   mergeRepo
	logger *log.Logger
}

type mergeRepo interface {
	MergeInto(ctx context.Context, from, to domain.Owner) error
}

func New(repo cartlinerepo.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, logger: logger}
}

// Merge moves every line of the session cart into the account cart. Items
// held by both sides end up as a single account line carrying the summed
// quantity under the account's price snapshot; everything else is reassigned
// in place. The store performs the whole move in one transaction, so a
// concurrent add never observes a half-merged cart.
func (s *Service) Merge(ctx context.Context, sessionID string, userID int64) error {
	if strings.TrimSpace(sessionID) == "" {
		return fmt.Errorf("%w: session id required", domain.ErrValidation)
	}
	if userID <= 0 {
		return fmt.Errorf("%w: user id required", domain.ErrValidation)
	}

	if err := s.repo.MergeInto(ctx, domain.SessionOwner(sessionID), domain.AccountOwner(userID)); err != nil {
		return err
	}
	s.logger.Printf("cart merge: session=%s user=%d", sessionID, userID)
	return nil
}
