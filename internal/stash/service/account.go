package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/stash/internal/stash/domain"
	"github.com/aussiebroadwan/stash/internal/stash/store"
	"github.com/aussiebroadwan/stash/pkg/cryptox"
	"github.com/aussiebroadwan/stash/pkg/slogx"
	"github.com/google/uuid"
)

// MaxNameLength bounds account names in characters.
const MaxNameLength = 64

var (
	ErrInvalidAccountRequest = errors.New("invalid account request")
	ErrNameTaken             = errors.New("account name already taken")
	ErrInvalidCredentials    = errors.New("invalid_credentials")
	ErrAccountNotFound       = errors.New("account not found")
)

type AccountService struct {
	Store  store.Store
	Hasher *cryptox.Hasher

	// Now defaults to time.Now.
	Now func() time.Time
}

// Register creates an account and stores only the password digest.
func (s *AccountService) Register(ctx context.Context, name, password string) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	if !validName(name) || password == "" {
		return domain.Account{}, ErrInvalidAccountRequest
	}

	account := domain.Account{
		ID:         uuid.NewString(),
		Name:       name,
		Credential: s.Hasher.HashString(password),
		CreatedAt:  s.now().UTC().Truncate(time.Second),
	}

	if err := s.Store.Accounts().CreateAccount(ctx, account); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Info("registration rejected, name taken", slog.String("name", name))
			return domain.Account{}, ErrNameTaken
		}
		log.Error("failed to create account", slog.Any("error", err))
		return domain.Account{}, err
	}

	log.Info("account registered",
		slog.String("account_id", account.ID),
		slog.String("name", account.Name),
	)
	return account, nil
}

// Authenticate checks a name and password pair. An unknown name and a wrong
// password both return ErrInvalidCredentials after the same hashing work.
func (s *AccountService) Authenticate(ctx context.Context, name, password string) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	var account domain.Account
	found := false
	if name != "" && password != "" {
		var err error
		account, err = s.Store.Accounts().GetAccountByName(ctx, name)
		switch {
		case err == nil:
			found = true
		case errors.Is(err, store.ErrNotFound):
		default:
			log.Error("failed to fetch account", slog.Any("error", err))
			return domain.Account{}, err
		}
	}

	// Verify runs on every path so unknown names cost the same as known ones.
	// A missing account leaves a zero credential, which never matches.
	ok := s.Hasher.Verify([]byte(password), account.Credential)
	if !found || account.Credential.IsZero() || !ok {
		reason := "bad_password"
		if !found {
			reason = "unknown_name"
		}
		log.Info("login failed", slog.String("name", name), slog.String("reason", reason))
		return domain.Account{}, ErrInvalidCredentials
	}

	return account, nil
}

// GetAccount fetches an account by id.
func (s *AccountService) GetAccount(ctx context.Context, id string) (domain.Account, error) {
	account, err := s.Store.Accounts().GetAccountByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Account{}, ErrAccountNotFound
	}
	return account, err
}

func (s *AccountService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func validName(name string) bool {
	if name == "" || strings.TrimSpace(name) != name {
		return false
	}
	return utf8.ValidString(name) && utf8.RuneCountInString(name) <= MaxNameLength
}
