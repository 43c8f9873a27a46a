package service

import (
	"context"
	"errors"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/stash/internal/stash/domain"
	"github.com/aussiebroadwan/stash/internal/stash/store"
	"github.com/aussiebroadwan/stash/pkg/cryptox"
	"github.com/aussiebroadwan/stash/pkg/slogx"
	"github.com/cespare/xxhash/v2"
)

// MaxClipSize bounds clip content in bytes, before encryption.
const MaxClipSize = 64 << 10

var (
	ErrInvalidClip        = errors.New("invalid clip")
	ErrClipNotFound       = errors.New("clip not found")
	ErrPassphraseRequired = errors.New("clip is protected")
	ErrDecryptionFailed   = errors.New("decryption failed")
)

type ClipService struct {
	Store store.Store
	Vault *cryptox.Vault

	// Now defaults to time.Now.
	Now func() time.Time
}

// ClipCode maps stored bytes onto the four digit code space.
func ClipCode(stored []byte) int {
	return int(xxhash.Sum64(stored) % domain.ClipCodes)
}

// Send stores content and returns the clip with its code. A non-empty
// passphrase stores the content encrypted; the passphrase itself is not
// kept. A clip already under the same code is replaced.
func (s *ClipService) Send(ctx context.Context, content, passphrase string) (domain.Clip, error) {
	log := slogx.FromContext(ctx)

	if content == "" || len(content) > MaxClipSize || !utf8.ValidString(content) {
		return domain.Clip{}, ErrInvalidClip
	}

	clip := domain.Clip{
		Content:   []byte(content),
		Protected: passphrase != "",
		UpdatedAt: s.now().UTC().Truncate(time.Second),
	}

	if clip.Protected {
		ciphertext, err := s.Vault.EncryptString(content, passphrase)
		if err != nil {
			log.Error("failed to encrypt clip", slog.Any("error", err))
			return domain.Clip{}, err
		}
		clip.Content = ciphertext
	}

	// Protected clips are addressed by their ciphertext so equal texts under
	// different passphrases do not share a code.
	clip.Code = ClipCode(clip.Content)

	var stored domain.Clip
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		stored, err = tx.Clips().UpsertClip(ctx, clip)
		return err
	})
	if err != nil {
		log.Error("failed to store clip", slog.Any("error", err))
		return domain.Clip{}, err
	}

	log.Info("clip stored",
		slog.Int("code", stored.Code),
		slog.Bool("protected", stored.Protected),
	)
	return stored, nil
}

// Get returns a readable clip. Protected clips return ErrPassphraseRequired
// and must go through Open.
func (s *ClipService) Get(ctx context.Context, code int) (domain.Clip, error) {
	clip, err := s.load(ctx, code)
	if err != nil {
		return domain.Clip{}, err
	}
	if clip.Protected {
		return domain.Clip{}, ErrPassphraseRequired
	}
	return clip, nil
}

// Open returns the text of the clip under code. Protected clips are
// decrypted with passphrase; every decryption failure is ErrDecryptionFailed.
func (s *ClipService) Open(ctx context.Context, code int, passphrase string) (domain.Clip, string, error) {
	clip, err := s.load(ctx, code)
	if err != nil {
		return domain.Clip{}, "", err
	}
	if !clip.Protected {
		return clip, string(clip.Content), nil
	}

	text, err := s.Vault.DecryptString(clip.Content, passphrase)
	if err != nil {
		slogx.FromContext(ctx).Info("clip open rejected", slog.Int("code", code))
		return domain.Clip{}, "", ErrDecryptionFailed
	}
	return clip, text, nil
}

func (s *ClipService) load(ctx context.Context, code int) (domain.Clip, error) {
	if !domain.ValidClipCode(code) {
		return domain.Clip{}, ErrInvalidClip
	}

	clip, err := s.Store.Clips().GetClip(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Clip{}, ErrClipNotFound
		}
		slogx.FromContext(ctx).Error("failed to fetch clip", slog.Any("error", err))
		return domain.Clip{}, err
	}
	return clip, nil
}

func (s *ClipService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
