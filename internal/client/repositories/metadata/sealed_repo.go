package metadata

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/cryptox"
)

const saltSize = 16

var ErrReservedKey = errors.New("reserved key")

// SealedRepository encrypts values before handing them to the wrapped
// repository. The key is derived from a secret and a random salt that is
// created on first use and kept in the wrapped store under
// common.SealedSaltKey; that key is not visible through this repository.
type SealedRepository struct {
	inner  Repository
	secret []byte

	mu  sync.Mutex
	key []byte
}

func NewSealedRepository(inner Repository, secret []byte) *SealedRepository {
	return &SealedRepository{inner: inner, secret: append([]byte{}, secret...)}
}

func (r *SealedRepository) cipherKey(ctx context.Context) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.key != nil {
		return r.key, nil
	}

	salt, err := r.inner.Get(ctx, common.SealedSaltKey)
	if err != nil {
		return nil, err
	}
	if salt == nil {
		salt = common.GenerateRandByteArray(saltSize)
		if err := r.inner.Set(ctx, common.SealedSaltKey, salt); err != nil {
			return nil, err
		}
	}

	r.key = cryptox.DeriveKey(r.secret, salt)
	return r.key, nil
}

func (r *SealedRepository) open(ctx context.Context, key string, blob []byte) ([]byte, error) {
	k, err := r.cipherKey(ctx)
	if err != nil {
		return nil, err
	}
	plain, err := cryptox.Open(k, blob)
	if err != nil {
		return nil, fmt.Errorf("open metadata[%s]: %w", key, common.ErrorCorruptedValue)
	}
	return plain, nil
}

func (r *SealedRepository) Get(ctx context.Context, key string) ([]byte, error) {
	if key == common.SealedSaltKey {
		return nil, ErrReservedKey
	}
	blob, err := r.inner.Get(ctx, key)
	if err != nil || blob == nil {
		return nil, err
	}
	return r.open(ctx, key, blob)
}

func (r *SealedRepository) Set(ctx context.Context, key string, value []byte) error {
	if key == common.SealedSaltKey {
		return ErrReservedKey
	}
	k, err := r.cipherKey(ctx)
	if err != nil {
		return err
	}
	blob, err := cryptox.Seal(k, value)
	if err != nil {
		return fmt.Errorf("seal metadata[%s]: %w", key, err)
	}
	return r.inner.Set(ctx, key, blob)
}

func (r *SealedRepository) Delete(ctx context.Context, key string) error {
	if key == common.SealedSaltKey {
		return ErrReservedKey
	}
	return r.inner.Delete(ctx, key)
}

func (r *SealedRepository) List(ctx context.Context) (map[string][]byte, error) {
	all, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	delete(all, common.SealedSaltKey)

	out := make(map[string][]byte, len(all))
	for key, blob := range all {
		plain, err := r.open(ctx, key, blob)
		if err != nil {
			return nil, err
		}
		out[key] = plain
	}
	return out, nil
}

// Clear drops every value together with the salt; the next write starts a
// fresh key.
func (r *SealedRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.inner.Clear(ctx); err != nil {
		return err
	}
	r.key = nil
	return nil
}
