package credentials

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophauth/internal/common"
)

// KVRepository keeps the record as JSON in a metadata store.
type KVRepository struct {
	store metadata.Repository
}

func NewKVRepository(store metadata.Repository) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) Get(ctx context.Context) (*models.Credential, error) {
	raw, err := r.store.Get(ctx, common.UserDataKey)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", common.UserDataKey, err)
	}
	if len(raw) == 0 {
		return nil, common.ErrorNotFound
	}

	var c models.Credential
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode %s: %w", common.UserDataKey, common.ErrorCorruptedValue)
	}
	return &c, nil
}

func (r *KVRepository) Put(ctx context.Context, c *models.Credential) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode %s: %w", common.UserDataKey, err)
	}
	if err := r.store.Set(ctx, common.UserDataKey, raw); err != nil {
		return fmt.Errorf("write %s: %w", common.UserDataKey, err)
	}
	return nil
}
