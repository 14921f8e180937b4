package credentials

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
)

// Repository reads and replaces the stored credential record.
type Repository interface {
	// Get returns the stored record or common.ErrorNotFound.
	Get(ctx context.Context) (*models.Credential, error)

	// Put replaces the stored record.
	Put(ctx context.Context, c *models.Credential) error
}
