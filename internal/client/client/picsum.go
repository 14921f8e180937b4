package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/netx"
)

// PhotoClient lists gallery photos page by page (pages start at 1).
type PhotoClient interface {
	ListPhotos(ctx context.Context, page, limit int) ([]models.Photo, error)
}

// PicsumClient talks to the picsum.photos list API.
type PicsumClient struct {
	endpoint string
	http     *http.Client
}

func NewPicsumClient(endpoint string, httpClient *http.Client) *PicsumClient {
	return &PicsumClient{endpoint: strings.TrimRight(endpoint, "/"), http: httpClient}
}

func (c *PicsumClient) listURL(page, limit int) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return c.endpoint + "/v2/list?" + q.Encode()
}

func (c *PicsumClient) ListPhotos(ctx context.Context, page, limit int) ([]models.Photo, error) {
	var photos []models.Photo
	if err := netx.GetJSON(ctx, c.http, c.listURL(page, limit), &photos); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGalleryUnavailable, err)
	}
	return photos, nil
}
