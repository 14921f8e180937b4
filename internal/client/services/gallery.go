package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/downloads"
	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/netx"
)

var ErrGalleryClosed = errors.New("gallery closed")

// GalleryState is a point-in-time copy of the gallery screen state.
type GalleryState struct {
	Photos        []models.Photo
	Page          int
	Status        models.FetchStatus
	Error         string
	Downloading   bool
	DownloadedURI string
}

// GalleryService drives the paginated photo list and image downloads.
//
// Contract:
//   - Fetch: load one page; page 1 replaces the list, later pages append.
//   - FetchMore / Refresh: next page / back to page 1.
//   - Download: fetch one image and hand it to the configured Saver.
//   - StartDownload: Download in the background.
//   - Close: cancel background downloads and wait for them.
type GalleryService interface {
	Fetch(ctx context.Context, page int) error
	FetchMore(ctx context.Context) error
	Refresh(ctx context.Context) error
	Download(ctx context.Context, imageURL string) (string, error)
	StartDownload(ctx context.Context, imageURL string) error
	Snapshot() GalleryState
	Close()
}

type galleryService struct {
	photos   client.PhotoClient
	saver    downloads.Saver
	http     *http.Client
	pageSize int
	log      logging.Logger

	mu       sync.Mutex
	state    GalleryState
	inflight int

	bgCtx    context.Context
	bgCancel context.CancelFunc
	wg       sync.WaitGroup
	closed   bool
}

// NewGalleryService wires the list client and the download sink. httpClient
// is used for image bodies; nil means http.DefaultClient.
func NewGalleryService(photos client.PhotoClient, saver downloads.Saver, httpClient *http.Client, pageSize int, log logging.Logger) GalleryService {
	ctx, cancel := context.WithCancel(context.Background())
	return &galleryService{
		photos:   photos,
		saver:    saver,
		http:     httpClient,
		pageSize: pageSize,
		log:      log.With("component", "gallery"),
		state:    GalleryState{Page: 1, Status: models.FetchInitial},
		bgCtx:    ctx,
		bgCancel: cancel,
	}
}

func (g *galleryService) Fetch(ctx context.Context, page int) error {
	g.mu.Lock()
	g.state.Page = page
	g.state.Status = models.FetchLoading
	g.mu.Unlock()

	list, err := g.photos.ListPhotos(ctx, page, g.pageSize)

	g.mu.Lock()
	defer g.mu.Unlock()

	if err != nil {
		g.state.Status = models.FetchFail
		g.state.Error = err.Error()
		g.log.Error(ctx, "photo list failed", "page", page, "error", err)
		return err
	}

	if page <= 1 {
		g.state.Photos = list
	} else {
		g.state.Photos = append(g.state.Photos, list...)
	}
	g.state.Status = models.FetchSuccess
	g.state.Error = ""
	g.log.Debug(ctx, "photo page loaded", "page", page, "count", len(list))
	return nil
}

func (g *galleryService) FetchMore(ctx context.Context) error {
	g.mu.Lock()
	next := g.state.Page + 1
	g.mu.Unlock()
	return g.Fetch(ctx, next)
}

func (g *galleryService) Refresh(ctx context.Context) error {
	return g.Fetch(ctx, 1)
}

// fileName returns the last path segment of imageURL.
func fileName(imageURL string) (string, error) {
	u, err := url.Parse(imageURL)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", imageURL, err)
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" {
		return "", fmt.Errorf("%q: %w", imageURL, downloads.ErrInvalidName)
	}
	return name, nil
}

func (g *galleryService) trackDownload(delta int) {
	g.mu.Lock()
	g.inflight += delta
	g.state.Downloading = g.inflight > 0
	g.mu.Unlock()
}

func (g *galleryService) Download(ctx context.Context, imageURL string) (string, error) {
	name, err := fileName(imageURL)
	if err != nil {
		return "", err
	}

	g.trackDownload(1)
	defer g.trackDownload(-1)

	body, err := netx.Download(ctx, g.http, imageURL)
	if err != nil {
		g.log.Error(ctx, "image download failed", "url", imageURL, "error", err)
		return "", err
	}

	loc, err := g.saver.Save(ctx, name, bytes.NewReader(body))
	if err != nil {
		g.log.Error(ctx, "image save failed", "name", name, "error", err)
		return "", err
	}

	g.mu.Lock()
	g.state.DownloadedURI = loc
	g.mu.Unlock()

	g.log.Info(ctx, "image downloaded", "location", loc)
	return loc, nil
}

func (g *galleryService) StartDownload(ctx context.Context, imageURL string) error {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return ErrGalleryClosed
	}
	g.wg.Add(1)
	g.mu.Unlock()

	// Stops on Close or when the caller's ctx is done.
	dctx, cancel := context.WithCancel(g.bgCtx)
	stop := context.AfterFunc(ctx, cancel)

	go func() {
		defer g.wg.Done()
		defer cancel()
		defer stop()
		_, _ = g.Download(dctx, imageURL)
	}()
	return nil
}

func (g *galleryService) Snapshot() GalleryState {
	g.mu.Lock()
	defer g.mu.Unlock()
	s := g.state
	s.Photos = append([]models.Photo(nil), g.state.Photos...)
	return s
}

func (g *galleryService) Close() {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()

	g.bgCancel()
	g.wg.Wait()
}
