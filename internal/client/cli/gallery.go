package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
)

func (a *App) openGallery(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in first")
		return errNotLoggedIn
	}
	a.navigate(ctx, models.RouteGallery)
	return nil
}

// Gallery shows the photo list, loading the first page on first visit.
func (a *App) Gallery(ctx context.Context) error {
	if err := a.openGallery(ctx); err != nil {
		return err
	}

	var err error
	if a.gallery.Snapshot().Status == models.FetchInitial {
		err = a.gallery.Fetch(ctx, 1)
	}
	renderGallery(a.out, a.gallery.Snapshot())
	return err
}

// More appends the next page.
func (a *App) More(ctx context.Context) error {
	if err := a.openGallery(ctx); err != nil {
		return err
	}
	err := a.gallery.FetchMore(ctx)
	renderGallery(a.out, a.gallery.Snapshot())
	return err
}

// Refresh reloads the list from page 1.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.openGallery(ctx); err != nil {
		return err
	}
	err := a.gallery.Refresh(ctx)
	renderGallery(a.out, a.gallery.Snapshot())
	return err
}

// Download starts a background download of photo n (1-based, as listed).
func (a *App) Download(ctx context.Context, n int) error {
	if err := a.openGallery(ctx); err != nil {
		return err
	}

	photos := a.gallery.Snapshot().Photos
	if n < 1 || n > len(photos) {
		printlnFn(fmt.Sprintf("No photo #%d (have %d)", n, len(photos)))
		return fmt.Errorf("photo %d out of range", n)
	}

	p := photos[n-1]
	if err := a.gallery.StartDownload(ctx, p.DownloadURL); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Downloading photo by %s...", p.Author))
	return nil
}
