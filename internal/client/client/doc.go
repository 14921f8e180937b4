// Package client contains the client-side plumbing of gophauth.
//
// # Overview
//
// The package provides:
//  1. Local persistence bootstrap (OpenStore, RunMigrations): opens the
//     configured SQLite or PostgreSQL database, applies the embedded goose
//     migrations for its dialect and hands back a metadata.Repository. The
//     "memory" driver skips the database entirely.
//  2. A photo listing client (PhotoClient, PicsumClient) for the gallery
//     screen, speaking the picsum.photos v2 list API.
//
// # Error Handling
//
// Conditions callers branch on are sentinel errors matched with errors.Is:
// ErrUnavailable, ErrUnsupportedDriver, ErrGalleryUnavailable.
//
// All operations accept context.Context and honor cancellation.
package client
