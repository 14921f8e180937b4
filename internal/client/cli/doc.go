// Package cli provides the interactive gophauth command-line client.
//
// It wires configuration, the local credential store, the gallery client and
// an interactive REPL. The client starts on the Login screen; a successful
// login moves to Home, from where the photo gallery can be browsed and images
// downloaded.
//
// Key features:
//   - Login / Register against the single locally stored profile
//   - Gallery paging (gallery, more, refresh) and background downloads
//   - Screens rendered with their addressable regions (errorEmail, commonError, ...)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
