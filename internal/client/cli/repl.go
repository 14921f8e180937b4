package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Home(ctx context.Context) error
	Gallery(ctx context.Context) error
	More(ctx context.Context) error
	Refresh(ctx context.Context) error
	Download(ctx context.Context, n int) error
}

// runREPL starts a simple read–eval–print loop for the gophauth CLI.
//
// It reads a line from in, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
// Command prompts read from the same reader, so piped input stays in order.
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           show available commands
//	  - login          open the Login screen and sign in
//	  - register       open the Register screen and create the profile
//	  - exit | quit    leave the program
//
//	Logged in, additionally:
//	  - home           show the Home screen
//	  - gallery        show the photo gallery
//	  - more           load the next gallery page
//	  - refresh        reload the gallery from page 1
//	  - download <n>   download photo n in the background
//
// Any errors returned by command handlers are ignored here; handlers print
// or log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("gauth %s> ", statusFn()))
		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: login, register, home, gallery, more, refresh, download <n>, exit")
			} else {
				printlnFn("Available commands: login, register, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "home":
			_ = a.Home(ctx)

		case "gallery":
			_ = a.Gallery(ctx)

		case "more":
			_ = a.More(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "download":
			if len(parts) < 2 {
				printlnFn("Usage: download <n>")
				continue
			}
			n, err := strconv.Atoi(parts[1])
			if err != nil {
				printlnFn("Usage: download <n>")
				continue
			}
			_ = a.Download(ctx, n)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
