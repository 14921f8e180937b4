package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
	"github.com/dmitrijs2005/gophauth/internal/client/downloads"
	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/gophauth/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophauth/internal/client/screens"
	"github.com/dmitrijs2005/gophauth/internal/client/services"
	"github.com/dmitrijs2005/gophauth/internal/logging"
)

var errNotLoggedIn = errors.New("not logged in")

type App struct {
	log      logging.Logger
	login    *screens.LoginScreen
	register *screens.RegisterScreen
	home     *screens.HomeScreen
	gallery  services.GalleryService
	route    models.Route
	loggedIn bool
	reader   *bufio.Reader
	out      io.Writer
	closers  []io.Closer
}

// NewApp opens the configured store and builds the services behind the
// screens. The caller must call Close (Run does it on exit).
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(os.Stderr, c.LogLevel)

	store, closer, err := client.OpenStore(ctx, c.StorageDriver, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing store", "driver", c.StorageDriver, "error", err)
		return nil, err
	}
	if c.StoreSecret != "" {
		store = metadata.NewSealedRepository(store, []byte(c.StoreSecret))
	}

	var saver downloads.Saver
	if c.UseS3() {
		saver, err = downloads.NewS3Saver(ctx, downloads.S3Options{
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
			AccessKey:    c.S3AccessKey,
			SecretKey:    c.S3SecretKey,
		})
		if err != nil {
			_ = closer.Close()
			return nil, err
		}
	} else {
		saver = downloads.NewFileSaver(c.DownloadDir)
	}

	httpClient := &http.Client{Timeout: c.RequestTimeout}
	auth := services.NewAuthService(credentials.NewKVRepository(store), log)
	gallery := services.NewGalleryService(
		client.NewPicsumClient(c.GalleryEndpoint, httpClient),
		saver, httpClient, c.GalleryPageSize, log)

	a := newApp(auth, gallery, bufio.NewReader(os.Stdin), os.Stdout, log)
	a.closers = append(a.closers, closer)
	return a, nil
}

func newApp(auth services.AuthService, gallery services.GalleryService, reader *bufio.Reader, out io.Writer, log logging.Logger) *App {
	return &App{
		log:      log,
		login:    screens.NewLoginScreen(auth),
		register: screens.NewRegisterScreen(auth),
		home:     screens.NewHomeScreen(),
		gallery:  gallery,
		route:    models.RouteLogin,
		reader:   reader,
		out:      out,
	}
}

// Run shows the Login screen and serves commands until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to gophauth CLI (type 'help' for commands)")
	renderForm(a.out, "Login", a.login)
	runREPL(ctx, a, a.status, a.reader)
}

// Close stops background downloads and releases the store.
func (a *App) Close() {
	ctx := context.Background()
	a.gallery.Close()
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.log.Warn(ctx, "close failed", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

func (a *App) status() string {
	s := a.route.String()
	if a.gallery.Snapshot().Downloading {
		s += ", downloading"
	}
	return s
}

// navigate applies a route returned by a screen; RouteNone keeps the
// current one.
func (a *App) navigate(ctx context.Context, r models.Route) {
	if r == models.RouteNone || r == a.route {
		return
	}
	if r == models.RouteHome {
		a.loggedIn = true
	}
	a.log.Debug(ctx, "navigate", "from", a.route, "to", r)
	a.route = r
}
