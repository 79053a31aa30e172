// internal/server/server.go
package server

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"shareloom/internal/catalog"
	"shareloom/internal/config"
	"shareloom/internal/locale"
)

// App holds the pieces shared by every panel connection: the loaded
// catalog and locale table, swapped wholesale when their source files
// change on disk.
type App struct {
	cfg config.PanelConfig
	log *zap.Logger

	mu  sync.RWMutex
	cat *catalog.Catalog
	loc *locale.Table
}

func newApp(cfg config.PanelConfig, logger *zap.Logger) *App {
	app := &App{cfg: cfg, log: logger}
	app.reload()
	return app
}

// reload re-reads the catalog and locale files. A broken catalog
// degrades to an empty one; the panel stays usable either way.
func (a *App) reload() {
	cat, err := catalog.LoadFile(a.cfg.CatalogFile)
	if err != nil {
		var perr *catalog.ParseError
		if errors.As(err, &perr) {
			a.log.Warn("catalog unreadable, continuing with empty catalog",
				zap.String("path", a.cfg.CatalogFile),
				zap.Error(err),
			)
		} else {
			a.log.Warn("catalog load failed", zap.Error(err))
		}
		cat = catalog.Empty()
	}
	loc := locale.LoadDir(a.cfg.LocaleDir, a.cfg.Language)

	a.mu.Lock()
	a.cat = cat
	a.loc = loc
	a.mu.Unlock()
	a.log.Info("content loaded",
		zap.Int("stories", cat.Len()),
		zap.String("language", a.cfg.Language),
	)
}

// snapshot returns the current catalog and locale table. Both are
// immutable once loaded, so holding them past the call is safe.
func (a *App) snapshot() (*catalog.Catalog, *locale.Table) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cat, a.loc
}

// Server hosts the share panel page and its websocket event bridge.
type Server struct {
	app *App
	hub *Hub
	log *zap.Logger
}

// New loads the panel content and prepares a server. Content problems
// are not fatal; only a later listen failure is.
func New(cfg config.PanelConfig, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		app: newApp(cfg, logger),
		hub: newHub(logger),
		log: logger,
	}
}

// Handler returns the HTTP surface: the panel page at / and the event
// bridge at /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWs(s.hub, s.app, w, r)
	})
	mux.HandleFunc("/", s.servePanel)
	return mux
}

// Run watches the catalog and locale files for changes and serves the
// panel until the listener fails.
func (s *Server) Run(port int) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the catalog file's parent directory rather than the file
	// itself; editors that save via rename would otherwise drop the
	// watch.
	watchedDirs := make(map[string]bool)
	addWatch := func(dir string) {
		dir = filepath.Clean(dir)
		if watchedDirs[dir] {
			return
		}
		if err := watcher.Add(dir); err != nil {
			s.log.Warn("could not watch directory", zap.String("dir", dir), zap.Error(err))
			return
		}
		s.log.Info("watching directory", zap.String("dir", dir))
		watchedDirs[dir] = true
	}

	addWatch(filepath.Dir(s.app.cfg.CatalogFile))
	if info, err := os.Stat(s.app.cfg.LocaleDir); err == nil && info.IsDir() {
		addWatch(s.app.cfg.LocaleDir)
	}

	go watchForChanges(watcher, s.hub, s.app)

	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("Serving share panel on http://localhost%s\n", addr)
	fmt.Println("Press Ctrl+C to stop")
	return http.ListenAndServe(addr, s.Handler())
}

// watchForChanges reloads content and tells connected panels to reload
// themselves. Changes are debounced so one editor save does not fire a
// burst of reloads.
func watchForChanges(watcher *fsnotify.Watcher, hub *Hub, app *App) {
	var lastReload time.Time
	const debounceDuration = 500 * time.Millisecond

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				if time.Since(lastReload) > debounceDuration {
					time.Sleep(100 * time.Millisecond)

					app.log.Info("change detected, reloading content", zap.String("path", event.Name))
					app.reload()
					hub.broadcastReload()
					lastReload = time.Now()
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			app.log.Warn("watcher error", zap.Error(err))
		}
	}
}
