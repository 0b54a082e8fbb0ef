// Package app wires the editor together: configuration, document,
// engine, input, rendering, and the main loop that ties them to a
// terminal backend.
package app

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/avray/skiff/internal/config"
	"github.com/avray/skiff/internal/engine/action"
	"github.com/avray/skiff/internal/engine/editor"
	"github.com/avray/skiff/internal/input/key"
	"github.com/avray/skiff/internal/input/keymap"
	"github.com/avray/skiff/internal/renderer"
	"github.com/avray/skiff/internal/renderer/backend"
	"github.com/avray/skiff/internal/renderer/gutter"
	"github.com/avray/skiff/internal/renderer/statusline"
	"github.com/avray/skiff/internal/script"
	"github.com/avray/skiff/internal/storage"
	"github.com/avray/skiff/internal/storage/watcher"
)

// Options configures application startup. Zero values defer to the
// configuration file, which defers to built-in defaults.
type Options struct {
	// Path is the file to edit. Empty opens an unnamed buffer.
	Path string

	// ConfigPath overrides the default config file location.
	ConfigPath string

	// RCPath overrides the default init.lua location.
	RCPath string

	// PageSize overrides the configured page size when positive.
	PageSize int

	// LogFile overrides the configured log file path.
	LogFile string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string
}

// App is one editing session: a single document, a single window.
// All state is owned by the main loop goroutine; nothing here is safe
// for concurrent use.
type App struct {
	opts    Options
	cfg     *config.Config
	logger  *Logger
	logFile *os.File
	session uuid.UUID

	doc   *storage.Document
	ed    *editor.Editor
	km    *keymap.Keymap
	lock  *storage.Lock
	watch *watcher.Watcher

	backend backend.Backend
	rend    *renderer.Renderer

	running atomic.Bool

	// autoPage tracks whether the page size follows the terminal height.
	// A page size pinned in config survives resizes unchanged.
	autoPage bool

	// quitPending is set after a quit was refused over unsaved changes.
	// A second quit with no intervening action discards and exits.
	quitPending bool

	// message is the transient status bar notice. It survives until the
	// next action replaces or clears it.
	message string
}

// New builds an application from options: configuration layered from
// defaults, file, rc script, and flags, then the document, keymap,
// lock, and watcher. The terminal is not touched until Run.
func New(opts Options) (*App, error) {
	a := &App{
		opts:    opts,
		session: uuid.New(),
		logger:  NullLogger,
	}

	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}
	a.cfg = cfg

	if err := a.initLogger(); err != nil {
		return nil, &InitError{Component: "log", Err: err}
	}

	a.runRC()
	a.applyFlagOverrides()

	// The rc script can set values the typed setters only type-check,
	// so ranges are validated once more after all layers are in.
	if err := cfg.Validate(); err != nil {
		a.closeLogFile()
		return nil, &InitError{Component: "config", Err: err}
	}

	doc, err := storage.Load(opts.Path)
	if err != nil {
		a.closeLogFile()
		return nil, &InitError{Component: "document", Err: err}
	}
	a.doc = doc

	a.km = keymap.NewDefault()
	for chord, name := range cfg.Keys {
		if err := a.km.Bind(chord, name); err != nil {
			a.logger.Warn("keymap: %v", err)
		}
	}

	if doc.Path != "" {
		a.acquireLock()
		a.startWatcher()
	}

	a.logger.Info("session started, file=%q", doc.Path)
	return a, nil
}

// initLogger opens the log file if one is configured. Without a file
// the logger stays null: stderr belongs to the terminal once the
// screen is initialized.
func (a *App) initLogger() error {
	path := a.opts.LogFile
	if path == "" {
		path = a.cfg.Log.File
	}
	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	a.logFile = f

	level := a.opts.LogLevel
	if level == "" {
		level = a.cfg.Log.Level
	}
	a.logger = NewLogger(LoggerConfig{
		Level:  ParseLogLevel(level),
		Output: f,
		Prefix: "skiff",
	}).WithField("session", shortID(a.session))
	return nil
}

// runRC executes the user's init.lua against the loaded configuration.
// Script failures are reported, not fatal: the editor starts with
// whatever configuration survived.
func (a *App) runRC() {
	rcPath := a.opts.RCPath
	if rcPath == "" {
		rcPath = config.DefaultRCPath()
	}

	r := script.New(a.cfg, func(msg string) {
		a.logger.Info("rc: %s", msg)
	})
	defer r.Close()

	if err := r.RunFile(rcPath); err != nil {
		a.logger.Warn("rc: %v", err)
		a.message = fmt.Sprintf("init.lua: %v", err)
	}
}

// applyFlagOverrides lays command line values over the configuration.
// Flags are the outermost layer and win over both file and rc script.
func (a *App) applyFlagOverrides() {
	if a.opts.PageSize > 0 {
		a.cfg.Editor.PageSize = a.opts.PageSize
	}
}

// acquireLock takes the advisory lock beside the document. A stale or
// concurrent holder is reported on the status bar but never blocks
// editing; the lock is a warning mechanism, not mutual exclusion.
func (a *App) acquireLock() {
	lock, prev, err := storage.AcquireLock(a.doc.Path, a.session)
	if err != nil {
		a.logger.Warn("lock: %v", err)
		return
	}
	a.lock = lock
	if prev != nil {
		a.logger.Warn("lock already held by %s", prev)
		a.message = fmt.Sprintf("Warning: already open by %s", prev)
	}
}

// startWatcher begins watching the document for external changes.
// A failed watcher degrades to no change detection.
func (a *App) startWatcher() {
	w, err := watcher.New(a.doc.Path)
	if err != nil {
		a.logger.Warn("watch: %v", err)
		return
	}
	a.watch = w
}

// Run takes over the terminal and blocks in the main loop until quit.
// It returns ErrQuit on a requested exit; the caller treats that as
// success. The terminal is restored on every return path, including
// panics, via the deferred backend shutdown.
func (a *App) Run(b backend.Backend) error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	if err := b.Init(); err != nil {
		a.cleanup()
		return &InitError{Component: "backend", Err: err}
	}
	a.backend = b
	defer a.cleanup()
	defer b.Shutdown()

	a.rend = renderer.New(b, renderer.Options{
		TabWidth: a.cfg.Editor.TabWidth,
		Gutter:   a.gutterConfig(),
	})

	pageSize := a.cfg.Editor.PageSize
	a.autoPage = pageSize == 0
	if a.autoPage {
		_, height := b.Size()
		pageSize = height - 2
		if pageSize < 1 {
			return &InitError{
				Component: "terminal",
				Err:       fmt.Errorf("%d rows is too small, need at least 3", height),
			}
		}
	}

	a.ed = editor.New(a.doc.Lines, pageSize, editor.WithLineEnding(a.doc.LineEnding))
	a.logger.Info("editing %s, lines=%d page=%d", a.displayName(), a.ed.LineCount(), pageSize)

	a.render()
	return a.loop()
}

// loop is the main loop: one blocking poll, one action, one watcher
// drain, one frame, until quit.
func (a *App) loop() error {
	for {
		ev := a.backend.PollEvent()
		switch ev.Type {
		case backend.EventKey:
			if err := a.handleKey(ev.Key); err != nil {
				return err
			}
		case backend.EventResize:
			a.handleResize(ev.Width, ev.Height)
		case backend.EventNone:
			// The screen is gone out from under the poll. Exit cleanly.
			return nil
		}

		a.checkExternal()
		a.render()
	}
}

// handleKey resolves one key event and applies the resulting action.
// Save and quit are intercepted here; everything else goes to the
// engine.
func (a *App) handleKey(kev key.Event) error {
	act := a.km.Resolve(kev)

	if act.Op == action.Quit {
		if a.ed.Modified() && !a.quitPending {
			a.quitPending = true
			a.message = "Unsaved changes: press quit again to discard"
			return nil
		}
		a.logger.Info("quit")
		return ErrQuit
	}
	// Anything but a second quit cancels a pending one.
	a.quitPending = false

	switch act.Op {
	case action.Save:
		a.save()
	case action.Ignore:
		// Unbound chord: swallow, keep the current notice.
	default:
		a.message = ""
		a.ed.Apply(act)
		if a.ed.Modified() {
			a.doc.MarkModified()
		}
	}
	return nil
}

// handleResize adjusts the renderer and, when the page size follows
// the terminal, the viewport. A window shrunk below the minimum mid
// session clamps to a one-line page rather than aborting.
func (a *App) handleResize(width, height int) {
	a.rend.Resize(width, height)
	if a.autoPage {
		a.ed.Resize(a.rend.TextRows())
	}
	a.logger.Debug("resize %dx%d", width, height)
}

// save writes the buffer through the document and reports the outcome
// on the status bar.
func (a *App) save() {
	if err := a.doc.Save(a.ed.Lines()); err != nil {
		a.logger.Error("save %s: %v", a.doc.Path, err)
		if errors.Is(err, storage.ErrNoPath) {
			a.message = "No file name"
		} else {
			a.message = fmt.Sprintf("Save failed: %v", err)
		}
		return
	}
	a.ed.MarkSaved()
	a.message = fmt.Sprintf("Wrote %d lines to %s", a.ed.LineCount(), a.displayName())
	a.logger.Info("wrote %s, lines=%d", a.doc.Path, a.ed.LineCount())
}

// checkExternal drains the watcher queue and raises a notice when the
// file on disk no longer matches what was loaded or last saved. Our
// own saves re-baseline the modification time first, so they pass
// through silently.
func (a *App) checkExternal() {
	if a.watch == nil {
		return
	}

	changed := false
	for {
		if _, ok := a.watch.Poll(); !ok {
			break
		}
		changed = true
	}

drain:
	for {
		select {
		case err, ok := <-a.watch.Errors():
			if !ok {
				break drain
			}
			a.logger.Warn("watch %s: %v", a.doc.Path, err)
		default:
			break drain
		}
	}

	if changed && a.doc.HasExternalChanges() {
		a.logger.Warn("changed on disk: %s", a.doc.Path)
		a.message = "File changed on disk"
	}
}

// render flushes the engine's dirty rows into one frame.
func (a *App) render() {
	pos := a.ed.Cursor().Position()
	a.rend.Render(a.ed, renderer.Frame{
		Updates:  a.ed.Flush(),
		FirstRow: a.ed.FirstVisibleRow(),
		ViewRows: a.ed.PageSize(),
		Cursor:   pos,
		Status: statusline.Status{
			Path:       a.doc.Name(),
			Modified:   a.ed.Modified(),
			Row:        pos.Row,
			Col:        pos.Col,
			LineCount:  a.ed.LineCount(),
			Encoding:   string(a.doc.Encoding),
			LineEnding: a.doc.LineEnding.String(),
			Message:    a.message,
		},
	})
}

// Close releases everything New acquired. Run calls it on every exit
// path; call it directly only when abandoning an app without running
// it.
func (a *App) Close() {
	a.cleanup()
}

// cleanup releases everything New and Run acquired, in reverse order.
// Safe to call more than once.
func (a *App) cleanup() {
	if a.watch != nil {
		a.watch.Close()
		a.watch = nil
	}
	if a.lock != nil {
		if err := a.lock.Release(); err != nil {
			a.logger.Warn("unlock: %v", err)
		}
		a.lock = nil
	}
	a.logger.Info("session ended")
	a.closeLogFile()
}

func (a *App) closeLogFile() {
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
}

func (a *App) gutterConfig() gutter.Config {
	gc := gutter.DefaultConfig()
	gc.Enabled = a.cfg.Gutter.ShowLineNumbers
	if a.cfg.Gutter.LineNumberWidth > 0 {
		gc.MinWidth = a.cfg.Gutter.LineNumberWidth
	}
	return gc
}

func (a *App) displayName() string {
	if name := a.doc.Name(); name != "" {
		return name
	}
	return "[No Name]"
}

// Config returns the layered configuration.
func (a *App) Config() *config.Config {
	return a.cfg
}

// Document returns the document being edited.
func (a *App) Document() *storage.Document {
	return a.doc
}

// Editor returns the buffer engine. Nil until Run.
func (a *App) Editor() *editor.Editor {
	return a.ed
}

// IsRunning returns true if the main loop is active.
func (a *App) IsRunning() bool {
	return a.running.Load()
}

// shortID returns the first uuid group, enough to correlate log lines
// and lock files by eye.
func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
