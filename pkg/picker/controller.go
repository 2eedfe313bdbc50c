// Package picker holds the application state and every user action on it.
//
// A Controller is not safe for concurrent use; callers drive it from a single
// event loop (the TUI's Update, or a CLI command).
package picker

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/pluqqy/tagpick/pkg/composer"
	"github.com/pluqqy/tagpick/pkg/importer"
	"github.com/pluqqy/tagpick/pkg/models"
	"github.com/pluqqy/tagpick/pkg/search"
	"github.com/pluqqy/tagpick/pkg/store"
)

// State is everything a session knows
type State struct {
	Catalog     *models.Catalog
	Engine      *search.Engine
	Prompt      *composer.Prompt
	Suggestions *search.Suggestions
	Input       string
	Prefs       models.Preferences
	Prompts     models.SavedPrompts
}

// Options configures a Controller. Only Store is required.
type Options struct {
	Store           store.Store
	Notifier        Notifier
	Clipboard       Clipboard
	Fetcher         *importer.Fetcher
	Logger          *zap.Logger
	Themes          []string // accepted theme names; empty accepts any
	RandomCount     int
	BackspaceWindow time.Duration
	Rand            *rand.Rand
}

// Controller owns the session state and mediates all changes to it
type Controller struct {
	state       State
	store       store.Store
	notifier    Notifier
	clipboard   Clipboard
	fetcher     *importer.Fetcher
	logger      *zap.Logger
	themes      []string
	randomCount int
	rng         *rand.Rand
	debouncer   *composer.BackspaceDebouncer
}

// New creates a controller with an empty catalog and default preferences.
// Call Restore to load the previous session.
func New(opts Options) *Controller {
	if opts.Store == nil {
		opts.Store = store.NewMemoryStore()
	}
	if opts.Notifier == nil {
		opts.Notifier = discardNotifier{}
	}
	if opts.Clipboard == nil {
		opts.Clipboard = SystemClipboard{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.RandomCount <= 0 {
		opts.RandomCount = composer.DefaultRandomCount
	}

	catalog := models.EmptyCatalog()
	engine := search.NewEngine(catalog)

	return &Controller{
		state: State{
			Catalog:     catalog,
			Engine:      engine,
			Prompt:      composer.NewPrompt(),
			Suggestions: search.NewSuggestions(engine),
			Prefs:       models.DefaultPreferences(),
			Prompts:     make(models.SavedPrompts),
		},
		store:       opts.Store,
		notifier:    opts.Notifier,
		clipboard:   opts.Clipboard,
		fetcher:     opts.Fetcher,
		logger:      opts.Logger,
		themes:      opts.Themes,
		randomCount: opts.RandomCount,
		rng:         opts.Rand,
		debouncer:   composer.NewBackspaceDebouncer(opts.BackspaceWindow),
	}
}

// Restore loads preferences, saved prompts and the last catalog from the store.
// Unreadable records are logged and skipped so a damaged store never blocks startup.
func (c *Controller) Restore() error {
	prefs, err := store.LoadPreferences(c.store)
	if err != nil {
		return c.fail(err)
	}
	c.state.Prefs = prefs

	prompts, err := store.LoadPrompts(c.store)
	if err != nil {
		c.logger.Warn("ignoring saved prompts", zap.Error(err))
	}
	c.state.Prompts = prompts

	catalog, ok, err := store.LoadCatalog(c.store)
	if err != nil {
		c.logger.Warn("ignoring stored catalog", zap.Error(err))
		return nil
	}
	if ok {
		c.replaceCatalog(catalog)
		c.logger.Debug("restored catalog",
			zap.String("format", string(catalog.Format())),
			zap.Int("tags", catalog.Len()))
	}
	return nil
}

// State returns the live session state. Callers must treat it as read-only.
func (c *Controller) State() *State {
	return &c.state
}

// Catalog returns the active catalog
func (c *Controller) Catalog() *models.Catalog {
	return c.state.Catalog
}

// Prompt returns the current prompt
func (c *Controller) Prompt() *composer.Prompt {
	return c.state.Prompt
}

// Suggestions returns the suggestion navigation state
func (c *Controller) Suggestions() *search.Suggestions {
	return c.state.Suggestions
}

// Input returns the text in the tag input
func (c *Controller) Input() string {
	return c.state.Input
}

// Preferences returns the current preferences
func (c *Controller) Preferences() models.Preferences {
	return c.state.Prefs
}

// Counters summarizes the current prompt
func (c *Controller) Counters() composer.Counters {
	return c.state.Prompt.Counters()
}

// replaceCatalog swaps in a new catalog and everything derived from it
func (c *Controller) replaceCatalog(catalog *models.Catalog) {
	c.state.Catalog = catalog
	c.state.Engine = search.NewEngine(catalog)
	c.state.Suggestions.SetEngine(c.state.Engine)
}

func (c *Controller) success(message string) {
	c.notifier.Notify(Notice{Kind: NoticeSuccess, Message: message})
}

// fail reports err to the user and returns it
func (c *Controller) fail(err error) error {
	c.notifier.Notify(Notice{Kind: NoticeError, Message: userMessage(err)})
	return err
}
