// Package tui is the interactive terminal front end of tagpick.
package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/pluqqy/tagpick/pkg/importer"
	"github.com/pluqqy/tagpick/pkg/picker"
)

type focusArea int

const (
	focusSearch focusArea = iota
	focusBrowser
	focusPrompt
	focusSaved
	focusCount
)

type inputMode int

const (
	modeNormal inputMode = iota
	modeSaveName
	modeAccent
	modeImport
)

// Options configures the App
type Options struct {
	DefaultSource   importer.Source
	DanbooruSource  importer.Source
	RenderBatchSize int
	SuggestionRows  int
	StartDir        string // where the import picker opens; empty is the working directory
	AutoLoad        bool   // load the default tags when the catalog is empty
	Logger          *zap.Logger
}

// App is the root bubbletea model
type App struct {
	ctrl    *picker.Controller
	notices *NoticeBuffer
	opts    Options
	logger  *zap.Logger

	styles  Styles
	search  *SearchBar
	browser *Browser
	prompt  *PromptPane
	saved   *SavedPane
	status  *StatusManager
	confirm *ConfirmationModel
	files   *ImportPicker
	spinner spinner.Model
	dialog  textinput.Model

	focus   focusArea
	mode    inputMode
	pending int // imports in flight
	width   int
	height  int
}

// NewApp creates the app over a restored controller. notices must be the
// notifier the controller was created with.
func NewApp(ctrl *picker.Controller, notices *NoticeBuffer, opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.StartDir == "" {
		opts.StartDir, _ = os.Getwd()
	}
	if notices == nil {
		notices = NewNoticeBuffer()
	}

	prefs := ctrl.Preferences()
	theme, _ := LookupTheme(prefs.Theme)
	styles := NewStyles(theme, prefs.Accent)

	s := spinner.New()
	s.Spinner = spinner.Dot

	dialog := textinput.New()
	dialog.CharLimit = 100

	a := &App{
		ctrl:    ctrl,
		notices: notices,
		opts:    opts,
		logger:  opts.Logger,
		styles:  styles,
		search:  NewSearchBar(opts.SuggestionRows),
		browser: NewBrowser(opts.RenderBatchSize, styles),
		prompt:  NewPromptPane(),
		saved:   NewSavedPane(),
		status:  NewStatusManager(),
		confirm: NewConfirmation(),
		files:   NewImportPicker(),
		spinner: s,
		dialog:  dialog,
	}

	a.setFocus(focusSearch)
	a.syncPanes()
	return a
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink,
		a.browser.Load(a.ctrl.Catalog(), a.ctrl.DescriptionsVisible()),
	}
	if a.opts.AutoLoad && a.ctrl.Catalog().IsEmpty() {
		cmds = append(cmds, a.startFetch(a.opts.DefaultSource))
	}
	return tea.Batch(cmds...)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ctrl.Dismiss()
		cmds = append(cmds, a.layout())

	case renderBatchMsg:
		cmds = append(cmds, a.browser.handleBatch(msg))

	case importDoneMsg:
		cmds = append(cmds, a.finishImport(msg))

	case clearStatusMsg:
		a.status.handleClear(msg)

	case spinner.TickMsg:
		if a.pending > 0 {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.FocusMsg:
		if a.focus == focusSearch {
			a.ctrl.Focus()
		}

	case tea.BlurMsg:
		a.ctrl.Dismiss()

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress &&
			(msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown) {
			a.ctrl.Dismiss()
			cmds = append(cmds, a.browser.Scroll(msg))
		}

	case tea.KeyMsg:
		cmds = append(cmds, a.handleKey(msg))

	default:
		// the file picker reads directories asynchronously
		if a.mode == modeImport {
			cmds = append(cmds, a.updateImportPicker(msg))
		}
	}

	a.syncPanes()
	cmds = append(cmds, a.flushNotices())
	return a, tea.Batch(cmds...)
}

// syncPanes copies controller state into the widgets that mirror it
func (a *App) syncPanes() {
	a.prompt.SetText(a.ctrl.Prompt().Text())
	a.saved.SetNames(a.ctrl.SavedPromptNames())
}

// flushNotices shows the latest notice raised by the controller
func (a *App) flushNotices() tea.Cmd {
	notices := a.notices.Drain()
	if len(notices) == 0 {
		return nil
	}

	latest := notices[len(notices)-1]
	if latest.IsError() {
		a.logger.Debug("error notice", zap.String("message", latest.Message))
	}
	return a.status.Show(latest)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if a.confirm.Active() {
		return a.confirm.Update(msg)
	}

	switch a.mode {
	case modeSaveName, modeAccent:
		return a.handleDialogKey(msg)
	case modeImport:
		return a.handleImportKey(msg)
	}

	key := msg.String()
	switch {
	case Shortcuts.Quit.Matches(key):
		return tea.Quit
	case Shortcuts.Random.Matches(key):
		a.ctrl.AddRandomTags()
		return nil
	case Shortcuts.Save.Matches(key):
		return a.openDialog(modeSaveName)
	case Shortcuts.Accent.Matches(key):
		return a.openDialog(modeAccent)
	case Shortcuts.Copy.Matches(key):
		a.ctrl.CopyPrompt()
		return nil
	case Shortcuts.Import.Matches(key):
		return a.openImport()
	case Shortcuts.DefaultTags.Matches(key):
		return a.startFetch(a.opts.DefaultSource)
	case Shortcuts.DanbooruTags.Matches(key):
		return a.startFetch(a.opts.DanbooruSource)
	case Shortcuts.Theme.Matches(key):
		if err := a.ctrl.SetTheme(nextTheme(a.ctrl.Preferences().Theme)); err != nil {
			return nil
		}
		return a.applyTheme()
	case Shortcuts.Descriptions.Matches(key):
		a.ctrl.SetShowDescriptions(!a.ctrl.Preferences().ShowDescriptions)
		return a.browser.SetShowDescriptions(a.ctrl.DescriptionsVisible())
	case Shortcuts.Clear.Matches(key):
		a.confirmClear()
		return nil
	case key == "tab":
		if a.focus == focusSearch && a.ctrl.Complete() {
			a.search.SetValue(a.ctrl.Input())
			return nil
		}
		return a.cycleFocus(1)
	case key == "shift+tab":
		return a.cycleFocus(-1)
	}

	switch a.focus {
	case focusSearch:
		return a.handleSearchKey(msg)
	case focusBrowser:
		return a.handleBrowserKey(msg)
	case focusPrompt:
		return a.handlePromptKey(msg)
	case focusSaved:
		return a.handleSavedKey(msg)
	}
	return nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyUp:
		a.ctrl.Prev()
		return nil
	case tea.KeyDown:
		a.ctrl.Next()
		return nil
	case tea.KeyEnter:
		a.ctrl.Submit()
		a.search.SetValue(a.ctrl.Input())
		return nil
	case tea.KeyEsc:
		a.ctrl.Dismiss()
		return nil
	case tea.KeyBackspace:
		if a.search.Value() == "" {
			a.ctrl.Backspace()
			return nil
		}
	}

	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	if value := a.search.Value(); value != a.ctrl.Input() {
		a.ctrl.Search(value)
	}
	return cmd
}

func (a *App) handleBrowserKey(msg tea.KeyMsg) tea.Cmd {
	page := max(a.browser.viewport.Height-1, 1)

	switch msg.String() {
	case "up", "k":
		a.browser.MoveCursor(-1)
	case "down", "j":
		a.browser.MoveCursor(1)
	case "pgup":
		a.browser.MoveCursor(-page)
	case "pgdown":
		a.browser.MoveCursor(page)
	case "home", "g":
		a.browser.MoveCursor(-len(a.browser.blocks))
	case "end", "G":
		a.browser.MoveCursor(len(a.browser.blocks))
	case "/", "esc":
		return a.setFocus(focusSearch)
	case "enter", " ":
		item, ok := a.browser.Selected()
		if !ok {
			return nil
		}
		if item.header {
			return a.browser.ToggleCategory(item.category)
		}
		a.ctrl.AddTag(item.entry.Tag)
	}
	return nil
}

func (a *App) handlePromptKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyEsc {
		return a.setFocus(focusSearch)
	}

	var cmd tea.Cmd
	a.prompt, cmd = a.prompt.Update(msg)
	if value := a.prompt.Value(); value != a.ctrl.Prompt().Text() {
		a.ctrl.SetPromptText(value)
	}
	return cmd
}

func (a *App) handleSavedKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		a.saved.MoveCursor(-1)
	case "down", "j":
		a.saved.MoveCursor(1)
	case "esc", "/":
		return a.setFocus(focusSearch)
	case "enter":
		if name, ok := a.saved.Selected(); ok {
			a.ctrl.LoadPrompt(name)
		}
	case "c", "y":
		if name, ok := a.saved.Selected(); ok {
			a.ctrl.CopySavedPrompt(name)
		}
	case "d", "delete":
		if name, ok := a.saved.Selected(); ok {
			a.confirm.ShowInline("Delete saved prompt \""+name+"\"?", true, func() tea.Cmd {
				a.ctrl.DeletePrompt(name)
				a.syncPanes()
				return a.flushNotices()
			}, nil)
		}
	}
	return nil
}

func (a *App) confirmClear() {
	if a.ctrl.Prompt().IsEmpty() {
		return
	}
	a.confirm.ShowInline("Clear the prompt?", true, func() tea.Cmd {
		a.ctrl.ClearPrompt()
		a.syncPanes()
		return a.flushNotices()
	}, nil)
}

func (a *App) openDialog(mode inputMode) tea.Cmd {
	a.mode = mode
	a.ctrl.Dismiss()
	a.dialog.SetValue("")

	switch mode {
	case modeSaveName:
		a.dialog.Prompt = "Save prompt as: "
		a.dialog.Placeholder = "name"
	case modeAccent:
		a.dialog.Prompt = "Accent color: "
		a.dialog.Placeholder = "#rrggbb, empty to reset"
		a.dialog.SetValue(a.ctrl.Preferences().Accent)
		a.dialog.CursorEnd()
	}
	return a.dialog.Focus()
}

func (a *App) closeDialog() {
	a.mode = modeNormal
	a.dialog.Blur()
}

func (a *App) handleDialogKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		a.closeDialog()
		return nil

	case tea.KeyEnter:
		value := a.dialog.Value()
		if a.mode == modeSaveName {
			if err := a.ctrl.SavePrompt(value); err != nil {
				return nil
			}
			a.closeDialog()
			return nil
		}

		if err := a.ctrl.SetAccent(value); err != nil {
			return nil
		}
		a.closeDialog()
		return a.applyTheme()
	}

	var cmd tea.Cmd
	a.dialog, cmd = a.dialog.Update(msg)
	return cmd
}

func (a *App) openImport() tea.Cmd {
	a.mode = modeImport
	a.ctrl.Dismiss()
	return a.files.Open(a.opts.StartDir)
}

func (a *App) handleImportKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q":
		a.files.Close()
		a.mode = modeNormal
		return nil
	case "ctrl+c":
		return tea.Quit
	}
	return a.updateImportPicker(msg)
}

func (a *App) updateImportPicker(msg tea.Msg) tea.Cmd {
	path, selected, cmd := a.files.Update(msg)
	if !selected {
		return cmd
	}

	a.mode = modeNormal
	a.pending++
	a.logger.Debug("import started", zap.String("path", path))
	return tea.Batch(cmd, importFileCmd(path), a.spinner.Tick)
}

// startFetch loads a bundled catalog in the background. Imports are not
// gated; whichever finishes last wins.
func (a *App) startFetch(src importer.Source) tea.Cmd {
	if src.Name == "" {
		return nil
	}
	a.pending++
	a.logger.Debug("fetch started", zap.String("source", src.Name))
	return tea.Batch(fetchBundledCmd(a.ctrl, src), a.spinner.Tick)
}

func (a *App) finishImport(msg importDoneMsg) tea.Cmd {
	a.pending = max(a.pending-1, 0)

	if msg.err != nil {
		a.ctrl.ReportImportError(msg.err)
		return nil
	}

	before := a.ctrl.Catalog()
	a.ctrl.ApplyImport(msg.result)
	if a.ctrl.Catalog() == before {
		return nil
	}
	return a.browser.Load(a.ctrl.Catalog(), a.ctrl.DescriptionsVisible())
}

func (a *App) applyTheme() tea.Cmd {
	prefs := a.ctrl.Preferences()
	theme, _ := LookupTheme(prefs.Theme)
	a.styles = NewStyles(theme, prefs.Accent)
	return a.browser.SetStyles(a.styles)
}

func (a *App) cycleFocus(delta int) tea.Cmd {
	next := (int(a.focus) + delta + int(focusCount)) % int(focusCount)
	return a.setFocus(focusArea(next))
}

func (a *App) setFocus(focus focusArea) tea.Cmd {
	leaving := a.focus
	a.focus = focus

	if leaving == focusSearch && focus != focusSearch {
		a.ctrl.Dismiss()
	}
	if focus == focusSearch && leaving != focusSearch {
		a.ctrl.Focus()
	}

	a.search.SetActive(focus == focusSearch)
	a.browser.SetActive(focus == focusBrowser)
	a.saved.SetActive(focus == focusSaved)
	return a.prompt.SetActive(focus == focusPrompt)
}

// layout sizes every pane from the window size
func (a *App) layout() tea.Cmd {
	bodyHeight := a.bodyHeight()
	leftWidth := a.width * 55 / 100
	rightWidth := a.width - leftWidth
	promptHeight := bodyHeight / 2

	a.search.SetWidth(a.width)
	a.prompt.SetSize(rightWidth, promptHeight)
	a.saved.SetSize(rightWidth, bodyHeight-promptHeight)
	a.files.SetSize(a.width, bodyHeight)
	return a.browser.SetSize(leftWidth, bodyHeight)
}

// bodyHeight is what is left after the header, search bar, status and help lines
func (a *App) bodyHeight() int {
	return max(a.height-6, 4)
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	header := renderHeader(a.width, a.styles, a.ctrl.Catalog(), a.ctrl.Preferences().Theme)
	searchBar := a.search.View(a.styles)

	var body string
	if a.mode == modeImport {
		body = a.files.View(a.styles)
	} else {
		right := lipgloss.JoinVertical(lipgloss.Left,
			a.prompt.View(a.styles, a.ctrl.Counters()),
			a.saved.View(a.styles, func(name string) string {
				text, _ := a.ctrl.SavedPrompt(name)
				return text
			}),
		)
		body = lipgloss.JoinHorizontal(lipgloss.Top, a.browser.View(), right)

		if dropdown := a.search.SuggestionsView(a.ctrl.Suggestions(), a.ctrl.DescriptionsVisible(), a.styles); dropdown != "" {
			body = overlayTop(body, lipgloss.NewStyle().PaddingLeft(1).Render(dropdown))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, searchBar, body, a.statusLine(), a.helpLine())
}

func (a *App) statusLine() string {
	switch {
	case a.confirm.Active():
		return a.confirm.View(a.styles, a.width)
	case a.mode == modeSaveName || a.mode == modeAccent:
		return " " + a.dialog.View()
	case a.pending > 0:
		return " " + a.spinner.View() + a.styles.Muted.Render(" Loading tags...")
	}
	return " " + a.status.View(a.styles)
}

func (a *App) helpLine() string {
	var help string
	switch a.focus {
	case focusSearch:
		help = "enter add · tab complete/next pane · ↑/↓ suggestions · backspace remove last"
	case focusBrowser:
		help = "↑/↓ move · enter add tag or fold category · / search"
	case focusPrompt:
		help = "type to edit the prompt · esc back to search"
	case focusSaved:
		help = "enter load · c copy · d delete"
	}
	help += " · " + shortcutHelp(GetOS())
	return a.styles.Help.Render(" " + help)
}

// overlayTop draws overlay over the first lines of base
func overlayTop(base, overlay string) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")
	for i, line := range overlayLines {
		if i >= len(baseLines) {
			break
		}
		baseLines[i] = line
	}
	return strings.Join(baseLines, "\n")
}
