package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/tagpick/pkg/models"
)

// DefaultRenderBatchSize is how many browser rows are rendered per batch
const DefaultRenderBatchSize = 100

// browserItem is one row of the category browser: a category header or a tag
type browserItem struct {
	header    bool
	collapsed bool
	category  string
	count     int
	entry     models.TagEntry
}

// renderBatchMsg carries rendered rows for one batch of a browser generation
type renderBatchMsg struct {
	generation int
	start      int
	blocks     []string
}

type renderOptions struct {
	width    int
	showDesc bool
	styles   Styles
}

// Browser shows the catalog grouped by category. Large catalogs are rendered
// in batches across event loop turns; each reload starts a new generation and
// batches from older generations are dropped. Rendered lines accumulate in
// lines and the viewport only ever holds the visible window, so a batch costs
// the same however much has been rendered before it.
type Browser struct {
	viewport   viewport.Model
	catalog    *models.Catalog
	collapsed  map[string]bool
	items      []browserItem
	blocks     []string
	lines      []string
	offsets    []int // first line of each rendered block
	top        int   // first visible line
	generation int
	batchSize  int
	cursor     int
	showDesc   bool
	styles     Styles
	width      int
	height     int
	isActive   bool
}

// NewBrowser creates an empty browser
func NewBrowser(batchSize int, styles Styles) *Browser {
	if batchSize <= 0 {
		batchSize = DefaultRenderBatchSize
	}
	return &Browser{
		viewport:  viewport.New(40, 10),
		catalog:   models.EmptyCatalog(),
		collapsed: make(map[string]bool),
		batchSize: batchSize,
		styles:    styles,
	}
}

// Load shows a new catalog, expanding every category
func (b *Browser) Load(catalog *models.Catalog, showDesc bool) tea.Cmd {
	if catalog == nil {
		catalog = models.EmptyCatalog()
	}
	b.catalog = catalog
	b.showDesc = showDesc
	b.collapsed = make(map[string]bool)
	b.cursor = 0
	b.top = 0
	return b.rebuild()
}

// SetShowDescriptions re-renders with or without descriptions
func (b *Browser) SetShowDescriptions(show bool) tea.Cmd {
	if b.showDesc == show {
		return nil
	}
	b.showDesc = show
	return b.rebuild()
}

// SetStyles re-renders with new styles
func (b *Browser) SetStyles(styles Styles) tea.Cmd {
	b.styles = styles
	return b.rebuild()
}

// SetSize sets the outer size of the browser pane
func (b *Browser) SetSize(width, height int) tea.Cmd {
	changed := width != b.width
	b.width = width
	b.height = height
	b.viewport.Width = max(width-4, 10)
	b.viewport.Height = max(height-3, 1)
	if changed {
		// descriptions wrap to the width
		return b.rebuild()
	}
	b.refresh()
	return nil
}

// SetActive sets whether the browser is the focused pane
func (b *Browser) SetActive(active bool) {
	b.isActive = active
	b.refresh()
}

func (b *Browser) rebuild() tea.Cmd {
	b.generation++
	b.items = buildItems(b.catalog, b.collapsed)
	b.blocks = make([]string, 0, len(b.items))
	b.lines = nil
	b.offsets = make([]int, 0, len(b.items))
	if b.cursor >= len(b.items) {
		b.cursor = max(len(b.items)-1, 0)
	}
	b.refresh()
	return b.renderBatch(0)
}

func (b *Browser) options() renderOptions {
	return renderOptions{width: b.viewport.Width, showDesc: b.showDesc, styles: b.styles}
}

// renderBatch renders items[start:start+batchSize] off the event loop
func (b *Browser) renderBatch(start int) tea.Cmd {
	if start >= len(b.items) {
		return nil
	}

	generation := b.generation
	end := min(start+b.batchSize, len(b.items))
	items := b.items[start:end]
	opts := b.options()

	return func() tea.Msg {
		return renderBatchMsg{
			generation: generation,
			start:      start,
			blocks:     renderItems(items, opts),
		}
	}
}

// handleBatch appends a rendered batch and schedules the next one
func (b *Browser) handleBatch(msg renderBatchMsg) tea.Cmd {
	if msg.generation != b.generation || msg.start != len(b.blocks) {
		return nil
	}

	b.blocks = append(b.blocks, msg.blocks...)
	for _, block := range msg.blocks {
		b.offsets = append(b.offsets, len(b.lines))
		b.lines = append(b.lines, strings.Split(block, "\n")...)
	}
	b.refresh()
	return b.renderBatch(len(b.blocks))
}

// Rendering reports whether batches are still outstanding
func (b *Browser) Rendering() bool {
	return len(b.blocks) < len(b.items)
}

// Content returns everything rendered so far, without the cursor
func (b *Browser) Content() string {
	return strings.Join(b.lines, "\n")
}

// refresh scrolls the cursor into view and redraws the visible window
func (b *Browser) refresh() {
	if len(b.items) == 0 {
		b.viewport.SetContent(b.styles.Muted.Render(emptyCatalogHint))
		return
	}
	b.scrollToCursor()
	b.drawWindow()
}

// drawWindow hands the viewport the visible lines only, with the cursor row
// highlighted
func (b *Browser) drawWindow() {
	height := b.viewport.Height
	b.top = min(max(b.top, 0), max(len(b.lines)-height, 0))
	end := min(b.top+height, len(b.lines))

	window := make([]string, end-b.top)
	copy(window, b.lines[b.top:end])

	if b.isActive && b.cursor < len(b.offsets) {
		highlighted := strings.Split(renderItem(b.items[b.cursor], b.options(), true), "\n")
		for i, line := range highlighted {
			if row := b.offsets[b.cursor] + i - b.top; row >= 0 && row < len(window) {
				window[row] = line
			}
		}
	}

	b.viewport.SetContent(strings.Join(window, "\n"))
	b.viewport.GotoTop()
}

func (b *Browser) scrollToCursor() {
	if b.cursor >= len(b.offsets) {
		return
	}
	top := b.offsets[b.cursor]
	bottom := len(b.lines)
	if b.cursor+1 < len(b.offsets) {
		bottom = b.offsets[b.cursor+1]
	}

	switch {
	case top < b.top:
		b.top = top
	case bottom > b.top+b.viewport.Height:
		b.top = bottom - b.viewport.Height
	}
}

// MoveCursor moves the cursor by delta rows, clamped to the rendered rows
func (b *Browser) MoveCursor(delta int) {
	if len(b.blocks) == 0 {
		return
	}
	b.cursor = min(max(b.cursor+delta, 0), len(b.blocks)-1)
	b.refresh()
}

// Selected returns the row under the cursor
func (b *Browser) Selected() (browserItem, bool) {
	if b.cursor < 0 || b.cursor >= len(b.items) {
		return browserItem{}, false
	}
	return b.items[b.cursor], true
}

// ToggleCategory collapses or expands a category, keeping the cursor on its header
func (b *Browser) ToggleCategory(name string) tea.Cmd {
	b.collapsed[name] = !b.collapsed[name]

	cmd := b.rebuild()
	for i, item := range b.items {
		if item.header && item.category == name {
			b.cursor = i
			break
		}
	}
	b.refresh()
	return cmd
}

// Scroll moves the visible window on mouse wheel events without moving the cursor
func (b *Browser) Scroll(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok || len(b.items) == 0 {
		return nil
	}

	switch mouse.Button {
	case tea.MouseButtonWheelUp:
		b.top -= b.viewport.MouseWheelDelta
	case tea.MouseButtonWheelDown:
		b.top += b.viewport.MouseWheelDelta
	default:
		return nil
	}
	b.drawWindow()
	return nil
}

// View renders the browser pane
func (b *Browser) View() string {
	pane := b.styles.InactivePane
	if b.isActive {
		pane = b.styles.ActivePane
	}

	title := "Tags"
	if n := b.catalog.Len(); n > 0 {
		title = fmt.Sprintf("Tags (%d)", n)
	}
	header := b.styles.PaneHeader.Render(title)
	if b.Rendering() {
		header += b.styles.Muted.Render(fmt.Sprintf("  rendering %d/%d", len(b.blocks), len(b.items)))
	}

	return pane.
		Width(max(b.width-2, 10)).
		Height(max(b.height-2, 1)).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, b.viewport.View()))
}

const emptyCatalogHint = "No tags loaded.\n\nctrl+l  default tags\nctrl+g  Danbooru tags\nctrl+o  import a .json, .txt or .csv file"

// buildItems flattens a catalog into browser rows
func buildItems(catalog *models.Catalog, collapsed map[string]bool) []browserItem {
	var items []browserItem
	for _, category := range catalog.Categories() {
		folded := collapsed[category.Name]
		items = append(items, browserItem{header: true, collapsed: folded, category: category.Name, count: len(category.Tags)})
		if folded {
			continue
		}
		for _, entry := range category.Tags {
			items = append(items, browserItem{category: category.Name, entry: entry})
		}
	}
	return items
}

func renderItems(items []browserItem, opts renderOptions) []string {
	blocks := make([]string, len(items))
	for i, item := range items {
		blocks[i] = renderItem(item, opts, false)
	}
	return blocks
}

func renderItem(item browserItem, opts renderOptions, cursor bool) string {
	if item.header {
		arrow := "▾ "
		if item.collapsed {
			arrow = "▸ "
		}
		label := fmt.Sprintf("%s%s (%d)", arrow, item.category, item.count)
		if cursor {
			return opts.styles.TagCursor.Render(label)
		}
		return opts.styles.CategoryHeader(item.category).Render(label)
	}

	line := "  • " + item.entry.Tag
	if cursor {
		line = opts.styles.TagCursor.Render(line)
	} else {
		line = opts.styles.Tag.Render(line)
	}

	if !opts.showDesc || item.entry.Desc == "" {
		return line
	}

	wrapped := wordwrap.String(item.entry.Desc, max(opts.width-6, 10))
	var b strings.Builder
	b.WriteString(line)
	for _, descLine := range strings.Split(wrapped, "\n") {
		b.WriteString("\n")
		b.WriteString(opts.styles.Description.Render("    " + descLine))
	}
	return b.String()
}
