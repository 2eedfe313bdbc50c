package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/tagpick/pkg/models"
)

func renderHeader(width int, styles Styles, catalog *models.Catalog, theme string) string {
	title := styles.Title.Render("tagpick")

	summary := "no tags loaded"
	if catalog != nil && !catalog.IsEmpty() {
		summary = fmt.Sprintf("%d tags · %d categories · %s",
			catalog.Len(), len(catalog.CategoryNames()), catalog.Format())
	}
	right := styles.Muted.Render(summary + " · " + theme)

	gap := max(width-2-lipgloss.Width(title)-lipgloss.Width(right), 1)
	return lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Render(title + lipgloss.NewStyle().Width(gap).Render("") + right)
}
