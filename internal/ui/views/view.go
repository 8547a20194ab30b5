package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"scrollhead/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Title         string
	HeaderRows    int
	ListHeight    int
	FirstRow      int
	ItemCount     int
	State         domain.HeaderState
	Strategy      domain.Strategy
	Sample        domain.ScrollSample
	HasSample     bool
	Direction     domain.Direction
	StatusMessage string
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view: header band, list, status line and help
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80
	}

	lines := make([]string, 0, state.HeaderRows+state.ListHeight+2)
	lines = append(lines, r.renderHeader(state, width)...)
	lines = append(lines, r.renderList(state, width)...)
	lines = append(lines, r.renderStatus(state, width))
	lines = append(lines, r.styles.Help.Render(state.HelpView))

	return strings.Join(lines, "\n")
}

func (r *Renderer) renderHeader(state ViewState, width int) []string {
	if state.HeaderRows <= 0 {
		return nil
	}

	lines := make([]string, state.HeaderRows)
	titleRow := state.HeaderRows / 2
	for i := range lines {
		if i == titleRow && state.Title != "" {
			lines[i] = r.styles.HeaderTitle.
				Width(width).
				Align(lipgloss.Center).
				Render(state.Title)
			continue
		}
		lines[i] = r.styles.Header.Width(width).Render("")
	}
	return lines
}

func (r *Renderer) renderList(state ViewState, width int) []string {
	lines := make([]string, 0, state.ListHeight)
	for i := 0; i < state.ListHeight; i++ {
		row := state.FirstRow + i
		if row >= state.ItemCount {
			lines = append(lines, "")
			continue
		}
		style := r.styles.Row
		if row%2 == 1 {
			style = r.styles.RowAlt
		}
		lines = append(lines, style.MaxWidth(width).Render(ItemLabel(row)))
	}
	return lines
}

func (r *Renderer) renderStatus(state ViewState, width int) string {
	parts := []string{
		r.styles.StatusKey.Render("header ") + r.styles.StateStyle(state.State).Render(state.State.String()),
		r.styles.StatusKey.Render("strategy ") + r.styles.Status.Render(string(state.Strategy)),
	}
	if state.HasSample {
		parts = append(parts,
			r.styles.StatusKey.Render("offset ")+r.styles.Status.Render(fmt.Sprintf("%.0f", state.Sample.Offset)),
			r.styles.StatusKey.Render("to bottom ")+r.styles.Status.Render(fmt.Sprintf("%.0f", state.Sample.OffsetToBottom)),
			r.styles.StatusKey.Render("scrollable ")+r.styles.Status.Render(fmt.Sprintf("%.0f", state.Sample.ScrollableContent)),
		)
	}
	if state.Strategy == domain.StrategyOffset {
		parts = append(parts, r.styles.Dim.Render(state.Direction.String()))
	}
	if state.StatusMessage != "" {
		parts = append(parts, r.styles.Status.Render(state.StatusMessage))
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(parts, "  "))
}

// ItemLabel is the text shown for a list row
func ItemLabel(row int) string {
	return fmt.Sprintf("Item %d", row)
}
