package views

import (
	"github.com/charmbracelet/lipgloss"

	"scrollhead/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	Row         lipgloss.Style
	RowAlt      lipgloss.Style
	Status      lipgloss.Style
	StatusKey   lipgloss.Style
	Dim         lipgloss.Style
	Help        lipgloss.Style
	Expanded    lipgloss.Style
	Collapsed   lipgloss.Style
	Initial     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color("205")), // pink
		HeaderTitle: lipgloss.NewStyle().
			Background(lipgloss.Color("205")).
			Foreground(lipgloss.Color("231")).
			Bold(true),
		Row:       lipgloss.NewStyle().PaddingLeft(2),
		RowAlt:    lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("252")),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusKey: lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Dim:       lipgloss.NewStyle().Faint(true),
		Help:      lipgloss.NewStyle().Faint(true),
		Expanded:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Collapsed: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Initial:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
	}
}

// StateStyle returns the style used to print a header state
func (s *Styles) StateStyle(state domain.HeaderState) lipgloss.Style {
	switch state {
	case domain.StateExpanded:
		return s.Expanded
	case domain.StateCollapsed:
		return s.Collapsed
	default:
		return s.Initial
	}
}
