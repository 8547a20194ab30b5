package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrollhead/internal/domain"
)

func baseState() ViewState {
	return ViewState{
		Width:      40,
		Height:     12,
		Title:      "scrollhead",
		HeaderRows: 3,
		ListHeight: 7,
		FirstRow:   10,
		ItemCount:  100,
		State:      domain.StateExpanded,
		Strategy:   domain.StrategyOffset,
		HasSample:  true,
		Sample:     domain.ScrollSample{Offset: 10, OffsetToBottom: 83, ScrollableContent: 93},
		HelpView:   "q quit",
	}
}

func TestRenderFillsTerminalHeight(t *testing.T) {
	out := NewRenderer().Render(baseState())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 12)

	assert.Contains(t, lines[1], "scrollhead")
	assert.Contains(t, lines[3], "Item 10")
	assert.Contains(t, lines[9], "Item 16")
	assert.Contains(t, lines[10], "expanded")
	assert.Contains(t, lines[10], "offset 10")
	assert.Contains(t, lines[11], "q quit")
}

func TestRenderCollapsedHeader(t *testing.T) {
	state := baseState()
	state.HeaderRows = 0
	state.ListHeight = 10
	state.State = domain.StateCollapsed

	lines := strings.Split(NewRenderer().Render(state), "\n")
	require.Len(t, lines, 12)
	assert.Contains(t, lines[0], "Item 10")
	assert.Contains(t, lines[10], "collapsed")
}

func TestRenderPastLastItem(t *testing.T) {
	state := baseState()
	state.FirstRow = 97
	lines := strings.Split(NewRenderer().Render(state), "\n")

	assert.Contains(t, lines[5], "Item 99")
	assert.Equal(t, "", lines[6])
}

func TestRenderKeepsLinesWithinWidth(t *testing.T) {
	state := baseState()
	state.StatusMessage = strings.Repeat("x", 200)
	for _, line := range strings.Split(NewRenderer().Render(state), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), state.Width)
	}
}

func TestItemLabel(t *testing.T) {
	assert.Equal(t, "Item 0", ItemLabel(0))
	assert.Equal(t, "Item 42", ItemLabel(42))
}
