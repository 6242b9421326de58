// Package tui provides a terminal browser for generated content: a
// variation list on the left, the selected body on the right, and an
// analysis toggle.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"copysmith/internal/core"
)

// model holds the browser state: the generated batch plus cursor/viewport
// bookkeeping.
type model struct {
	variations   []core.ContentVariation
	analysis     string
	selectedIdx  int
	showAnalysis bool
	scroll       int
	width        int
	height       int
	quitting     bool
}

func newModel(variations []core.ContentVariation, analysis string) model {
	return model{
		variations: variations,
		analysis:   analysis,
	}
}

// Init is the first command run; the batch is already in memory, so none is
// needed.
func (m model) Init() tea.Cmd {
	return nil
}

// Update handles key and resize messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.selectedIdx > 0 {
				m.selectedIdx--
				m.scroll = 0
			}
		case "down", "j":
			if m.selectedIdx < len(m.variations)-1 {
				m.selectedIdx++
				m.scroll = 0
			}
		case "pgup", "u":
			if m.scroll > 0 {
				m.scroll--
			}
		case "pgdown", "d":
			m.scroll++
		case "a":
			m.showAnalysis = !m.showAnalysis
			m.scroll = 0
		}
	}
	return m, nil
}

// View renders the two-pane layout.
func (m model) View() string {
	if m.quitting {
		return "Quitting...\n"
	}

	docStyle := lipgloss.NewStyle().Margin(1, 2)
	listStyle := lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(1).Width(m.width/3 - 4)
	bodyStyle := lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(1).Width(2*m.width/3 - 4)
	titleStyle := lipgloss.NewStyle().Bold(true)

	var list strings.Builder
	list.WriteString(titleStyle.Render("Variations") + "\n\n")
	for i, variation := range m.variations {
		cursor := " "
		if i == m.selectedIdx && !m.showAnalysis {
			cursor = ">"
		}
		list.WriteString(fmt.Sprintf("%s %d. %s (%d words)\n", cursor, i+1, truncateTitle(variation.Title), variation.WordCount))
	}
	cursor := " "
	if m.showAnalysis {
		cursor = ">"
	}
	list.WriteString(fmt.Sprintf("\n%s Analysis report\n", cursor))

	body := m.detailContent()
	lines := strings.Split(body, "\n")
	visible := m.height - 8
	if visible < 5 {
		visible = 5
	}
	if m.scroll > len(lines)-1 {
		m.scroll = len(lines) - 1
	}
	end := m.scroll + visible
	if end > len(lines) {
		end = len(lines)
	}
	bodyView := strings.Join(lines[m.scroll:end], "\n")

	leftPane := listStyle.Render(list.String())
	rightPane := bodyStyle.Render(bodyView)
	mainContent := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)

	help := "\n[↑/k] Prev | [↓/j] Next | [u/d] Scroll | [a] Analysis | [q] Quit"
	return docStyle.Render(mainContent + help)
}

// detailContent returns the analysis or the selected variation's record.
func (m model) detailContent() string {
	if m.showAnalysis {
		return m.analysis
	}
	if len(m.variations) == 0 {
		return "No variations to display."
	}
	variation := m.variations[m.selectedIdx]

	var detail strings.Builder
	detail.WriteString(fmt.Sprintf("Title: %s\n", variation.Title))
	if variation.CallToAction != "" {
		detail.WriteString(fmt.Sprintf("CTA: %s\n", variation.CallToAction))
	}
	if len(variation.Tags) > 0 {
		detail.WriteString(fmt.Sprintf("Tags: %s\n", strings.Join(variation.Tags, ", ")))
	}
	detail.WriteString("\n")
	detail.WriteString(variation.Body)
	return detail.String()
}

func truncateTitle(title string) string {
	if len(title) > 40 {
		return title[:37] + "..."
	}
	return title
}

// Browse starts the Bubble Tea program over a generated batch and blocks
// until the user quits.
func Browse(variations []core.ContentVariation, analysis string) error {
	p := tea.NewProgram(newModel(variations, analysis), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run content browser: %w", err)
	}
	return nil
}
