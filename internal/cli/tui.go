package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// FaceListModel - Interactive face browser
// =============================================================================

// FaceSelection holds the face picked in the browser.
type FaceSelection struct {
	Index int
	Face  []int
}

// FaceListModel is the bubbletea model for browsing the faces of an
// embedding. Each row is one face; enter selects it, q quits.
type FaceListModel struct {
	Faces    [][]int
	Cursor   int
	Selected *FaceSelection
	Height   int
	Offset   int
}

// NewFaceListModel creates a face browser over the given face walks.
func NewFaceListModel(faces [][]int) FaceListModel {
	return FaceListModel{
		Faces:  faces,
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m FaceListModel) Init() tea.Cmd {
	return nil
}

func (m FaceListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Faces)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			face := m.Faces[m.Cursor]
			m.Selected = &FaceSelection{Index: m.Cursor, Face: face}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m FaceListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Faces"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Faces) {
		end = len(m.Faces)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		face := m.Faces[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		rows = append(rows, []string{
			cursor,
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", len(face)),
			faceWalk(face),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Face", "Length", "Walk").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			actualIdx := m.Offset + row
			if actualIdx >= len(m.Faces) {
				return lipgloss.NewStyle()
			}
			if actualIdx == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Faces))))

	return b.String()
}
