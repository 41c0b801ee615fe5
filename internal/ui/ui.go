package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wordcount/internal/analysis"
	"wordcount/internal/report"
	"wordcount/internal/text"
)

const (
	summaryTab = iota
	topWordsTab
	sentencesTab
)

type UiModel struct {
	result          analysis.Result
	fileName        string
	tabs            []string
	currentTab      int
	currentWordIdx  int
	currentSentence int
	copied          string
	status          string
	width, height   int
	copyText        func(string) error
}

func InitialModel(fileName string, res analysis.Result) UiModel {
	m := UiModel{
		result:   res,
		fileName: fileName,
		tabs:     []string{"Summary", "Top words", "Sentences"},
		copyText: clipboard.WriteAll,
	}
	// Start the sentence view on the match, which is what the summary points at.
	if idx := m.matchIndex(); idx >= 0 {
		m.currentSentence = idx
	}
	return m
}

func (m UiModel) Init() tea.Cmd {
	return nil
}

func (m UiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.currentTab = summaryTab
		case "2":
			m.currentTab = topWordsTab
		case "3":
			m.currentTab = sentencesTab
		case "tab":
			m.currentTab = (m.currentTab + 1) % len(m.tabs)
		case "j", "down":
			m.move(1)
		case "k", "up":
			m.move(-1)
		case "g":
			if idx := m.matchIndex(); idx >= 0 {
				m.currentTab = sentencesTab
				m.currentSentence = idx
			}
		case "c":
			m.copySelection()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m *UiModel) move(delta int) {
	switch m.currentTab {
	case topWordsTab:
		m.currentWordIdx = clamp(m.currentWordIdx+delta, len(m.result.Top))
	case sentencesTab:
		m.currentSentence = clamp(m.currentSentence+delta, len(m.result.Sentences))
	}
}

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func (m *UiModel) copySelection() {
	var selected string
	switch m.currentTab {
	case summaryTab:
		if !m.result.Found {
			return
		}
		selected = m.result.LastSentence.String()
	case topWordsTab:
		if len(m.result.Top) == 0 {
			return
		}
		selected = m.result.Top[m.currentWordIdx].Word
	case sentencesTab:
		if len(m.result.Sentences) == 0 {
			return
		}
		selected = m.result.Sentences[m.currentSentence].String()
	}
	if err := m.copyText(selected); err != nil {
		m.status = fmt.Sprintf("Error copying: %v", err)
		return
	}
	m.copied = selected
	m.status = ""
}

// matchIndex is the position of the last sentence with the top word, or -1.
func (m UiModel) matchIndex() int {
	if !m.result.Found {
		return -1
	}
	return m.result.LastIndex
}

func (m UiModel) View() string {
	var content strings.Builder

	var tabViews []string
	for i, tab := range m.tabs {
		style := lipgloss.NewStyle().
			Padding(0, 2).
			Margin(0, 1, 0, 0)
		if i == m.currentTab {
			style = style.
				Bold(true).
				Foreground(lipgloss.Color("15")). // Bright white
				Background(lipgloss.Color("27")). // Blue background
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("51"))
		} else {
			style = style.
				Italic(true).
				Foreground(lipgloss.Color("250")).
				Background(lipgloss.Color("237")).
				Border(lipgloss.NormalBorder(), true).
				BorderForeground(lipgloss.Color("244"))
		}
		tabViews = append(tabViews, style.Render(tab))
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Left, tabViews...)
	tabBar = lipgloss.NewStyle().
		Padding(0, 1).
		Height(3).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		Foreground(lipgloss.Color("244")).
		Render(tabBar)
	content.WriteString(tabBar + "\n")

	contentHeight := m.height - 4 // tab bar (3) + status (1)
	if contentHeight < 1 {
		contentHeight = 1
	}

	switch m.currentTab {
	case summaryTab:
		content.WriteString(m.renderSummary())
	case topWordsTab:
		content.WriteString(m.renderTopWords())
	case sentencesTab:
		content.WriteString(m.renderSentences(contentHeight))
	}

	content.WriteString(m.renderStatus())
	return content.String()
}

func (m UiModel) renderSummary() string {
	label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	value := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingLeft(4)

	last := report.NoMatch
	if m.result.Found {
		last = "\"" + m.result.LastSentence.String() + "\""
	}
	top := report.NoMatch
	if word, ok := m.result.TopWord(); ok {
		top = fmt.Sprintf("%s (%d)", word, m.result.Top[0].Count)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		label.Render("File:"), value.Render(m.fileName),
		label.Render("Total word count:"), value.Render(fmt.Sprintf("%d words", m.result.Total)),
		label.Render("Distinct words:"), value.Render(fmt.Sprintf("%d", m.result.Distinct)),
		label.Render("Top word:"), value.Render(top),
		label.Render("Last sentence using the top word:"), value.Width(max(m.width-4, 20)).Render(last),
	) + "\n"
}

func (m UiModel) renderTopWords() string {
	if len(m.result.Top) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Render("No words\n")
	}
	var sb strings.Builder
	for i, wc := range m.result.Top {
		row := fmt.Sprintf("%2d. %-20s %d", i+1, wc.Word, wc.Count)
		if i == m.currentWordIdx {
			sb.WriteString(lipgloss.NewStyle().
				Background(lipgloss.Color("236")).
				Foreground(lipgloss.Color("15")).
				Padding(0, 1).
				Render(row) + "\n")
		} else {
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Padding(0, 1).
				Render(row) + "\n")
		}
	}
	return sb.String()
}

func (m UiModel) renderSentences(height int) string {
	if len(m.result.Sentences) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Render("No sentences\n")
	}
	word, _ := m.result.TopWord()
	match := m.matchIndex()

	var sb strings.Builder
	viewStart := max(0, m.currentSentence-height/2)
	viewEnd := min(len(m.result.Sentences), viewStart+height)
	for i := viewStart; i < viewEnd; i++ {
		sentence := m.result.Sentences[i]
		marker := "  "
		if i == match {
			marker = "» "
		}
		if i == m.currentSentence {
			var highlighted []string
			for _, token := range sentence.Tokens {
				if word != "" && text.Normalize(token) == word {
					token = lipgloss.NewStyle().
						Bold(true).
						Background(lipgloss.Color("226")). // Bright yellow
						Foreground(lipgloss.Color("232")).
						Render(token)
				}
				highlighted = append(highlighted, token)
			}
			sb.WriteString(lipgloss.NewStyle().
				Background(lipgloss.Color("236")).
				Foreground(lipgloss.Color("15")).
				Padding(0, 1).
				Render(marker+strings.Join(highlighted, " ")) + "\n")
		} else {
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Padding(0, 1).
				Render(marker+sentence.String()) + "\n")
		}
	}
	return sb.String()
}

func (m UiModel) renderStatus() string {
	info := fmt.Sprintf("%s | %d words", m.fileName, m.result.Total)
	switch m.currentTab {
	case topWordsTab:
		if len(m.result.Top) > 0 {
			info += fmt.Sprintf(" | Word: %d/%d", m.currentWordIdx+1, len(m.result.Top))
		}
	case sentencesTab:
		if len(m.result.Sentences) > 0 {
			info += fmt.Sprintf(" | Sentence: %d/%d", m.currentSentence+1, len(m.result.Sentences))
		}
	}
	switch {
	case m.status != "":
		info += " | " + m.status
	case m.copied != "":
		info += fmt.Sprintf(" | Copied to clipboard: %s", m.copied)
	}
	return lipgloss.NewStyle().
		Padding(0, 1).
		Height(1).
		Bold(true).
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("234")).
		Width(m.width).
		Align(lipgloss.Left).
		Render(info)
}
