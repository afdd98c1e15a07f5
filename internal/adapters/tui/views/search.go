package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"inkwell/internal/adapters/tui/styles"
	"inkwell/internal/application/commands"
	"inkwell/internal/domain"
	"inkwell/internal/ports"
)

// SearchKeyMap defines key bindings for the search view
type SearchKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Cancel key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// SearchModel is the model for the search view
type SearchModel struct {
	client    ports.WikiClient
	input     textinput.Model
	results   []domain.SearchResult
	cursor    int
	searching bool
	errMsg    string
	width     int
	height    int
}

// NewSearchModel creates a new search view model
func NewSearchModel(client ports.WikiClient) *SearchModel {
	input := textinput.New()
	input.Placeholder = "Search the wiki..."
	input.Focus()

	return &SearchModel{
		client: client,
		input:  input,
	}
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case searchResultsMsg:
		m.results = msg.results
		m.errMsg = msg.errMsg
		m.cursor = 0
		m.searching = false
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SearchKeys.Cancel):
			return m, tea.Quit

		case key.Matches(msg, SearchKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Open):
			if m.cursor >= 0 && m.cursor < len(m.results) {
				result := m.results[m.cursor]
				return m, func() tea.Msg {
					return OpenDocumentMsg{ID: result.Document.ID}
				}
			}
			return m, nil
		}
	}

	// Update input
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Trigger search on input change
	query := m.input.Value()
	if len(query) >= 2 {
		m.searching = true
		return m, tea.Batch(cmd, m.search(query))
	} else if len(query) == 0 {
		m.results = nil
		m.errMsg = ""
	}

	return m, cmd
}

func (m *SearchModel) search(query string) tea.Cmd {
	return func() tea.Msg {
		page, err := commands.NewSearchCommand(m.client, query).Execute(context.Background())
		if err != nil {
			return searchResultsMsg{errMsg: err.Error()}
		}
		return searchResultsMsg{results: page.Results}
	}
}

type searchResultsMsg struct {
	results []domain.SearchResult
	errMsg  string
}

// OpenDocumentMsg is sent when a search result is opened
type OpenDocumentMsg struct {
	ID string
}

// View renders the search view
func (m *SearchModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Inkwell"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	switch {
	case m.errMsg != "":
		b.WriteString(styles.ErrorMsg.Render(m.errMsg))
	case len(m.results) == 0:
		if len(m.input.Value()) >= 2 && !m.searching {
			b.WriteString(styles.MutedText.Render("No results found"))
		} else {
			b.WriteString(styles.MutedText.Render("Type at least 2 characters to search"))
		}
	default:
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d results", len(m.results))))
		b.WriteString("\n\n")

		maxResults := 10
		if len(m.results) < maxResults {
			maxResults = len(m.results)
		}

		for i := 0; i < maxResults; i++ {
			b.WriteString(m.renderResult(m.results[i], i == m.cursor))
			b.WriteString("\n")
		}

		if len(m.results) > 10 {
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("... and %d more", len(m.results)-10)))
		}
	}

	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s",
		styles.HelpKey.Render("↑/↓"),
		styles.HelpDesc.Render("navigate"),
		styles.HelpKey.Render("enter"),
		styles.HelpDesc.Render("open"),
		styles.HelpKey.Render("esc"),
		styles.HelpDesc.Render("quit"),
	))

	return styles.App.Render(b.String())
}

func (m *SearchModel) renderResult(result domain.SearchResult, selected bool) string {
	title := result.Document.Title
	if selected {
		title = styles.ResultSelected.Render(title)
	}
	snippet := strings.Join(strings.Fields(result.Snippet), " ")
	if runes := []rune(snippet); len(runes) > 80 {
		snippet = string(runes[:80])
	}
	return fmt.Sprintf("%s  %s", title, styles.ResultSnippet.Render(snippet))
}

// SetSize updates the view dimensions
func (m *SearchModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
