package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"inkwell/internal/adapters/tui/styles"
	"inkwell/internal/application/commands"
	"inkwell/internal/domain"
	"inkwell/internal/ports"
)

// ViewerKeyMap defines key bindings for the document viewer
type ViewerKeyMap struct {
	Back    key.Binding
	CopyURL key.Binding
	Browse  key.Binding
}

var ViewerKeys = ViewerKeyMap{
	Back: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "back"),
	),
	CopyURL: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy URL"),
	),
	Browse: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open in browser"),
	),
}

// URLOpener launches a URL in the user's browser.
type URLOpener interface {
	Open(url string) error
}

// ViewerModel shows a single document's body in a scrollable viewport
type ViewerModel struct {
	client ports.WikiClient
	opener URLOpener

	viewport viewport.Model
	doc      *domain.Document
	loading  bool
	status   string
	errMsg   string
	width    int
	height   int
}

// NewViewerModel creates a new document viewer model
func NewViewerModel(client ports.WikiClient, opener URLOpener) *ViewerModel {
	return &ViewerModel{
		client:   client,
		opener:   opener,
		viewport: viewport.New(80, 20),
	}
}

// Init initializes the viewer
func (m *ViewerModel) Init() tea.Cmd {
	return nil
}

// Load fetches a document and swaps it into the viewport when it arrives
func (m *ViewerModel) Load(id string) tea.Cmd {
	m.loading = true
	m.errMsg = ""
	m.status = ""
	return func() tea.Msg {
		doc, err := commands.NewGetCommand(m.client, id).Execute(context.Background())
		if err != nil {
			return documentLoadedMsg{errMsg: err.Error()}
		}
		return documentLoadedMsg{doc: doc}
	}
}

type documentLoadedMsg struct {
	doc    *domain.Document
	errMsg string
}

// BackToSearchMsg is sent when the viewer is dismissed
type BackToSearchMsg struct{}

// Update handles messages for the viewer
func (m *ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case documentLoadedMsg:
		m.loading = false
		m.errMsg = msg.errMsg
		m.doc = msg.doc
		if msg.doc != nil {
			m.viewport.SetContent(msg.doc.Text)
			m.viewport.GotoTop()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ViewerKeys.Back):
			return m, func() tea.Msg {
				return BackToSearchMsg{}
			}

		case key.Matches(msg, ViewerKeys.CopyURL):
			if m.doc != nil && m.doc.URL != "" {
				if err := clipboard.WriteAll(m.doc.URL); err != nil {
					m.status = "clipboard unavailable"
				} else {
					m.status = "URL copied"
				}
			}
			return m, nil

		case key.Matches(msg, ViewerKeys.Browse):
			if m.doc != nil && m.doc.URL != "" && m.opener != nil {
				if err := m.opener.Open(m.doc.URL); err != nil {
					m.status = "could not open browser"
				} else {
					m.status = "opened in browser"
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the viewer
func (m *ViewerModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(styles.MutedText.Render("Loading..."))
	case m.errMsg != "":
		b.WriteString(styles.ErrorMsg.Render(m.errMsg))
	case m.doc != nil:
		b.WriteString(styles.ViewerHeader.Render(m.doc.Title))
		b.WriteString("\n")
		if m.doc.URL != "" {
			b.WriteString(styles.MutedText.Render(m.doc.URL))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.viewport.View())
	}

	b.WriteString("\n\n")
	if m.status != "" {
		b.WriteString(styles.Success.Render(m.status))
		b.WriteString("  ")
	}
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s",
		styles.HelpKey.Render("y"),
		styles.HelpDesc.Render("copy URL"),
		styles.HelpKey.Render("o"),
		styles.HelpDesc.Render("browser"),
		styles.HelpKey.Render("esc"),
		styles.HelpDesc.Render("back"),
	))

	return styles.App.Render(b.String())
}

// SetSize updates the view dimensions
func (m *ViewerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width - 4
	// Leave room for the header and help line
	if h := height - 8; h > 0 {
		m.viewport.Height = h
	}
}
