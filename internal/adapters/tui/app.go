// Package tui hosts the interactive full-screen browser for the wiki:
// a search prompt feeding a scrollable document viewer.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"inkwell/internal/adapters/tui/views"
	"inkwell/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewSearch ViewState = iota
	ViewDocument
)

// App is the main TUI application model
type App struct {
	state  ViewState
	search *views.SearchModel
	viewer *views.ViewerModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(client ports.WikiClient, opener views.URLOpener) *App {
	return &App{
		state:  ViewSearch,
		search: views.NewSearchModel(client),
		viewer: views.NewViewerModel(client, opener),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.search.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.search.SetSize(msg.Width, msg.Height)
		a.viewer.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.OpenDocumentMsg:
		a.state = ViewDocument
		return a, a.viewer.Load(msg.ID)

	case views.BackToSearchMsg:
		a.state = ViewSearch
		return a, nil
	}

	var cmd tea.Cmd
	switch a.state {
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewDocument:
		_, cmd = a.viewer.Update(msg)
	}
	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewDocument:
		return a.viewer.View()
	default:
		return a.search.View()
	}
}
