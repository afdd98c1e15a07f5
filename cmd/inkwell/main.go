package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"inkwell/internal/adapters/browser"
	"inkwell/internal/adapters/configjson"
	"inkwell/internal/adapters/credfile"
	"inkwell/internal/adapters/tui"
	"inkwell/internal/adapters/wikiapi"
	"inkwell/internal/config"
)

func main() {
	profileFlag := flag.String("profile", "", "configuration profile to use")
	flag.Parse()

	configPath, err := config.ConfigPath()
	if err != nil {
		fail(err)
	}
	credDir, err := config.CredentialsDir()
	if err != nil {
		fail(err)
	}

	cfg, err := configjson.New(configPath).Load()
	if err != nil {
		fail(err)
	}
	settings, err := config.Resolve(config.Overrides{Profile: *profileFlag}, cfg, credfile.New(credDir))
	if err != nil {
		fail(err)
	}
	if settings.BaseURL == "" {
		fail(fmt.Errorf("no server configured; run 'inkwell-cli auth login' first"))
	}

	client := wikiapi.New(wikiapi.Config{
		BaseURL: settings.BaseURL,
		Token:   settings.Token,
		Timeout: settings.Timeout,
	})

	app := tui.NewApp(client, browser.NewOpener())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
