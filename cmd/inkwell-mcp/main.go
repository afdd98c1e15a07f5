package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"inkwell/internal/adapters/configjson"
	"inkwell/internal/adapters/credfile"
	mcpadapter "inkwell/internal/adapters/mcp"
	"inkwell/internal/adapters/sqlite"
	"inkwell/internal/adapters/wikiapi"
	"inkwell/internal/config"
	"inkwell/internal/ports"
)

func main() {
	profileFlag := flag.String("profile", "", "configuration profile to use")
	baseURLFlag := flag.String("base-url", "", "wiki server base URL (overrides stored profile)")
	flag.Parse()

	configPath, err := config.ConfigPath()
	if err != nil {
		log.Fatalf("inkwell-mcp: %v", err)
	}
	credDir, err := config.CredentialsDir()
	if err != nil {
		log.Fatalf("inkwell-mcp: %v", err)
	}

	cfg, err := configjson.New(configPath).Load()
	if err != nil {
		log.Fatalf("inkwell-mcp: %v", err)
	}
	settings, err := config.Resolve(config.Overrides{
		Profile: *profileFlag,
		BaseURL: *baseURLFlag,
	}, cfg, credfile.New(credDir))
	if err != nil {
		log.Fatalf("inkwell-mcp: %v", err)
	}

	client := wikiapi.New(wikiapi.Config{
		BaseURL: settings.BaseURL,
		Token:   settings.Token,
		Timeout: settings.Timeout,
	})

	// Tool calls carrying a dedupe key share the CLI's idempotency
	// database; without it they would re-create on every retry.
	var dedupe ports.DedupeStore
	if path, err := config.DedupePath(); err == nil {
		if store, err := sqlite.Open(path); err == nil {
			defer store.Close()
			dedupe = store
		} else {
			log.Printf("inkwell-mcp: dedupe store unavailable: %v", err)
		}
	}

	mcpServer := server.NewMCPServer(
		"inkwell-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, client)
	mcpadapter.RegisterWriteTools(mcpServer, client, dedupe)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("inkwell-mcp: %v", err)
	}
}
