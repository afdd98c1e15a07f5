package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"inkwell/internal/application/commands"
	"inkwell/internal/ports"
)

// RegisterReadTools adds all read-only wiki tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, client ports.WikiClient) {
	s.AddTool(searchTool(), searchHandler(client))
	s.AddTool(getTool(), getHandler(client))
	s.AddTool(listCollectionsTool(), listCollectionsHandler(client))
}

// --- search_documents ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search_documents",
		mcp.WithDescription("Full-text search over wiki documents. Returns matching documents with IDs and snippets."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
		mcp.WithString("collection_id",
			mcp.Description("Restrict the search to one collection"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default 25, max 100)"),
		),
	)
}

func searchHandler(client ports.WikiClient) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewSearchCommand(client, req.GetString("query", ""))
		cmd.CollectionID = req.GetString("collection_id", "")
		cmd.Limit = req.GetInt("limit", 0)

		page, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(page.Results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range page.Results {
			fmt.Fprintf(&sb, "%s  %s  %s\n", r.Document.ID, r.Document.Title, oneLine(r.Snippet))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- get_document ---

func getTool() mcp.Tool {
	return mcp.NewTool("get_document",
		mcp.WithDescription("Fetch a wiki document by ID and return its Markdown body."),
		mcp.WithString("id",
			mcp.Description("Document ID"),
			mcp.Required(),
		),
	)
}

func getHandler(client ports.WikiClient) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewGetCommand(client, req.GetString("id", ""))
		doc, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(doc.Text), nil
	}
}

// --- list_collections ---

func listCollectionsTool() mcp.Tool {
	return mcp.NewTool("list_collections",
		mcp.WithDescription("List wiki collections with their IDs. Collection IDs are needed to create documents."),
	)
}

func listCollectionsHandler(client ports.WikiClient) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		page, err := commands.NewListCollectionsCommand(client).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(page.Collections) == 0 {
			return mcp.NewToolResultText("No collections."), nil
		}

		var sb strings.Builder
		for _, c := range page.Collections {
			fmt.Fprintf(&sb, "%s  %s\n", c.ID, c.Name)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
