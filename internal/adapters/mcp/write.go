package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"inkwell/internal/application/commands"
	"inkwell/internal/ports"
)

// RegisterWriteTools adds all mutating wiki tools to the MCP server.
// dedupe may be nil; create calls without a dedupe key never touch it.
func RegisterWriteTools(s *server.MCPServer, client ports.WikiClient, dedupe ports.DedupeStore) {
	s.AddTool(createTool(), createHandler(client, dedupe))
	s.AddTool(updateTool(), updateHandler(client))
}

// --- create_document ---

func createTool() mcp.Tool {
	return mcp.NewTool("create_document",
		mcp.WithDescription("Create a wiki document in a collection. Pass dedupe_key to make retries safe: a repeated key returns the already-created document instead of a duplicate."),
		mcp.WithString("title",
			mcp.Description("Document title"),
			mcp.Required(),
		),
		mcp.WithString("collection_id",
			mcp.Description("Collection to create the document in"),
			mcp.Required(),
		),
		mcp.WithString("text",
			mcp.Description("Markdown body"),
		),
		mcp.WithString("parent_id",
			mcp.Description("Parent document ID, for nested documents"),
		),
		mcp.WithString("dedupe_key",
			mcp.Description("Caller-chosen idempotency key"),
		),
	)
}

func createHandler(client ports.WikiClient, dedupe ports.DedupeStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewCreateCommand(client, dedupe,
			req.GetString("title", ""),
			req.GetString("collection_id", ""))
		cmd.Text = req.GetString("text", "")
		cmd.ParentID = req.GetString("parent_id", "")
		cmd.DedupeKey = req.GetString("dedupe_key", "")

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if result.Deduplicated {
			return mcp.NewToolResultText(fmt.Sprintf("Already created as %s (%s).", result.Document.ID, result.Document.Title)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Created %s (%s).", result.Document.ID, result.Document.Title)), nil
	}
}

// --- update_document ---

func updateTool() mcp.Tool {
	return mcp.NewTool("update_document",
		mcp.WithDescription("Update a wiki document's title or body. The body fully replaces the current one unless append is true."),
		mcp.WithString("id",
			mcp.Description("Document ID"),
			mcp.Required(),
		),
		mcp.WithString("title",
			mcp.Description("New title"),
		),
		mcp.WithString("text",
			mcp.Description("New Markdown body"),
		),
		mcp.WithBoolean("append",
			mcp.Description("Append text to the current body instead of replacing it"),
		),
	)
}

func updateHandler(client ports.WikiClient) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewUpdateCommand(client, req.GetString("id", ""))
		cmd.Title = req.GetString("title", "")
		cmd.Text = req.GetString("text", "")
		cmd.Append = req.GetBool("append", false)

		doc, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Updated %s (%s).", doc.ID, doc.Title)), nil
	}
}
