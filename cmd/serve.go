package cmd

import (
	"context"
	"fmt"

	"github.com/canvaskit/canvaslint/internal/canvas"
	"github.com/canvaskit/canvaslint/internal/connect"
	"github.com/canvaskit/canvaslint/internal/lint"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose linting and graph derivation as MCP tools over stdio",
	Long: `Serve runs a Model Context Protocol server on stdin/stdout so agent
tooling can lint canvases and query connection sets without shelling out.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.ServeStdio(newMCPServer())
	},
}

func newMCPServer() *server.MCPServer {
	s := server.NewMCPServer("canvaslint", rootCmd.Version,
		server.WithToolCapabilities(false))

	lintTool := mcp.NewTool("canvas_lint",
		mcp.WithDescription("Lint a canvas document and return every reference issue as JSON."),
		mcp.WithString("path", mcp.Required(),
			mcp.Description("Path to a canvas file (YAML or JSON)")),
	)
	s.AddTool(lintTool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := req.RequireString("path")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		doc, err := canvas.LoadFile(path)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		out, err := oj.Marshal(lint.Run(doc))
		if err != nil {
			return nil, fmt.Errorf("encode issues: %w", err)
		}
		return mcp.NewToolResultText(string(out)), nil
	})

	graphTool := mcp.NewTool("canvas_graph",
		mcp.WithDescription("Return the customer-segment connection set of every entity as JSON."),
		mcp.WithString("path", mcp.Required(),
			mcp.Description("Path to a canvas file (YAML or JSON)")),
	)
	s.AddTool(graphTool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := req.RequireString("path")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		doc, err := canvas.LoadFile(path)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		c, err := currentShape(doc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		out, err := oj.Marshal(connect.Build(c).AsMap())
		if err != nil {
			return nil, fmt.Errorf("encode graph: %w", err)
		}
		return mcp.NewToolResultText(string(out)), nil
	})

	return s
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
