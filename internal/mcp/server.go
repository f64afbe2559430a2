// ABOUTME: MCP server setup for the planner program store.
// ABOUTME: Wraps MCP server with a storage Repository connection.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/planner/internal/engine"
	"github.com/harperreed/planner/internal/models"
	"github.com/harperreed/planner/internal/storage"
)

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	strategy  engine.Strategy
}

// NewServer creates a new MCP server with the given storage.
func NewServer(repo storage.Repository, strategy engine.Strategy) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "planner",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		strategy:  strategy,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// loadState fetches the current program, erroring when none exists.
func (s *Server) loadState() (*models.PlannerState, error) {
	state, err := s.repo.LoadState()
	if err != nil {
		return nil, fmt.Errorf("load program: %w", err)
	}
	if state == nil {
		return nil, fmt.Errorf("no program initialized; run `planner init` first")
	}
	return state, nil
}
