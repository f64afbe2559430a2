// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/planner/internal/engine"
	"github.com/harperreed/planner/internal/mcp"
)

var mcpAdvanceReps bool

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your program through
a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "planner": {
        "command": "planner",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  get_day         Get one training day with its exercises
  log_exercise    Record actual RPE, reps, and load for an exercise
  complete_day    Complete a day and adapt upcoming sessions
  next_weight     Recommend the next load for a movement pattern
  program_status  Get cursor, framework, and completion counts

AVAILABLE RESOURCES:

  planner://program   Program overview with per-week completion
  planner://week      The cursor week in full detail`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo, engine.Strategy{AdvanceReps: mcpAdvanceReps})
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	mcpCmd.Flags().BoolVar(&mcpAdvanceReps, "advance-reps", false, "advance reps within the rep range when load holds")
	rootCmd.AddCommand(mcpCmd)
}
