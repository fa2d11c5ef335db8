package tools

import (
	"context"

	"github.com/felixgeelhaar/agent-go/infrastructure/mcp"
	"gorm.io/gorm"
)

const serverInstructions = "Read-only analytical tools over a manufacturing operations database. " +
	"Call manufacturing_get_schema first to discover tables, then use the report tools " +
	"or manufacturing_run_query for ad-hoc SELECT statements."

// Serve exposes the tool set over stdio until the context is cancelled.
func Serve(ctx context.Context, db *gorm.DB) error {
	srv := mcp.NewAgentServer(mcp.AgentServerConfig{
		Name:         "manufacturing-mcp",
		Version:      "1.0.0",
		Registry:     BuildRegistry(db),
		Instructions: serverInstructions,
	})
	return srv.ServeStdio(ctx)
}
