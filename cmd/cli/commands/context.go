package commands

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/jakechorley/staffing-planner/internal/config"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg    *config.Config
	Logger *zap.Logger
	Ctx    context.Context

	// Out receives plan output; logs go to stderr and the log file
	Out io.Writer
}
