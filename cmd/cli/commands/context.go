package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/brigata/staffplan/internal/config"
	"github.com/brigata/staffplan/pkg/postgres"
)

// AppContext holds the application dependencies shared by all commands
type AppContext struct {
	Ctx      context.Context
	Cfg      *config.Config
	Logger   *zap.Logger
	Database *postgres.DB
}
