// Package logging initialises the pipeline's loggers: logrus for
// structured, line-oriented operational logs (the teacher's dominant
// logger), and a zap logger reserved for the node client, which logs each
// established connection and each subscription item dropped because its
// channel was full, mirroring the teacher's own split between the two
// across its codebase.
package logging

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// New builds the primary logrus logger at the given level ("debug", "info",
// "warn", "error"), JSON-formatted for log aggregation, matching
// cmd/cli/gateway_node.go's logrus.ParseLevel(viper.GetString(...)) pattern.
func New(level string) (*logrus.Logger, error) {
	lg := logrus.New()
	lg.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	lg.SetLevel(lvl)
	return lg, nil
}

// NewTrace builds the zap logger the node client uses for its connection
// and dropped-subscription-item lines.
func NewTrace() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	return cfg.Build()
}
