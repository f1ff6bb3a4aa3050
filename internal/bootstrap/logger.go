package bootstrap

import (
	"corvo-delivery/internal/config"
	"corvo-delivery/internal/platform/logging"
	"strings"

	"go.uber.org/zap"
)

// NewLogger builds the process logger from configuration. LOG_OUTPUT is a
// comma-separated list of zap sinks (stderr, stdout or file paths).
func NewLogger(cfg config.Config) (*zap.Logger, error) {
	return logging.New(logging.Options{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		OutputPaths: splitOutputs(cfg.LogOutput),
	})
}

func splitOutputs(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
