package logging

import "go.uber.org/zap"

// NewLogger builds a production zap logger writing JSON entries to the
// given log file and mirroring them to stderr. The returned logger should
// also be installed globally via zap.ReplaceGlobals so services can log
// audit events through zap.L().
func NewLogger(logFile string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr", logFile}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
