// Package logging creates zap loggers whose level is taken from the environment.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var root = func() *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		os.Stderr,
		zap.DebugLevel,
	)
	return zap.New(core)
}()

// New creates a named logger with the level of COAP_LOG_<PKG> or COAP_LOG.
func New(pkg string) *zap.Logger {
	return root.Named(pkg).WithOptions(zap.IncreaseLevel(ParseLevel(envLevel(pkg))))
}

// ParseLevel maps the first letter of a level name to a zap level; the default is info.
func ParseLevel(input string) zapcore.Level {
	if len(input) == 0 {
		return zap.InfoLevel
	}
	switch input[0] {
	case 'V', 'D', 'v', 'd':
		return zap.DebugLevel
	case 'W', 'w':
		return zap.WarnLevel
	case 'E', 'e':
		return zap.ErrorLevel
	case 'F', 'N', 'f', 'n':
		return zap.DPanicLevel
	}
	return zap.InfoLevel
}

func envLevel(pkg string) string {
	v, ok := os.LookupEnv("COAP_LOG_" + strings.ToUpper(pkg))
	if !ok {
		v = os.Getenv("COAP_LOG")
	}
	return v
}
