package codec

import (
	"github.com/javimudi/coap/message"
	"go.uber.org/zap"
)

// ErrorFunc receives options skipped by a lenient codec.
type ErrorFunc = func(error)

// DefaultConfig returns a config with a fresh DefaultRegistry.
func DefaultConfig() Config {
	return Config{
		Registry:   message.DefaultRegistry(),
		MaxOptions: 256,
		Logger:     zap.NewNop(),
	}
}

type Config struct {
	Registry message.Registry
	// Strict rejects every option missing in Registry; registered options decode as usual.
	Strict bool
	// Lenient skips options with an unknown number or an invalid value instead of failing.
	Lenient    bool
	MaxOptions int
	Logger     *zap.Logger
	// Errors defaults to a warning through Logger.
	Errors ErrorFunc
}

// An Option overrides a field of Config.
type Option interface {
	CodecApply(cfg *Config)
}
