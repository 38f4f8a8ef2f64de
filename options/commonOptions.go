package options

import (
	"github.com/javimudi/coap/codec"
	"github.com/javimudi/coap/message"
	"go.uber.org/zap"
)

type ErrorFunc = codec.ErrorFunc

// ErrorsOpt errors option.
type ErrorsOpt struct {
	errors ErrorFunc
}

func (o ErrorsOpt) CodecApply(cfg *codec.Config) {
	cfg.Errors = o.errors
}

// WithErrors set function for reporting skipped options.
func WithErrors(errors ErrorFunc) ErrorsOpt {
	return ErrorsOpt{errors: errors}
}

// LoggerOpt logger option.
type LoggerOpt struct {
	logger *zap.Logger
}

func (o LoggerOpt) CodecApply(cfg *codec.Config) {
	cfg.Logger = o.logger
}

// WithLogger sets the logger of decode and encode steps.
func WithLogger(logger *zap.Logger) LoggerOpt {
	return LoggerOpt{logger: logger}
}

// RegistryOpt registry option.
type RegistryOpt struct {
	registry message.Registry
}

func (o RegistryOpt) CodecApply(cfg *codec.Config) {
	cfg.Registry = o.registry
}

// WithRegistry replaces the known options.
func WithRegistry(registry message.Registry) RegistryOpt {
	return RegistryOpt{registry: registry}
}

// StrictOpt strict option.
type StrictOpt struct {
	strict bool
}

func (o StrictOpt) CodecApply(cfg *codec.Config) {
	cfg.Strict = o.strict
}

// WithStrict rejects every option which is not in the registry, elective ones included.
func WithStrict() StrictOpt {
	return StrictOpt{strict: true}
}

// LenientOpt lenient option.
type LenientOpt struct {
	lenient bool
}

func (o LenientOpt) CodecApply(cfg *codec.Config) {
	cfg.Lenient = o.lenient
}

// WithLenient skips unknown and invalid options instead of failing the decoding.
func WithLenient() LenientOpt {
	return LenientOpt{lenient: true}
}

// MaxOptionsOpt max options option.
type MaxOptionsOpt struct {
	maxOptions int
}

func (o MaxOptionsOpt) CodecApply(cfg *codec.Config) {
	cfg.MaxOptions = o.maxOptions
}

// WithMaxOptions limits the number of decoded options, 0 means unlimited.
func WithMaxOptions(maxOptions int) MaxOptionsOpt {
	return MaxOptionsOpt{maxOptions: maxOptions}
}
