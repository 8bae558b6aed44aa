package hyperml

import (
	"io"

	"go.uber.org/zap"
)

// Option is a functional option for configuring a Builder.
type Option func(*builderConfig)

// builderConfig holds the internal configuration for a Builder.
type builderConfig struct {
	logger       *zap.Logger
	content      func(b *Builder)
	writer       io.Writer
	hookProvider HookProvider
	metrics      *Metrics
	selfClosing  bool
}

// defaultBuilderConfig returns the default builder configuration.
func defaultBuilderConfig() *builderConfig {
	return &builderConfig{
		logger:       nil,
		content:      nil,
		writer:       nil,
		hookProvider: nil,
		metrics:      nil,
		selfClosing:  false,
	}
}

// WithLogger sets the logger for the builder.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *builderConfig) {
		c.logger = logger
	}
}

// WithContent sets the construction function run by every RenderTo and by
// String on a builder that was not written to directly.
func WithContent(fn func(b *Builder)) Option {
	return func(c *builderConfig) {
		c.content = fn
	}
}

// WithWriter sets the destination for calls issued directly on the builder
// (fluent mode). Render and String read the markup back only when w
// implements fmt.Stringer, and return "" otherwise.
// Default: an internal buffer, readable through String
func WithWriter(w io.Writer) Option {
	return func(c *builderConfig) {
		c.writer = w
	}
}

// WithExtensionHook overrides the flavor's extension hook.
func WithExtensionHook(provider HookProvider) Option {
	return func(c *builderConfig) {
		c.hookProvider = provider
	}
}

// WithMetrics records element and byte counts into m.
// Default: nil (no metrics)
func WithMetrics(m *Metrics) Option {
	return func(c *builderConfig) {
		c.metrics = m
	}
}

// WithSelfClosing writes auto-closed elements without value or extension as
// <name/> instead of <name></name>.
// Default: false
func WithSelfClosing(enabled bool) Option {
	return func(c *builderConfig) {
		c.selfClosing = enabled
	}
}
