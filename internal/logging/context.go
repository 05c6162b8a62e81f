package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// Field names shared by every child logger so editor logs can be filtered
// by preset, tab or drag across components.
const (
	FieldComponent   = "component"
	FieldPreset      = "preset"
	FieldTab         = "tab"
	FieldDragSession = "drag_session"
)

// FromContext extracts the logger from context.
// If no logger is found, returns a disabled logger (no-op).
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// derive attaches a child of the context logger built by fields.
func derive(ctx context.Context, fields func(zerolog.Context) zerolog.Context) context.Context {
	child := fields(FromContext(ctx).With()).Logger()
	return WithContext(ctx, child)
}

func WithComponent(ctx context.Context, component string) context.Context {
	return derive(ctx, func(c zerolog.Context) zerolog.Context { return c.Str(FieldComponent, component) })
}

// WithPreset tags logs with the preset whose view is being read or written.
func WithPreset(ctx context.Context, preset string) context.Context {
	return derive(ctx, func(c zerolog.Context) zerolog.Context { return c.Str(FieldPreset, preset) })
}

// WithTabIndex tags logs with a tab position of the view.
func WithTabIndex(ctx context.Context, tab int) context.Context {
	return derive(ctx, func(c zerolog.Context) zerolog.Context { return c.Int(FieldTab, tab) })
}

// WithDragSession tags logs with the id of the live drag. An empty id
// leaves the context unchanged.
func WithDragSession(ctx context.Context, sessionID string) context.Context {
	if sessionID == "" {
		return ctx
	}
	return derive(ctx, func(c zerolog.Context) zerolog.Context { return c.Str(FieldDragSession, sessionID) })
}
