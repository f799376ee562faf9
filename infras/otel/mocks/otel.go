// Package mocks provides a tracer that drops every span, for tests that do not assert on tracing.
package mocks

import (
	"context"
	"hostly/infras/otel"
)

type nopOtel struct{}

func NewOtel() otel.Otel {
	return nopOtel{}
}

func (nopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

func (nopOtel) Shutdown(context.Context) error {
	return nil
}

type nopScope struct{}

func NewScope() otel.Scope {
	return nopScope{}
}

func (nopScope) End()                         {}
func (nopScope) TraceError(error)             {}
func (nopScope) TraceIfError(error)           {}
func (nopScope) AddEvent(string)              {}
func (nopScope) SetAttribute(string, any)     {}
func (nopScope) SetAttributes(map[string]any) {}
