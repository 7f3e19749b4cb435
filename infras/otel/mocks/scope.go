package mocks

import "salon/infras/otel"

// noopScope swallows everything so services can be tested without a tracer.
type noopScope struct{}

func (noopScope) AddEvent(string) {}
func (noopScope) End() {}
func (noopScope) SetAttribute(string, any) {}
func (noopScope) SetAttributes(map[string]any) {}
func (noopScope) TraceError(error) {}
func (noopScope) TraceIfError(error) {}

func NewScope() otel.Scope {
	return noopScope{}
}
