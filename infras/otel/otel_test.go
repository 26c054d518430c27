package otel_test

import (
	"context"
	"darshan/config"
	"darshan/infras/otel"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_WithoutEndpointIsNoop(t *testing.T) {
	cfg := &config.Config{}

	ot := otel.New(cfg)

	ctx, scope := ot.NewScope(context.Background(), "service", "service.Book")
	defer scope.End()

	assert.NotNil(t, ctx)

	assert.NotPanics(t, func() {
		scope.SetAttribute("ticket.id", "abc")
		scope.SetAttributes(map[string]any{"adults": 2, "paid": true, "tags": []string{"a"}, "amount": 1.5})
		scope.AddEvent("booked")
		scope.TraceIfError(nil)
		scope.TraceIfError(errors.New("boom"))
	})
}
