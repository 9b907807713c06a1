package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInit_Disabled(t *testing.T) {
	var out bytes.Buffer

	tel, err := Init(context.Background(), Config{Output: &out})
	require.NoError(t, err)
	t.Cleanup(func() { _ = tel.Shutdown(context.Background()) })

	tel.Logger.Info("list shown", "kind", "cars")

	var line map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &line))
	assert.Equal(t, "list shown", line["msg"])
	assert.Equal(t, "cars", line["kind"])

	_, span := otel.Tracer("test").Start(context.Background(), "op")
	assert.True(t, span.SpanContext().IsValid(), "an SDK tracer provider is installed")
	span.End()
}

func TestTelemetry_ShutdownRunsEveryStep(t *testing.T) {
	var order []string
	errA := errors.New("a failed")
	tel := &Telemetry{shutdowns: []func(context.Context) error{
		func(context.Context) error { order = append(order, "a"); return errA },
		func(context.Context) error { order = append(order, "b"); return nil },
	}}

	err := tel.Shutdown(context.Background())

	assert.ErrorIs(t, err, errA)
	assert.Equal(t, []string{"b", "a"}, order, "providers stop in reverse order")
}
