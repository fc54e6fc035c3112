package tool

import (
	"context"
	"errors"
	"io"
	"testing"

	"go-claims-service/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *Registry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewRegistry(log, validator.NewValidator())
}

func TestRegistry_Register(t *testing.T) {
	r := newTestRegistry()

	handler := func(ctx context.Context, params Params) (interface{}, error) {
		return "ok", nil
	}

	require.NoError(t, r.Register(Tool{Name: "first", Handler: handler}))
	require.NoError(t, r.Register(Tool{Name: "second", Handler: handler}))

	assert.Equal(t, []string{"first", "second"}, r.Names())

	err := r.Register(Tool{Name: "first", Handler: handler})
	assert.ErrorContains(t, err, "already registered")

	err = r.Register(Tool{Handler: handler})
	assert.ErrorContains(t, err, "must have a name")
}

func TestRegistry_Invoke_UnknownTool(t *testing.T) {
	r := newTestRegistry()

	_, err := r.Invoke(context.Background(), "missing", Params{})
	assert.ErrorIs(t, err, ErrUnknownTool)
}

func TestRegistry_Invoke_Success(t *testing.T) {
	r := newTestRegistry()
	r.MustRegister(Tool{
		Name:  "echo",
		Param: "user_id",
		Handler: func(ctx context.Context, params Params) (interface{}, error) {
			return []string{params["user_id"]}, nil
		},
	})

	result, err := r.Invoke(context.Background(), "echo", Params{"user_id": "u1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, result)
}

func TestRegistry_Invoke_HandlerErrorCollapsesToEmpty(t *testing.T) {
	r := newTestRegistry()
	r.MustRegister(Tool{
		Name: "broken",
		Handler: func(ctx context.Context, params Params) (interface{}, error) {
			return nil, errors.New("storage failure")
		},
	})

	result, err := r.Invoke(context.Background(), "broken", Params{})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{}, result)
}

func TestRegistry_Invoke_MissingParamCollapsesToEmpty(t *testing.T) {
	r := newTestRegistry()
	called := false
	r.MustRegister(Tool{
		Name:  "guarded",
		Param: "user_id",
		Handler: func(ctx context.Context, params Params) (interface{}, error) {
			called = true
			return "should not run", nil
		},
	})

	result, err := r.Invoke(context.Background(), "guarded", Params{})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{}, result)
	assert.False(t, called)
}

func TestRegistry_Invoke_OversizedParamCollapsesToEmpty(t *testing.T) {
	r := newTestRegistry()
	r.MustRegister(Tool{
		Name:  "guarded",
		Param: "user_id",
		Handler: func(ctx context.Context, params Params) (interface{}, error) {
			return "should not run", nil
		},
	})

	long := make([]byte, 65)
	for i := range long {
		long[i] = 'a'
	}

	result, err := r.Invoke(context.Background(), "guarded", Params{"user_id": string(long)})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{}, result)
}

func TestRegistry_Lookup(t *testing.T) {
	r := newTestRegistry()
	r.MustRegister(Tool{
		Name:        "ping",
		Description: "Health check tool",
		Handler: func(ctx context.Context, params Params) (interface{}, error) {
			return "pong", nil
		},
	})

	tool, ok := r.Lookup("ping")
	require.True(t, ok)
	assert.Equal(t, "Health check tool", tool.Description)

	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}
