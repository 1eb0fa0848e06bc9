package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgs_String(t *testing.T) {
	args := Args{
		json.RawMessage(`"tab-1"`),
		json.RawMessage(`42`),
		json.RawMessage(`null`),
		json.RawMessage(`{"a":1}`),
	}

	s, err := args.String(0)
	require.NoError(t, err)
	assert.Equal(t, "tab-1", s)

	s, err = args.String(1)
	require.NoError(t, err)
	assert.Equal(t, "42", s)

	_, err = args.String(2)
	assert.ErrorIs(t, err, ErrBadArguments)

	_, err = args.String(3)
	assert.ErrorIs(t, err, ErrBadArguments)

	_, err = args.String(4)
	assert.ErrorIs(t, err, ErrBadArguments)
}

func TestRouter_Handle(t *testing.T) {
	ctx := context.Background()
	router := NewRouter()
	router.Register("echo", func(_ context.Context, args Args) (any, error) {
		return args.String(0)
	})
	router.Register("fail", func(context.Context, Args) (any, error) {
		return nil, errors.New("boom")
	})
	router.Register("noop", func(context.Context, Args) (any, error) {
		return nil, nil
	})

	tests := []struct {
		name     string
		request  string
		expected string
	}{
		{
			name:     "result",
			request:  `{"id":1,"command":"echo","args":["hello"]}`,
			expected: `{"id":1,"result":"hello"}`,
		},
		{
			name:     "string id is echoed",
			request:  `{"id":"r-7","command":"noop"}`,
			expected: `{"id":"r-7","result":null}`,
		},
		{
			name:     "handler error",
			request:  `{"id":2,"command":"fail"}`,
			expected: `{"id":2,"result":null,"error":"boom"}`,
		},
		{
			name:     "missing argument",
			request:  `{"id":3,"command":"echo","args":[]}`,
			expected: `{"id":3,"result":null,"error":"bad arguments: missing argument 0"}`,
		},
		{
			name:     "unknown command",
			request:  `{"id":4,"command":"tab:teleport"}`,
			expected: `{"id":4,"result":null,"error":"unknown command: tab:teleport"}`,
		},
		{
			name:     "malformed json",
			request:  `{"id":5,`,
			expected: `{"id":null,"result":null,"error":"malformed request"}`,
		},
		{
			name:     "missing command",
			request:  `{"id":6}`,
			expected: `{"id":6,"result":null,"error":"malformed request"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := router.Handle(ctx, []byte(tt.request))
			assert.JSONEq(t, tt.expected, string(got))
		})
	}
}

func TestRouter_Commands(t *testing.T) {
	router := NewRouter()
	router.Register("b", func(context.Context, Args) (any, error) { return nil, nil })
	router.Register("a", func(context.Context, Args) (any, error) { return nil, nil })

	assert.Equal(t, []string{"a", "b"}, router.Commands())
}
