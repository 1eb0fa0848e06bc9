package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/bnema/viewshell/internal/logging"
)

// Router errors surfaced to the UI in Reply.Error.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("bad arguments")
	ErrBadRequest     = errors.New("malformed request")
)

// Request is one command sent by a UI surface.
type Request struct {
	ID      json.RawMessage   `json:"id"`
	Command string            `json:"command"`
	Args    []json.RawMessage `json:"args"`
}

// Reply answers a Request. ID echoes the request id verbatim.
type Reply struct {
	ID     json.RawMessage `json:"id"`
	Result any             `json:"result"`
	Error  string          `json:"error,omitempty"`
}

// Args gives typed access to positional command arguments.
type Args []json.RawMessage

// String returns argument i as a string. Numbers are accepted and formatted,
// since page scripts do not always quote ids.
func (a Args) String(i int) (string, error) {
	if i >= len(a) {
		return "", fmt.Errorf("%w: missing argument %d", ErrBadArguments, i)
	}
	trimmed := bytes.TrimSpace(a[i])
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", fmt.Errorf("%w: argument %d is null", ErrBadArguments, i)
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", fmt.Errorf("%w: argument %d: %v", ErrBadArguments, i, err)
		}
		return s, nil
	}

	var number json.Number
	if err := json.Unmarshal(trimmed, &number); err == nil {
		return number.String(), nil
	}
	return "", fmt.Errorf("%w: unsupported argument %d: %s", ErrBadArguments, i, string(trimmed))
}

// HandlerFunc executes one command. A nil result is sent as JSON null.
type HandlerFunc func(ctx context.Context, args Args) (any, error)

// Router dispatches UI commands to registered handlers. Handlers run on the
// caller's goroutine, which must be the main loop.
type Router struct {
	handlers map[string]HandlerFunc
}

// NewRouter creates a router with no commands.
func NewRouter() *Router {
	return &Router{handlers: make(map[string]HandlerFunc)}
}

// Register binds command to fn, replacing any previous binding.
func (r *Router) Register(command string, fn HandlerFunc) {
	r.handlers[command] = fn
}

// Commands returns the registered command names, sorted.
func (r *Router) Commands() []string {
	out := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Dispatch runs req and returns its reply.
func (r *Router) Dispatch(ctx context.Context, req Request) Reply {
	reply := Reply{ID: req.ID}
	log := logging.FromContext(ctx)

	fn, ok := r.handlers[req.Command]
	if !ok {
		log.Warn().Str("command", req.Command).Msg("unknown command")
		reply.Error = fmt.Sprintf("%s: %s", ErrUnknownCommand, req.Command)
		return reply
	}

	result, err := fn(ctx, Args(req.Args))
	if err != nil {
		log.Debug().Err(err).Str("command", req.Command).Msg("command failed")
		reply.Error = err.Error()
		return reply
	}
	reply.Result = result
	return reply
}

// Handle decodes a JSON request, dispatches it and encodes the reply.
func (r *Router) Handle(ctx context.Context, payload []byte) []byte {
	var req Request
	var reply Reply
	if err := json.Unmarshal(payload, &req); err != nil || req.Command == "" {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to decode command")
		reply = Reply{ID: req.ID, Error: ErrBadRequest.Error()}
	} else {
		reply = r.Dispatch(ctx, req)
	}

	data, err := json.Marshal(reply)
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Str("command", req.Command).Msg("failed to encode reply")
		data, _ = json.Marshal(Reply{ID: reply.ID, Error: err.Error()})
	}
	return data
}
