// Package webkit adapts WebKitGTK 6 and GTK 4 to the application ports. The
// toolkit code is compiled only with the webkit_cgo build tag; the bridge
// helpers in this file are plain Go.
package webkit

import (
	"context"
	"encoding/json"
	"fmt"
)

// MessageHandlerName is the window.webkit.messageHandlers entry shell views
// post commands to.
const MessageHandlerName = "viewshell"

// CommandHandler answers one bridge request with an encoded reply.
// *messaging.Router implements it.
type CommandHandler interface {
	Handle(ctx context.Context, payload []byte) []byte
}

// EventScript returns the JavaScript that emits payload on channel inside a
// shell view.
func EventScript(channel string, payload any) (string, error) {
	ch, err := json.Marshal(channel)
	if err != nil {
		return "", fmt.Errorf("encode channel: %w", err)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode %s payload: %w", channel, err)
	}
	return fmt.Sprintf("window.viewshell && window.viewshell.__emit(%s, %s);", ch, data), nil
}

// ReplyScript returns the JavaScript that resolves a pending invoke with an
// encoded router reply. An empty reply resolves nothing.
func ReplyScript(reply []byte) string {
	if len(reply) == 0 || !json.Valid(reply) {
		return ""
	}
	return fmt.Sprintf("window.viewshell && window.viewshell.__reply(%s);", reply)
}
