// Package assets embeds the shell UI served to the header and panel views.
package assets

import _ "embed"

// BridgeScript is injected at document start into every shell view. It
// exposes window.viewshell.invoke and window.viewshell.on.
//
//go:embed ui/bridge.js
var BridgeScript string

// ShellHTML is the tab strip shown in the window header.
//
//go:embed ui/shell.html
var ShellHTML string

// DownloadsHTML is the downloads panel.
//
//go:embed ui/downloads.html
var DownloadsHTML string
