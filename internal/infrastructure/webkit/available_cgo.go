//go:build webkit_cgo

package webkit

// Available reports whether this build can open GUI windows.
func Available() bool { return true }
