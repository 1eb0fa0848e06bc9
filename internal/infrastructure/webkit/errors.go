package webkit

import "errors"

var (
	// ErrUnavailable is returned by builds without the webkit_cgo tag.
	ErrUnavailable = errors.New("webkit: built without webkit_cgo, no GUI available")
	// ErrWebViewCreation is returned when WebKit refuses to create a view.
	ErrWebViewCreation = errors.New("webkit: failed to create web view")
	// ErrSessionCreation is returned when the network session cannot be set up.
	ErrSessionCreation = errors.New("webkit: failed to create network session")
	// ErrEphemeralSession is returned when storage would not persist.
	ErrEphemeralSession = errors.New("webkit: network session is ephemeral")
	// ErrUnsupportedSurface is returned for surfaces not created by this package.
	ErrUnsupportedSurface = errors.New("webkit: surface was not created by this package")
)
