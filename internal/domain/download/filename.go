// Package download holds filename rules for transfers started by pages.
package download

import (
	"mime"
	"net/url"
	"path/filepath"
	"strings"
)

// DefaultFilename is used when no valid filename can be determined.
const DefaultFilename = "download"

// canonicalExtensions pins MIME types whose stdlib extension list depends on
// the system MIME database.
var canonicalExtensions = map[string]string{
	"text/html":                ".html",
	"text/plain":               ".txt",
	"image/jpeg":               ".jpg",
	"image/svg+xml":            ".svg",
	"audio/mpeg":               ".mp3",
	"video/mp4":                ".mp4",
	"application/octet-stream": ".bin",
}

// SanitizeFilename keeps only the base name of a host-suggested filename so it
// cannot escape the directory it is joined to.
func SanitizeFilename(name string) string {
	// filepath.Base only splits on the native separator.
	name = strings.ReplaceAll(name, "\\", "/")
	clean := filepath.Base(strings.TrimSpace(name))
	if clean == "." || clean == ".." || clean == "/" || clean == "" {
		return DefaultFilename
	}
	return clean
}

// Resolve picks the best filename from the suggested name, falling back to the
// last path segment of the source URI, then appends an extension derived from
// mimeType when the result has none.
func Resolve(suggested, mimeType, uri string) string {
	name := suggested
	if strings.TrimSpace(name) == "" {
		name = FilenameFromURI(uri)
	}
	clean := SanitizeFilename(name)
	if filepath.Ext(clean) != "" {
		return clean
	}
	return clean + ExtensionForMimeType(mimeType)
}

// TempName is the on-disk name of a transfer in the temporary directory.
// The id prefix keeps concurrent transfers of the same file apart.
func TempName(id, filename string) string {
	return id + "-" + SanitizeFilename(filename)
}

// ExtensionForMimeType returns a file extension for a MIME type, or "" when
// the type is empty or unknown. Parameters such as charset are ignored.
func ExtensionForMimeType(mimeType string) string {
	if mimeType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil || mediaType == "" {
		return ""
	}
	if ext, ok := canonicalExtensions[mediaType]; ok {
		return ext
	}
	exts, err := mime.ExtensionsByType(mediaType)
	if err != nil || len(exts) == 0 {
		return ""
	}
	return exts[0]
}

// FilenameFromURI returns the last path segment of uri.
func FilenameFromURI(uri string) string {
	if uri == "" {
		return DefaultFilename
	}
	path := uri
	if parsed, err := url.Parse(uri); err == nil {
		path = parsed.Path
	}
	base := filepath.Base(path)
	if base == "." || base == "" || base == "/" {
		return DefaultFilename
	}
	return base
}
