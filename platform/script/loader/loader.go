// Package loader reads model documents from their source.
package loader

import (
	"io"
	"net/url"
)

// Loader gives access to a model document. GetReader may be called more than
// once; every reader starts at the beginning of the document.
type Loader interface {
	GetReader() (io.ReadCloser, error)
	GetSourceURL() *url.URL
}
