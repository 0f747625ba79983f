package loader

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/caoguofeng92/drools/internal/helpers"
)

// inline holds a document kept in memory.
type inline struct {
	content   []byte
	sourceURL *url.URL
}

// newInline stores content under a URL of the form scheme://name/<hash>.
func newInline(scheme, name string, content []byte) (inline, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return inline{}, fmt.Errorf("%w: content is empty", ErrSourceNotAvailable)
	}
	if name == "" {
		name = "inline"
	}

	u, err := url.Parse(scheme + "://" + name + "/" + helpers.SHA256Bytes(content)[:8])
	if err != nil {
		return inline{}, fmt.Errorf("failed to create source URL: %w", err)
	}
	return inline{content: content, sourceURL: u}, nil
}

// GetReader returns a new reader over the stored content.
func (l inline) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(l.content)), nil
}

// GetSourceURL returns the source URL of the document.
func (l inline) GetSourceURL() *url.URL {
	return l.sourceURL
}

// FromString loads a document held in a string.
type FromString struct {
	inline
}

// NewFromString creates a loader for content. Surrounding whitespace is
// trimmed and the remainder must not be empty.
func NewFromString(content string) (*FromString, error) {
	in, err := newInline("string", "", []byte(strings.TrimSpace(content)))
	if err != nil {
		return nil, err
	}
	return &FromString{inline: in}, nil
}

func (l *FromString) String() string {
	return fmt.Sprintf("loader.FromString{Chars: %d}", len(l.content))
}

// FromBytes loads a document held in a byte slice.
type FromBytes struct {
	inline
}

// NewFromBytes creates a loader for content, which is kept as is.
func NewFromBytes(content []byte) (*FromBytes, error) {
	in, err := newInline("bytes", "", content)
	if err != nil {
		return nil, err
	}
	return &FromBytes{inline: in}, nil
}

func (l *FromBytes) String() string {
	return fmt.Sprintf("loader.FromBytes{Bytes: %d}", len(l.content))
}

// FromIoReader loads a document from a reader. The reader is drained once, at
// construction, so GetReader can be called repeatedly.
type FromIoReader struct {
	inline
}

// NewFromIoReader reads all of reader. sourceName becomes the host part of the
// source URL.
func NewFromIoReader(reader io.Reader, sourceName string) (*FromIoReader, error) {
	if reader == nil {
		return nil, fmt.Errorf("%w: reader is nil", ErrSourceNotAvailable)
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read from reader: %w", err)
	}

	in, err := newInline("reader", sourceName, content)
	if err != nil {
		return nil, err
	}
	return &FromIoReader{inline: in}, nil
}

func (l *FromIoReader) String() string {
	return fmt.Sprintf("loader.FromIoReader{Bytes: %d, Source: %s}", len(l.content), l.sourceURL)
}
