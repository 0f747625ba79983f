package loader

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Stdin is the name InferLoader maps to standard input.
const Stdin = "-"

// InferLoader returns a loader for input:
//   - Loader: returned as is
//   - []byte: FromBytes
//   - io.Reader: FromIoReader
//   - string: "-" reads standard input, text starting with '<' is inline
//     content, anything else is a path on disk
func InferLoader(input any) (Loader, error) {
	switch v := input.(type) {
	case Loader:
		return v, nil
	case []byte:
		return NewFromBytes(v)
	case io.Reader:
		return NewFromIoReader(v, "inferred")
	case string:
		return inferFromString(v)
	default:
		return nil, fmt.Errorf("unsupported input type: %T", input)
	}
}

func inferFromString(input string) (Loader, error) {
	trimmed := strings.TrimSpace(input)
	switch {
	case trimmed == "":
		return nil, fmt.Errorf("%w: empty string input", ErrSourceNotAvailable)
	case trimmed == Stdin:
		return NewFromIoReader(os.Stdin, "stdin")
	case strings.HasPrefix(trimmed, "<"):
		return NewFromString(trimmed)
	default:
		return NewFromDisk(trimmed)
	}
}
