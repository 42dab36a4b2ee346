// Package commands contains CLI command implementations for the hexaurl tool.
package commands

import (
	"bufio"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrRejected is returned by commands that report per-input results when at
// least one input failed.
var ErrRejected = errors.New("one or more inputs were rejected")

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// bufferFormat is the textual representation of encoded buffers.
type bufferFormat string

const (
	formatHex    bufferFormat = "hex"
	formatBase64 bufferFormat = "base64"
)

// parseFormat converts a format string to a bufferFormat.
// Returns an error if the format string is invalid.
func parseFormat(format string) (bufferFormat, error) {
	switch format {
	case "hex", "":
		return formatHex, nil
	case "base64":
		return formatBase64, nil
	default:
		return "", fmt.Errorf("invalid format: %s (valid options: hex, base64)", format)
	}
}

func (f bufferFormat) encode(buf []byte) string {
	if f == formatBase64 {
		return base64.RawURLEncoding.EncodeToString(buf)
	}
	return hex.EncodeToString(buf)
}

func (f bufferFormat) decode(s string) ([]byte, error) {
	if f == formatBase64 {
		return base64.RawURLEncoding.DecodeString(s)
	}
	return hex.DecodeString(s)
}

// readInputs returns args, or the non-blank lines of r when args is empty.
func readInputs(r io.Reader, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if r == nil {
		return nil, nil
	}

	var inputs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			inputs = append(inputs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return inputs, nil
}
