package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/axiomhq/hexaurl"
)

// RunDecode decodes every hex or base64 buffer under cfg and writes one
// result per input. With unchecked set, only the buffer size is checked.
func RunDecode(
	ctx context.Context,
	cfg *hexaurl.Config,
	logger *zap.Logger,
	io IOTuple,
	args []string,
	format string,
	output string,
	unchecked bool,
) error {
	bf, err := parseFormat(format)
	if err != nil {
		return err
	}
	if err := checkOutput(output); err != nil {
		return err
	}
	inputs, err := readInputs(io.Reader, args)
	if err != nil {
		return err
	}

	logger.Debug("decoding inputs",
		zap.Int("count", len(inputs)),
		zap.Stringer("config", cfg),
		zap.Bool("unchecked", unchecked),
	)

	results, err := process(ctx, inputs, func(in string) result {
		buf, err := bf.decode(in)
		if err != nil {
			return failure(in, fmt.Errorf("invalid %s: %w", bf, err))
		}
		var s string
		if unchecked {
			s, err = cfg.DecodeUnchecked(buf)
		} else {
			s, err = cfg.Decode(buf)
		}
		if err != nil {
			return failure(in, err)
		}
		return result{Input: in, Output: s}
	})
	if err != nil {
		return err
	}
	return writeResults(io.Writer, results, output)
}
