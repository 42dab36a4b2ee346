package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/axiomhq/hexaurl"
)

// RunEncode encodes every input under cfg and writes one result per input.
// Inputs come from args, or from the lines of io.Reader when args is empty.
// With unchecked set, inputs are packed without validation.
func RunEncode(
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

	logger.Debug("encoding inputs",
		zap.Int("count", len(inputs)),
		zap.Stringer("config", cfg),
		zap.Bool("unchecked", unchecked),
	)

	results, err := process(ctx, inputs, func(in string) result {
		if unchecked {
			return result{Input: in, Output: bf.encode(cfg.EncodeUnchecked(in))}
		}
		buf, err := cfg.Encode(in)
		if err != nil {
			return failure(in, err)
		}
		return result{Input: in, Output: bf.encode(buf)}
	})
	if err != nil {
		return err
	}
	return writeResults(io.Writer, results, output)
}
