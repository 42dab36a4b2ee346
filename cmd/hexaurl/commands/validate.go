package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/axiomhq/hexaurl"
)

// RunValidate checks every input against cfg. Accepted inputs report "ok";
// rejected ones carry the rule code and message.
func RunValidate(
	ctx context.Context,
	cfg *hexaurl.Config,
	logger *zap.Logger,
	io IOTuple,
	args []string,
	output string,
) error {
	if err := checkOutput(output); err != nil {
		return err
	}
	inputs, err := readInputs(io.Reader, args)
	if err != nil {
		return err
	}

	logger.Debug("validating inputs", zap.Int("count", len(inputs)), zap.Stringer("config", cfg))

	results, err := process(ctx, inputs, func(in string) result {
		if err := cfg.Validate(in); err != nil {
			logger.Debug("input rejected", zap.String("input", in), zap.Error(err))
			return failure(in, err)
		}
		return result{Input: in, Output: "ok"}
	})
	if err != nil {
		return err
	}
	return writeResults(io.Writer, results, output)
}
