package commands

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/axiomhq/hexaurl"
)

// RunInspect prints the compiled configuration followed by a breakdown of
// each buffer: symbol count, unchecked content and validation status.
func RunInspect(
	cfg *hexaurl.Config,
	logger *zap.Logger,
	io IOTuple,
	args []string,
	format string,
) error {
	bf, err := parseFormat(format)
	if err != nil {
		return err
	}

	w := io.Writer
	minLen, _ := cfg.MinLength()
	if _, err := fmt.Fprintf(w, "config:    %s\ncapacity:  %d\nmin:       %d\nmax:       %d\n",
		cfg, cfg.Capacity(), minLen, cfg.EffectiveMaxLength()); err != nil {
		return err
	}

	for _, in := range args {
		buf, err := bf.decode(in)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", bf, in, err)
		}
		status := "ok"
		if _, err := cfg.Decode(buf); err != nil {
			status = err.Error()
			logger.Debug("buffer rejected", zap.String("buffer", in), zap.Error(err))
		}
		if _, err := fmt.Fprintf(w, "\nbuffer:    %s\nbytes:     %d\nsymbols:   %d\ncontent:   %q\nstatus:    %s\n",
			in, len(buf), hexaurl.SymbolLen(buf), hexaurl.DecodeUnchecked(buf), status); err != nil {
			return err
		}
	}
	return nil
}
