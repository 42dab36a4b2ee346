// Package main provides the hexaurl command line tool for encoding, decoding
// and validating HexaURL identifiers.
package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/axiomhq/hexaurl/cmd/hexaurl/commands"
)

var version = "dev"

func main() {
	cmd := newApp(commands.DefaultIO())
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger, lerr := commands.NewLogger("error")
		if lerr != nil {
			logger = zap.NewExample()
		}
		logger.Error("application error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
