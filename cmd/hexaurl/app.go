package main

import (
	"context"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/axiomhq/hexaurl"
	"github.com/axiomhq/hexaurl/cmd/hexaurl/commands"
	"github.com/axiomhq/hexaurl/internal/config"
)

// app holds the state resolved by the Before hook of a subcommand.
type app struct {
	io     commands.IOTuple
	cfg    *hexaurl.Config
	logger *zap.Logger
}

func newApp(io commands.IOTuple) *cli.Command {
	a := &app{io: io, logger: zap.NewNop()}
	return &cli.Command{
		Name:     "hexaurl",
		Usage:    "Encode, decode and validate fixed-size HexaURL identifiers",
		Version:  version,
		Reader:   io.Reader,
		Writer:   io.Writer,
		Flags:    profileFlags(),
		Commands: getCommands(a),
		After: func(ctx context.Context, cmd *cli.Command) error {
			_ = a.logger.Sync()
			return nil
		},
	}
}

func profileFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML profile file (defaults to HEXAURL_* environment variables)",
		},
		&cli.IntFlag{
			Name:  "size",
			Usage: "Encoded buffer size in bytes",
		},
		&cli.IntFlag{
			Name:  "min",
			Usage: "Minimum length (-1 for none)",
		},
		&cli.IntFlag{
			Name:  "max",
			Usage: "Maximum length (-1 for buffer capacity)",
		},
		&cli.StringFlag{
			Name:  "composition",
			Usage: "Character composition (alphanumeric, alphanumeric-hyphen, alphanumeric-underscore, alphanumeric-hyphen-underscore)",
		},
		&cli.StringFlag{
			Name:    "preset",
			Aliases: []string{"p"},
			Usage:   "Base configuration: 'default', 'minimal' or 'custom'",
		},
		&cli.StringSliceFlag{
			Name:  "delimiters",
			Usage: "Delimiter rules to allow (e.g., leading-hyphen, consecutive-underscores)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn or error",
		},
	}
}

// before resolves the profile, applies flag overrides, compiles the
// configuration and builds the logger.
func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	p, err := loadProfile(cmd)
	if err != nil {
		return ctx, err
	}
	cfg, err := p.Compile()
	if err != nil {
		return ctx, err
	}
	logger, err := commands.NewLogger(p.LogLevel)
	if err != nil {
		return ctx, err
	}
	a.cfg, a.logger = cfg, logger
	a.logger.Debug("configuration loaded", zap.Stringer("config", cfg))
	return ctx, nil
}

func loadProfile(cmd *cli.Command) (*config.Profile, error) {
	var p *config.Profile
	if path := cmd.String("config"); path != "" {
		var err error
		if p, err = config.LoadFile(path); err != nil {
			return nil, err
		}
	} else {
		p = config.Load()
	}

	if cmd.IsSet("size") {
		p.Size = cmd.Int("size")
	}
	if cmd.IsSet("min") {
		p.MinLength = cmd.Int("min")
	}
	if cmd.IsSet("max") {
		p.MaxLength = cmd.Int("max")
	}
	if cmd.IsSet("composition") {
		p.Composition = cmd.String("composition")
	}
	if cmd.IsSet("preset") {
		p.Preset = cmd.String("preset")
	}
	if cmd.IsSet("delimiters") {
		p.Delimiters = cmd.StringSlice("delimiters")
	}
	if cmd.IsSet("log-level") {
		p.LogLevel = cmd.String("log-level")
	}
	return p, nil
}
