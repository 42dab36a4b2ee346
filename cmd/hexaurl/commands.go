package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/axiomhq/hexaurl/cmd/hexaurl/commands"
)

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "hex",
		Usage:   "Buffer format: 'hex' or 'base64'",
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func uncheckedFlag(usage string) cli.Flag {
	return &cli.BoolFlag{
		Name:  "unchecked",
		Value: false,
		Usage: usage,
	}
}

func getCommands(a *app) []*cli.Command {
	return []*cli.Command{
		{
			Name:      "encode",
			Usage:     "Encode identifiers into fixed-size buffers",
			ArgsUsage: "[identifier...]",
			Flags: []cli.Flag{
				formatFlag(),
				outputFlag(),
				uncheckedFlag("Skip validation and pack the input as is"),
			},
			Before: a.before,
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunEncode(
					ctx,
					a.cfg,
					a.logger,
					a.io,
					cmd.Args().Slice(),
					cmd.String("format"),
					cmd.String("output"),
					cmd.Bool("unchecked"),
				)
			},
		},
		{
			Name:      "decode",
			Usage:     "Decode fixed-size buffers back into identifiers",
			ArgsUsage: "[buffer...]",
			Flags: []cli.Flag{
				formatFlag(),
				outputFlag(),
				uncheckedFlag("Skip validation of the decoded text"),
			},
			Before: a.before,
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunDecode(
					ctx,
					a.cfg,
					a.logger,
					a.io,
					cmd.Args().Slice(),
					cmd.String("format"),
					cmd.String("output"),
					cmd.Bool("unchecked"),
				)
			},
		},
		{
			Name:      "validate",
			Usage:     "Check identifiers against the configuration",
			ArgsUsage: "[identifier...]",
			Flags: []cli.Flag{
				outputFlag(),
			},
			Before: a.before,
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunValidate(
					ctx,
					a.cfg,
					a.logger,
					a.io,
					cmd.Args().Slice(),
					cmd.String("output"),
				)
			},
		},
		{
			Name:      "inspect",
			Usage:     "Show the compiled configuration and the layout of buffers",
			ArgsUsage: "[buffer...]",
			Flags: []cli.Flag{
				formatFlag(),
			},
			Before: a.before,
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunInspect(
					a.cfg,
					a.logger,
					a.io,
					cmd.Args().Slice(),
					cmd.String("format"),
				)
			},
		},
	}
}
