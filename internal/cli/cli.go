// Package cli wires the relver root command.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/calebzulawski/relver/internal/config"
	"github.com/calebzulawski/relver/internal/core"
	"github.com/calebzulawski/relver/internal/manifest"
	"github.com/calebzulawski/relver/internal/printer"
	"github.com/calebzulawski/relver/internal/release"
	"github.com/calebzulawski/relver/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

var noColorFlag bool

// New builds and returns the root CLI command for relver.
func New(cfg *config.Config) *urfavecli.Command {
	return &urfavecli.Command{
		Name:      "relver",
		Version:   fmt.Sprintf("v%s", version.GetVersion()),
		Usage:     "Emit release version metadata derived from a package manifest",
		ArgsUsage: "[manifest-path]",
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:        "field",
				Aliases:     []string{"f"},
				Usage:       "Dot-notation path of the version field",
				DefaultText: "inferred from the manifest filename",
			},
			&urfavecli.StringFlag{
				Name:        "format",
				Usage:       "Manifest format (toml, json, yaml, raw, regex)",
				DefaultText: "inferred from the manifest filename",
			},
			&urfavecli.StringFlag{
				Name:  "pattern",
				Usage: "Capturing-group regex for the regex format",
			},
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColorFlag)
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			return runRead(ctx, cmd, cfg)
		},
	}
}

// runRead resolves the manifest source and prints the version/tag pair.
func runRead(ctx context.Context, cmd *urfavecli.Command, cfg *config.Config) error {
	src, err := resolveSource(cmd, cfg)
	if err != nil {
		return err
	}

	meta, err := release.Read(ctx, core.NewOSFileSystem(), src)
	if err != nil {
		return err
	}

	out := stdout(cmd)
	fmt.Fprintf(out, "version=%s\n", meta.Version)
	fmt.Fprintf(out, "tag=%s\n", meta.Tag)
	return nil
}

// resolveSource builds the manifest source from the positional argument,
// flags, and configuration. A positional path wins over the configured
// manifest; flags win over configuration; anything still unset is inferred
// from the manifest filename.
func resolveSource(cmd *urfavecli.Command, cfg *config.Config) (manifest.Source, error) {
	args := cmd.Args()
	if args.Len() > 1 {
		return manifest.Source{}, fmt.Errorf("expected at most one manifest path, got %d arguments", args.Len())
	}

	src := manifest.Source{
		Path:    cfg.Manifest,
		Field:   cfg.Field,
		Pattern: cfg.Pattern,
	}
	formatName := cfg.Format

	if path := args.First(); path != "" {
		// The config file describes its own manifest, not an explicit one.
		src = manifest.Source{Path: path}
		formatName = ""
	}

	if cmd.IsSet("field") {
		src.Field = cmd.String("field")
	}
	if cmd.IsSet("format") {
		formatName = cmd.String("format")
	}
	if cmd.IsSet("pattern") {
		src.Pattern = cmd.String("pattern")
	}

	if formatName != "" {
		format, ok := manifest.ParseFormat(formatName)
		if !ok {
			return manifest.Source{}, fmt.Errorf("unknown format %q (expected toml, json, yaml, raw, or regex)", formatName)
		}
		src.Format = format
	} else {
		src.Format = manifest.FormatForFile(src.Path)
	}

	if src.Field == "" {
		src.Field = manifest.FieldForFile(src.Path)
	}

	return src, nil
}

// stdout returns the command's output writer, falling back to os.Stdout.
func stdout(cmd *urfavecli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
