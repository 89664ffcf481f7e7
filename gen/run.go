// Package gen implements the generate and check subcommands: it drives token
// registration with collecting sinks and renders the result in the requested
// output format.
package gen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"grt/common"
	"grt/css"
	"grt/state"
	"grt/tokens"
)

// document is the structured form of a full generation run, used for json
// and yaml output.
type document struct {
	Utilities tokens.Utilities `json:"utilities" yaml:"utilities"`
	Theme     tokens.Theme     `json:"theme" yaml:"theme"`
}

// Collect runs token registration with sinks that capture both payloads.
func Collect(base float64, prefix string) (tokens.Utilities, tokens.Theme, error) {
	var (
		utilities tokens.Utilities
		theme     tokens.Theme
	)
	err := tokens.Register(tokens.Sinks{
		AddUtilities: func(u tokens.Utilities) error { utilities = u; return nil },
		ExtendTheme:  func(t tokens.Theme) error { theme = t; return nil },
	}, tokens.WithBaseSize(base), tokens.WithPrefix(prefix))
	if err != nil {
		return nil, tokens.Theme{}, err
	}
	return utilities, theme, nil
}

// utilityMaps converts Utilities to the plain map shape css.FromUtilities
// accepts; the inner Declarations maps are shared, not copied.
func utilityMaps(u tokens.Utilities) map[string]map[string]string {
	m := make(map[string]map[string]string, len(u))
	for name, decls := range u {
		m[name] = decls
	}
	return m
}

// Render serializes a generation run in the requested format.
func Render(format common.OutputFmt, utilities tokens.Utilities, theme tokens.Theme) ([]byte, error) {
	switch format {
	case common.OutputFmtCss:
		return []byte(css.FromUtilities(utilityMaps(utilities)).String()), nil
	case common.OutputFmtJson:
		data, err := json.MarshalIndent(document{Utilities: utilities, Theme: theme}, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("unable to marshal tokens to json: %w", err)
		}
		return append(data, '\n'), nil
	case common.OutputFmtYaml:
		data, err := yaml.Marshal(document{Utilities: utilities, Theme: theme})
		if err != nil {
			return nil, fmt.Errorf("unable to marshal tokens to yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate")

	dst := cmd.Args().Get(0)
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	format, err := common.ParseOutputFmt(cmd.String("format"))
	if err != nil {
		log.Warn("Unknown output format requested, switching to css", zap.Error(err))
		format = common.OutputFmtCss
	}

	base := env.Cfg.Tokens.BaseSize
	if cmd.IsSet("base") {
		base = cmd.Float("base")
	}
	prefix := env.Cfg.Tokens.Prefix
	if cmd.IsSet("prefix") {
		prefix = cmd.String("prefix")
	}

	log.Debug("Generating tokens",
		zap.Stringer("run", env.RunID),
		zap.Float64("base", base),
		zap.String("prefix", prefix),
		zap.Stringer("format", format))

	utilities, theme, err := Collect(base, prefix)
	if err != nil {
		return fmt.Errorf("unable to generate tokens: %w", err)
	}

	data, err := Render(format, utilities, theme)
	if err != nil {
		return err
	}
	env.Rpt.StoreData("output"+format.Ext(), data)
	env.Rpt.StoreData("theme.txt", []byte(themeTree(theme)))

	if len(dst) == 0 {
		_, err = os.Stdout.Write(data)
		return err
	}

	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if _, err := os.Stat(dst); err == nil && !env.Overwrite {
		return fmt.Errorf("destination already exists: %s (use --overwrite)", dst)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("unable to write destination: %w", err)
	}

	log.Info("Tokens generated",
		zap.String("destination", dst),
		zap.Int("utilities", len(utilities)),
		zap.Duration("elapsed", env.Uptime()))
	return nil
}
