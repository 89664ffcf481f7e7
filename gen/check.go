package gen

import (
	"context"
	"fmt"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"grt/css"
	"grt/state"
	"grt/tokens"
)

// Check regenerates the utility batch, serializes it to CSS and parses the
// result back with a real CSS tokenizer, verifying that every declaration
// survives the round trip intact.
func Check(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("check")

	base := env.Cfg.Tokens.BaseSize
	if cmd.IsSet("base") {
		base = cmd.Float("base")
	}

	utilities, _, err := Collect(base, env.Cfg.Tokens.Prefix)
	if err != nil {
		return fmt.Errorf("unable to generate tokens: %w", err)
	}

	text := css.FromUtilities(utilityMaps(utilities)).String()
	parsed := css.NewParser(log).Parse([]byte(text))

	err = verify(utilities, parsed)
	for _, w := range parsed.Warnings {
		err = multierr.Append(err, fmt.Errorf("parser warning: %s", w))
	}
	if err != nil {
		return fmt.Errorf("generated output failed verification: %w", err)
	}

	log.Info("Generated output verified",
		zap.Stringer("run", env.RunID),
		zap.Int("utilities", len(utilities)),
		zap.Int("bytes", len(text)))
	return nil
}

// verify checks that the parsed stylesheet contains every utility rule with
// identical declarations.
func verify(utilities tokens.Utilities, parsed *css.Stylesheet) (err error) {
	if len(parsed.Rules) != len(utilities) {
		err = multierr.Append(err, fmt.Errorf("rule count mismatch: generated %d, parsed %d", len(utilities), len(parsed.Rules)))
	}
	for name, decls := range utilities {
		rule, ok := parsed.RuleBySelector("." + name)
		if !ok {
			err = multierr.Append(err, fmt.Errorf("missing rule for %q", name))
			continue
		}
		for prop, want := range decls {
			got, ok := rule.Properties[prop]
			if !ok {
				err = multierr.Append(err, fmt.Errorf("%q: missing property %q", name, prop))
				continue
			}
			if got != want {
				err = multierr.Append(err, fmt.Errorf("%q: property %q changed: want %q, got %q", name, prop, want, got))
			}
		}
	}
	return err
}
