package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/core/math32"
	"github.com/hamidzr/screenfix/core"
	"github.com/hamidzr/screenfix/internal/config"
	"github.com/hamidzr/screenfix/internal/logger"
	"github.com/hamidzr/screenfix/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// sizeReport is what the root command prints.
type sizeReport struct {
	Platform        string                `json:"platform" yaml:"platform"`
	Strategy        string                `json:"strategy" yaml:"strategy"`
	ScreenFixedSize model.ScreenFixedSize `json:"screen_fixed_size" yaml:"screen_fixed_size"`
}

type point struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
}

type fixResult struct {
	sizeReport `yaml:",inline"`
	Viewport    point `json:"viewport" yaml:"viewport"`
	Reported    point `json:"reported" yaml:"reported"`
	Fixed       point `json:"fixed" yaml:"fixed"`
}

// loadConfig is shared by every command: it reads config and applies the log level.
func loadConfig(cmd *cobra.Command) (*model.Config, error) {
	cfg, err := config.InitConfig(cmd)
	if err != nil {
		return nil, model.NewExitError(model.InvalidInput, errors.Wrap(err, "failed to initialize config"))
	}
	logger.SetLevel(cfg.LogLevel)
	return cfg, nil
}

// startApp runs the plugin inside a fresh App the way a host would at startup.
func startApp(cfg *model.Config, opts ...core.Option) (*core.App, sizeReport, error) {
	plugin, err := core.NewScreenSizeFixPluginFromConfig(cfg, opts...)
	if err != nil {
		return nil, sizeReport{}, model.NewExitError(model.InvalidInput, err)
	}

	app := core.NewApp()
	if err := app.AddPlugins(plugin); err != nil {
		return nil, sizeReport{}, exitErrorFor(err)
	}
	app.Start()

	size, err := core.ScreenFixedSizeFrom(app)
	if err != nil {
		return nil, sizeReport{}, err
	}
	return app, sizeReport{
		Platform:        plugin.Platform().String(),
		Strategy:        plugin.Strategy().Name(),
		ScreenFixedSize: size,
	}, nil
}

func exitErrorFor(err error) error {
	if errors.Is(err, core.ErrDisplayUnavailable) || errors.Is(err, core.ErrInvalidDisplaySize) {
		return model.NewExitError(model.DisplayUnavailable, err)
	}
	return err
}

func InitCLI() *cobra.Command {
	RootCmd := &cobra.Command{
		Use:           model.ProjectName,
		Short:         "screenfix reports the physical screen size used to correct touch positions",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			initConfig, _ := cmd.Flags().GetBool("init-config")
			if initConfig {
				profile, _ := cmd.Flags().GetString("profile")
				configPath, err := config.InitConfigFile(profile)
				if err != nil {
					return fmt.Errorf("failed to initialize config: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Config file created at: %s\n", configPath)
				return nil
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			_, result, err := startApp(cfg)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), cfg.Output, result, func(w io.Writer) {
				fmt.Fprintf(w, "platform: %s\nstrategy: %s\nsize:     %s\n",
					result.Platform, result.Strategy, result.ScreenFixedSize)
			})
		},
	}

	config.BindFlags(RootCmd)
	RootCmd.AddCommand(newFixCmd())

	return RootCmd
}

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix X Y",
		Short: "Apply the touch correction to a reported position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(args[0], args[1])
			if err != nil {
				return model.NewExitError(model.InvalidInput, err)
			}
			viewportFlag, _ := cmd.Flags().GetString("viewport")
			viewport, err := parseSize(viewportFlag)
			if err != nil {
				return model.NewExitError(model.InvalidInput, err)
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			app, result, err := startApp(cfg)
			if err != nil {
				return err
			}
			fixer, err := core.NewTouchFixerFromApp(app, func() math32.Vector2 { return viewport })
			if err != nil {
				return err
			}
			fixed := fixer.Fix(p)
			logrus.WithFields(logrus.Fields{"reported": p, "fixed": fixed}).Debug("fixed position")

			out := fixResult{
				sizeReport: result,
				Viewport:    point{viewport.X, viewport.Y},
				Reported:    point{p.X, p.Y},
				Fixed:       point{fixed.X, fixed.Y},
			}
			return render(cmd.OutOrStdout(), cfg.Output, out, func(w io.Writer) {
				fmt.Fprintf(w, "size:     %s\nviewport: %gx%g\nreported: (%g, %g)\nfixed:    (%g, %g)\n",
					result.ScreenFixedSize, viewport.X, viewport.Y, p.X, p.Y, fixed.X, fixed.Y)
			})
		},
	}
	cmd.Flags().String("viewport", "", "Current viewport size as WxH (required)")
	_ = cmd.MarkFlagRequired("viewport")
	return cmd
}

func parsePoint(xs, ys string) (math32.Vector2, error) {
	x, err := strconv.ParseFloat(xs, 32)
	if err != nil {
		return math32.Vector2{}, errors.Wrapf(err, "invalid x %q", xs)
	}
	y, err := strconv.ParseFloat(ys, 32)
	if err != nil {
		return math32.Vector2{}, errors.Wrapf(err, "invalid y %q", ys)
	}
	return math32.Vec2(float32(x), float32(y)), nil
}

// parseSize parses "WxH" with positive components.
func parseSize(s string) (math32.Vector2, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return math32.Vector2{}, errors.Errorf("invalid size %q, expected WxH", s)
	}
	size, err := parsePoint(ws, hs)
	if err != nil {
		return math32.Vector2{}, errors.Wrapf(err, "invalid size %q", s)
	}
	if size.X <= 0 || size.Y <= 0 {
		return math32.Vector2{}, errors.Errorf("invalid size %q, components must be positive", s)
	}
	return size, nil
}

// resolveFormat turns "auto" into text for terminals and yaml otherwise.
func resolveFormat(w io.Writer, format string) string {
	if format != "" && format != model.OutputAuto {
		return format
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return model.OutputText
	}
	return model.OutputYAML
}

func render(w io.Writer, format string, v interface{}, text func(io.Writer)) error {
	switch resolveFormat(w, format) {
	case model.OutputText:
		text(w)
		return nil
	case model.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case model.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return model.NewExitError(model.InvalidInput, errors.Errorf("invalid output format %q", format))
	}
}
