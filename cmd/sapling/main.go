package main

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/phanxgames/sapling"
	"github.com/phanxgames/sapling/view"

	"github.com/carlmjohnson/versioninfo"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		slog.Error("exiting process", "err", err.Error())
		os.Exit(-1)
	}
}

func run(args []string) error {
	app := cli.App{
		Name:    "sapling",
		Usage:   "interactive binary search tree visualizer",
		Version: versioninfo.Short(),
		Action:  runWindow,
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity level (eg: warn, info, debug)",
			Value:   "info",
			EnvVars: []string{"SAPLING_LOG_LEVEL", "GO_LOG_LEVEL", "LOG_LEVEL"},
		},
		&cli.DurationFlag{
			Name:    "dwell",
			Usage:   "how long each node stays highlighted, and again while it reverts",
			Value:   sapling.DefaultDwell,
			EnvVars: []string{"SAPLING_DWELL"},
		},
		&cli.StringFlag{
			Name:    "keys",
			Usage:   "comma-separated keys to seed the tree with (empty for an empty tree)",
			Value:   joinKeys(sapling.DefaultKeys),
			EnvVars: []string{"SAPLING_KEYS"},
		},
		&cli.BoolFlag{
			Name:    "debug",
			Usage:   "validate the tree after every change and print per-frame stats",
			EnvVars: []string{"SAPLING_DEBUG"},
		},
		&cli.IntFlag{
			Name:    "width",
			Usage:   "window width in pixels; also the layout width",
			Value:   view.DefaultRunConfig().Width,
			EnvVars: []string{"SAPLING_WIDTH"},
		},
		&cli.IntFlag{
			Name:    "height",
			Usage:   "window height in pixels",
			Value:   view.DefaultRunConfig().Height,
			EnvVars: []string{"SAPLING_HEIGHT"},
		},
		&cli.BoolFlag{
			Name:    "show-fps",
			Usage:   "draw an FPS overlay",
			EnvVars: []string{"SAPLING_SHOW_FPS"},
		},
		&cli.StringFlag{
			Name:    "screenshot-dir",
			Usage:   "directory for screenshots taken by scripts",
			Value:   "screenshots",
			EnvVars: []string{"SAPLING_SCREENSHOT_DIR"},
		},
		&cli.StringFlag{
			Name:    "script",
			Usage:   "JSON script of input actions to play back",
			EnvVars: []string{"SAPLING_SCRIPT"},
		},
		&cli.BoolFlag{
			Name:  "exit-after-script",
			Usage: "close the window once the script has finished",
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:   "window",
			Usage:  "open the visualizer window (default)",
			Action: runWindow,
		},
		{
			Name:   "repl",
			Usage:  "drive a session from the terminal",
			Action: runREPL,
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    "no-wait",
					Usage:   "finish animations instantly instead of in real time",
					EnvVars: []string{"SAPLING_NO_WAIT"},
				},
			},
		},
	}
	return app.Run(args)
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// sessionConfig builds the session configuration shared by every front end.
func sessionConfig(cctx *cli.Context, logger *slog.Logger) (sapling.Config, error) {
	cfg := sapling.DefaultConfig()
	cfg.Dwell = cctx.Duration("dwell")
	cfg.Debug = cctx.Bool("debug")
	cfg.Logger = logger
	keys, err := parseKeys(cctx.String("keys"))
	if err != nil {
		return sapling.Config{}, errors.Wrap(err, "--keys")
	}
	cfg.InitialKeys = keys
	return cfg, nil
}

// parseKeys parses a comma or space separated key list.
func parseKeys(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	keys := make([]int, 0, len(fields))
	for _, f := range fields {
		k, err := sapling.ParseKey(f)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func joinKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, ",")
}

func runWindow(cctx *cli.Context) error {
	logger := configLogger(cctx, os.Stderr)
	cfg, err := sessionConfig(cctx, logger)
	if err != nil {
		return err
	}
	rc := view.DefaultRunConfig()
	rc.Width = cctx.Int("width")
	rc.Height = cctx.Int("height")
	rc.ShowFPS = cctx.Bool("show-fps")
	rc.Debug = cfg.Debug
	rc.ScreenshotDir = cctx.String("screenshot-dir")
	rc.Script = cctx.String("script")
	rc.ExitAfterScript = cctx.Bool("exit-after-script")

	logger.Info("opening window", "width", rc.Width, "height", rc.Height, "keys", cfg.InitialKeys)
	return view.Run(cfg, rc)
}
