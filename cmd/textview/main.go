package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/adrg/xdg"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/textmode/audio"
	"github.com/lixenwraith/textmode/terminal"
	"github.com/lixenwraith/textmode/terminal/tui"
)

const themeConfigPath = "textmode/theme.toml"

var (
	themeFile string
	sound     bool
	debugLog  string
	logLevel  string
	tabSize   int
	quitKey   string
	hexMode   bool

	rootCmd = &cobra.Command{
		Use:          "textview [flags] FILE",
		Short:        "Text-mode file pager",
		Long:         `textview - a read-only pager with a menu bar, scrollbar and modal alerts, or a hex viewer with --hex`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}
)

func main() {
	rootCmd.Flags().StringVar(&themeFile, "theme", "", "Theme file (default: "+themeConfigPath+" in the XDG config dirs)")
	rootCmd.Flags().BoolVar(&sound, "sound", false, "Click on button pushes and hotkey jumps")
	rootCmd.Flags().StringVar(&debugLog, "debug-log", "", "Append debug log to file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "debug", "Debug log level: trace, debug, info, warn, error")
	rootCmd.Flags().IntVar(&tabSize, "tab-size", tui.DefaultTabSize, "Spaces per tab")
	rootCmd.Flags().StringVar(&quitKey, "quit-key", "ctrl_q", "Key that quits from any panel")
	rootCmd.Flags().BoolVar(&hexMode, "hex", false, "Show the file as a hex dump")

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("textview: %v", err)
	}
}

func run(_ *cobra.Command, args []string) error {
	quit, ok := terminal.KeyByName(quitKey)
	if !ok {
		return fmt.Errorf("unknown quit key %q", quitKey)
	}

	logger, closer, err := newLogger(debugLog, logLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	theme, err := loadTheme(themeFile)
	if err != nil {
		return err
	}

	opts := tui.Options{Logger: logger, TabSize: tabSize}
	if sound {
		clicker := audio.NewClicker(audio.LoadClickerConfig())
		if err := clicker.Init(); err != nil {
			logger.Warn("audio unavailable", "error", err)
		}
		defer clicker.Close()
		opts.Feedback = clicker
	}

	term, err := terminal.NewTcell()
	if err != nil {
		return err
	}
	ctx, err := tui.Init(term, opts)
	if err != nil {
		return err
	}
	defer ctx.Close()

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			ctx.Close()
			fmt.Fprintf(os.Stderr, "textview crashed: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	a, err := newApp(ctx, theme, quit, hexMode)
	if err != nil {
		return err
	}
	if a.hex != nil {
		defer a.hex.Close()
	}
	if err := a.open(args[0]); err != nil {
		return err
	}
	a.loop()
	return nil
}

// newLogger returns a file-backed logger, or a null logger when path is empty
func newLogger(path, level string) (hclog.Logger, io.Closer, error) {
	if path == "" {
		return hclog.NewNullLogger(), io.NopCloser(nil), nil
	}
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		return nil, nil, fmt.Errorf("unknown log level %q", level)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "textview",
		Output: f,
		Level:  lvl,
	})
	return logger, f, nil
}

// loadTheme reads path, or the XDG default theme when path is empty.
// A missing default is not an error.
func loadTheme(path string) (*tui.Theme, error) {
	if path == "" {
		found, err := xdg.SearchConfigFile(themeConfigPath)
		if err != nil {
			return nil, nil
		}
		path = found
	}
	theme, err := tui.LoadTheme(path)
	if err != nil {
		return nil, err
	}
	return theme, nil
}
