package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/wailsapp/wails/v2"
	"go.uber.org/zap"

	"pomo/internal/appctx"
	"pomo/internal/config"
	"pomo/internal/logs"
	"pomo/internal/shell"
	"pomo/internal/tray"
	"pomo/internal/tray/systray"
)

var (
	configFile string
	dataDir    string
	logLevel   string
	logToFile  bool
	logDir     string

	version = "v0.1.0" // This will be injected by -ldflags during build
)

// exitError carries the process exit code for a failed run
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// exitCodeFor maps a run error onto a process exit code
func exitCodeFor(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	if errors.Is(err, tray.ErrTrayUnavailable) {
		return ExitCodeTrayUnavailable
	}
	return ExitCodeGeneralError
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		code := exitCodeFor(err)
		fmt.Fprintf(os.Stderr, "Error: %v (%s)\n", err, exitCodeDescription(code))
		os.Exit(code)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pomo",
		Short:         "Pomo - a Pomodoro timer that lives in the system tray",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runApp,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "", "Data directory path (default: ~/.pomo)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logToFile, "log-to-file", true, "Enable logging to file in standard OS location")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Custom log directory path (overrides standard OS location)")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pomo %s (%s/%s, %s)\n",
				version, runtime.GOOS, runtime.GOARCH, runtime.Version())
		},
	}
}

// logFileLocation reports where file logging goes, if it is enabled
func logFileLocation(logger *zap.Logger, cfg *config.Config) {
	if !cfg.Logging.EnableFile {
		return
	}
	info := logs.GetLoggerInfo(cfg.Logging, cfg.DataDir)
	logger.Info("Log directory configured",
		zap.String("log_dir", info.LogDir),
		zap.String("log_file", info.LogFile))
}

func runApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return &exitError{code: ExitCodeConfigError, err: fmt.Errorf("failed to load configuration: %w", err)}
	}

	logger, err := logs.SetupLogger(cfg.Logging, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	logFileLocation(logger, cfg)

	logger.Info("Starting pomo",
		zap.String("version", version),
		zap.String("data_dir", cfg.DataDir),
		zap.String("log_level", cfg.Logging.Level))

	windowShell := shell.New(logger)
	app, err := appctx.NewApplicationContext(cfg, logger, appctx.Hosts{
		Tray:   systray.New(logger, systray.DefaultReadyTimeout),
		Window: windowShell,
		Events: windowShell,
	})
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	windowShell.Attach(app)

	if err := app.Start(); err != nil {
		logger.Error("Startup failed", zap.Error(err))
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		sig, ok := <-sigCh
		if !ok {
			return
		}
		logger.Info("Received signal, quitting", zap.String("signal", sig.String()))
		app.Loop.Post(app.Window.Quit)
	}()

	icon, _ := tray.DefaultIcon()
	if err := wails.Run(windowShell.Options(cfg.Window, icon, shell.NewCommands(app))); err != nil {
		app.Shutdown()
		return fmt.Errorf("window runtime failed: %w", err)
	}

	if code := windowShell.ExitCode(); code != ExitCodeSuccess {
		return &exitError{code: code, err: fmt.Errorf("exited with code %d", code)}
	}
	logger.Info("Pomo exited")
	return nil
}
