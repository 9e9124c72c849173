package cli

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/matt-steen/ball-in-court/pkg/classify"
	"github.com/matt-steen/ball-in-court/pkg/config"
	"github.com/matt-steen/ball-in-court/pkg/db"
	"github.com/matt-steen/ball-in-court/pkg/notify"
	"github.com/matt-steen/ball-in-court/pkg/tracker"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const filePerms = 0o666

// app is everything a command needs once configuration has been read.
type app struct {
	cfg        *config.Config
	db         *db.Database
	tracker    *tracker.Tracker
	dispatcher notify.Dispatcher
	logFile    *os.File
}

func defaultConfigPath() string {
	return config.Path()
}

// openApp reads the config, starts logging, opens the database and loads the collections.
func openApp(cmd *cobra.Command, opts *options) (*app, error) {
	path := opts.configPath
	if path == "" {
		path = defaultConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	logFile, err := setupLogging(cfg, opts.verbose)
	if err != nil {
		return nil, err
	}

	log.Info().Str("config", path).Msg("starting application...")

	if err := os.MkdirAll(filepath.Dir(cfg.DataFile), 0o755); err != nil {
		logFile.Close()

		return nil, fmt.Errorf("error creating data directory: %w", err)
	}

	database, err := db.NewDatabase(cmd.Context(), cfg.DataFile)
	if err != nil {
		logFile.Close()

		return nil, err
	}

	tr := tracker.New(database)
	if err := tr.Load(cmd.Context()); err != nil {
		database.Close()
		logFile.Close()

		return nil, err
	}

	return &app{
		cfg:        cfg,
		db:         database,
		tracker:    tr,
		dispatcher: notify.NewOpener(cfg.Mail.Opener),
		logFile:    logFile,
	}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		log.Warn().Err(err).Msg("error closing database")
	}

	a.logFile.Close()
}

func (a *app) limits() classify.Limits {
	return classify.Limits{TopShort: a.cfg.Views.TopShort, TopLong: a.cfg.Views.TopLong}
}

func setupLogging(cfg *config.Config, verbose bool) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, fmt.Errorf("error creating log directory: %w", err)
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, fs.FileMode(filePerms))
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if verbose {
		level = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(level)

	log.Logger = log.With().Caller().Logger().Output(zerolog.ConsoleWriter{
		Out: logFile, TimeFormat: "2006-01-02_15:04:05",
	})

	return logFile, nil
}

// confirmer asks on the command's stdin unless --yes was given.
func confirmer(cmd *cobra.Command, opts *options) tracker.Confirm {
	return func(prompt string) bool {
		if opts.yes {
			return true
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)

		answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))

		return answer == "y" || answer == "yes"
	}
}
