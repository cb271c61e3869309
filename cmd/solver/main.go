package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tilewright/solver/config"
	"github.com/tilewright/solver/shell"
)

var (
	GitVersion string
)

func setupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	var logger zerolog.Logger
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg.GetBool(config.ConfigDebug))
	if GitVersion != "" {
		log.Info().Str("version", GitVersion).Msg("tilewright")
	}
	log.Debug().Msgf("Loaded config: %v", cfg.SanitizedSettings())

	sc, err := shell.NewShellController(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("could not set up")
	}

	done := make(chan struct{})
	sig := make(chan os.Signal, 1)
	go func() {
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Debug().Msg("got quit signal...")
		close(done)
	}()

	// Anything left after the flags is run as shell commands, and so is a
	// rack given with --rack; otherwise start the interactive shell.
	argsLine := strings.TrimSpace(strings.Join(cfg.Args(), " "))
	switch {
	case argsLine != "":
		sc.Execute(sig, argsLine+"; exit")
	case cfg.GetString(config.ConfigRack) != "":
		sc.Execute(sig, "gen; exit")
	default:
		go sc.Loop(sig)
	}

	<-done
	sc.Cleanup()
}
