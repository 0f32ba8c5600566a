package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"nuclight.org/feedctl/pkg/logger"
)

var opts struct {
	APIURL    string `long:"api-url" env:"FEEDCTL_API_URL" default:"http://localhost:8000" description:"base url of the platform api"`
	DBPath    string `long:"db-path" env:"FEEDCTL_DB_PATH" description:"path to the local state file (defaults to the user config dir)"`
	SentryDSN string `long:"sentry-dsn" env:"FEEDCTL_SENTRY_DSN" description:"sentry dsn for error reporting"`
	Verbose   bool   `short:"v" long:"verbose" env:"FEEDCTL_VERBOSE" description:"enable debug logging"`
}

var Revision = "dev"

// rootCtx is set before the parser runs commands; every command inherits it.
var rootCtx = context.Background()

func main() {
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	rootCtx = ctx

	parser := flags.NewParser(&opts, flags.Default)
	addCommands(parser)

	_, err := parser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) {
			if flagsErr.Type == flags.ErrHelp {
				return
			}
			os.Exit(1)
		}

		reportFatal(err)
		os.Exit(1)
	}
}

func reportFatal(err error) {
	log := logger.NewLogger(opts.Verbose)
	log.Error("command failed", "error", err)

	if opts.SentryDSN == "" {
		return
	}

	initErr := sentry.Init(sentry.ClientOptions{
		Dsn:     opts.SentryDSN,
		Release: Revision,
	})
	if initErr != nil {
		log.Warn("initializing sentry", "error", initErr)
		return
	}

	sentry.CaptureException(err)
	sentry.Flush(2 * time.Second)
}
