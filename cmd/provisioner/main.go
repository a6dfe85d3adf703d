package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-endpoint-provisioner/internal/app"
	"github.com/MKhiriev/go-endpoint-provisioner/internal/client"
	"github.com/MKhiriev/go-endpoint-provisioner/internal/config"
	"github.com/MKhiriev/go-endpoint-provisioner/internal/logger"
	"github.com/MKhiriev/go-endpoint-provisioner/internal/tui"
	"github.com/MKhiriev/go-endpoint-provisioner/models"
	"github.com/spf13/pflag"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run provisions one endpoint and returns the process exit code: 0 on
// success or when help was requested, 1 otherwise.
func run(args []string, stdin *os.File, stdout, stderr io.Writer) int {
	cfg, err := config.GetClientConfig(args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	log, closer := logger.NewClientLogger("endpoint-provisioner", cfg.Log.Path, cfg.Log.Level)
	defer closer.Close()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("starting")
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	prompter := tui.NewPrompter(stdin, stdout, cfg.App.PlainPrompt)

	var provisioner client.Client
	provisioner, err = client.NewApp(cfg, prompter, stdout, log)
	if err != nil {
		log.Error().Err(err).Msg("init provisioner error")
		fmt.Fprintln(stderr, err)
		return 1
	}

	if err = provisioner.Run(ctx); err != nil {
		log.Error().Err(err).Msg("provisioning failed")
		printError(stderr, err)
		return 1
	}

	log.Info().Msg("done")
	return 0
}

func printError(w io.Writer, err error) {
	if msg := app.UserMessage(err); msg != "" {
		fmt.Fprintln(w, msg)
	}
	fmt.Fprintln(w, err)
}
