package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/meguca/geolocdb/internal/cmd/completion"
	"github.com/meguca/geolocdb/internal/cmd/fetch"
	"github.com/meguca/geolocdb/internal/version"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	cmdUse   = "geolocdb [OPTIONS] COMMAND [ARG...]"
	cmdShort = "geolocdb"
	cmdLong  = `Keeps a local copy of the GeoLite2 City geolocation database.

Run 'geolocdb fetch' to download the latest release into GeoLite2-City.mmdb.`
)

func main() {
	if err := execute(newContext(), newRootCommand()); err != nil {
		os.Exit(1)
	}
}

// execute runs cmd and logs any error it returns, including flag and
// argument errors that occur before a command runs.
func execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		log.Err(err).Msg("Command failed.")
	}
	return err
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:              cmdUse,
		Short:            cmdShort,
		Long:             cmdLong,
		SilenceUsage:     true,
		SilenceErrors:    true,
		TraverseChildren: true,
		Version:          fmt.Sprintf("%s\n(build %s)", version.Version, version.GitCommit),
	}

	cmd.SetVersionTemplate("geolocdb version {{.Version}}\n")
	cmd.Flags().BoolP("version", "v", false, "print version")

	verbosity := cmd.PersistentFlags().Bool("verbose", false, "turn on verbose logging")
	noColor := cmd.PersistentFlags().Bool("no-color", false, "disable colorized output")

	cmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		setupLogging(*verbosity, *noColor)
	}

	cmd.AddCommand(
		fetch.Command(),
		completion.Command(),
	)

	return cmd
}

func setupLogging(verbose bool, noColor bool) {
	color.NoColor = noColor
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.DurationFieldInteger = true
	timeFormat := "15:04:05"
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		zerolog.TimeFieldFormat = time.RFC3339Nano
		timeFormat = "15:04:05.000"
	}

	zerolog.TimestampFunc = func() time.Time {
		return time.Now().In(time.Local)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: timeFormat, NoColor: noColor})
}

// newContext returns a new context that is canceled when a SIGINT is received.
func newContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)

	go func() {
		for range signals {
			if ctx.Err() != nil {
				os.Exit(1)
			}

			println("\nWaiting for the download to stop... (press Ctrl-c again to exit without waiting)\n")
			cancel()
		}
	}()

	return ctx
}
