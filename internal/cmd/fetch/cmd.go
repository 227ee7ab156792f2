package fetch

import (
	"context"
	"fmt"
	"io"

	"github.com/meguca/geolocdb/internal/config"
	"github.com/meguca/geolocdb/internal/geodb"
	"github.com/meguca/geolocdb/internal/human"
	"github.com/meguca/geolocdb/internal/progress"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Command creates the `fetch` command.
func Command() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Downloads the GeoLite2 City database.",
		Long: `Downloads the GeoLite2 City database and replaces the local copy with it.

A 'not found' response is retried, stepping back one release (month) each time.
Use {year} and {month} in --url to request a specific release. Any other error
response aborts the download and leaves the local copy untouched.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Run(cmd.Context(), cmd.Flags(), configFile, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	config.AddFlags(flags)
	flags.StringVarP(&configFile, "config", "c", "",
		"Read settings from this file instead of looking for .geolocdb.yml.",
	)

	return cmd
}

// Run resolves the settings from flags, downloads the database and prints a
// completion line to out.
func Run(ctx context.Context, flags *pflag.FlagSet, configFile string, out io.Writer) error {
	c, err := config.Load(flags, configFile)
	if err != nil {
		return err
	}

	opts, err := c.Options(progress.Enabled())
	if err != nil {
		return err
	}

	fetcher, err := geodb.New(opts)
	if err != nil {
		return err
	}

	res, err := fetcher.Fetch(ctx)
	if err != nil {
		return err
	}

	log.Info().
		Str("path", res.Path).
		Str("size", human.Bytes(res.Size)).
		Str("sha256", res.SHA256).
		Str("release", res.Period.String()).
		Int("attempts", res.Attempts).
		Str("source", res.Location).
		Msg("Database downloaded.")

	_, err = fmt.Fprintln(out, "done")
	return err
}
