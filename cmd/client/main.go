package main

import (
	"context"
	"fmt"
	"os"

	"github.com/awnumar/memguard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-owl/internal/app"
	"github.com/MKhiriev/go-pass-owl/internal/client"
	"github.com/MKhiriev/go-pass-owl/internal/config"
	"github.com/MKhiriev/go-pass-owl/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	memguard.CatchInterrupt()
	defer memguard.Purge()

	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", app.MessageFor(err))
		memguard.SafeExit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "passowl",
		Short:         "Zero-knowledge password manager client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := config.RegisterFlags(root.PersistentFlags())

	run := func(fn func(ctx context.Context, a *client.App, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := config.GetClientConfig(flags)
			if err != nil {
				return err
			}
			log := logger.NewClientLogger("go-pass-owl", cfg.LogLevel)

			a, err := client.NewApp(cmd.Context(), cfg, log, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer func() {
				if cerr := a.Close(); cerr != nil {
					log.Err(cerr).Msg("close client")
				}
			}()
			return fn(log.WithContext(cmd.Context()), a, args)
		}
	}

	root.AddCommand(
		newVersionCommand(),
		newRegisterCommand(run),
		newLoginCommand(run),
		newLogoutCommand(run),
		newKeysCommand(run),
		newCredentialsCommand(run),
		newNotesCommand(run),
		newCategoriesCommand(run),
		newStatsCommand(run),
		newShareCommand(run),
		newReshareCommand(run),
		newSharedCommand(run),
		newUsersCommand(run),
		newSessionCommand(run),
	)
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, _ []string) {
			printBuildInfo(cmd)
		},
	}
}

func printBuildInfo(cmd *cobra.Command) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	cmd.Printf("Build version: %s\n", buildVersion)
	cmd.Printf("Build date: %s\n", buildDate)
	cmd.Printf("Build commit: %s\n", buildCommit)
}
