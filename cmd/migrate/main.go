package main

import (
	"fmt"
	"os"
	"salon/config"
	"salon/helper"
	"salon/shared/logger"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Apply or roll back the salon database schema",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.Setup(config.Get())
		},
	}

	root.AddCommand(newDirectionCmd("up", "Apply every pending migration", helper.Up))
	root.AddCommand(newDirectionCmd("down", "Roll back the latest migration", helper.Down))
	root.AddCommand(newDirectionCmd("drop", "Roll back every migration", helper.Drop))
	root.AddCommand(newDirectionCmd("step-up", "Apply the next pending migration", helper.StepUp))
	root.AddCommand(newVersionCmd())

	return root
}

func newDirectionCmd(use, short string, run func(*config.Config) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(config.Get())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			version, dirty, err := helper.Version(config.Get())
			if err != nil {
				return err //nolint:wrapcheck
			}

			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (dirty=%t)\n", version, dirty)

			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("Migration failed")
		os.Exit(1)
	}
}
