package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

// cli carries state shared by the commands of one invocation.
type cli struct {
	configPath string
	cfg        appConfig
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "heor-connect",
		Short: "HEOR Connect Platform dashboard",
		Long: `HEOR Connect is a terminal dashboard for navigating HEOR and HTA
maturity content across the MEAR region.

Run without a subcommand to open the dashboard.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Name() == "completion" {
				return nil
			}
			cfg, err := loadConfig(c.configPath, cmd.Flags())
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			c.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), c.cfg)
		},
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(versionText())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default is $HOME/.config/heor-connect/config.yml)")
	registerConfigFlags(root.PersistentFlags())

	root.AddCommand(newValidateCmd())
	root.AddCommand(newRoutesCmd(c))
	root.AddCommand(newVersionCmd())
	return root
}

func versionText() string {
	return fmt.Sprintf(`HEOR Connect Platform
  Version:    %s
  Commit:     %s
  Built:      %s
  Go version: %s
`, version, commit, buildTime, goVersion)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), versionText())
		},
	}
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
