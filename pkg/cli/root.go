// Package cli implements the vpy command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var version = "dev"

// rootOptions carries the resolved connection flags shared by every
// subcommand.
type rootOptions struct {
	dsn        string
	section    string
	profile    string
	lenientEnv bool
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "vpy",
		Short:         "Vertica dataframe translation layer CLI",
		Long:          "Inspect and cast columns of a remote Vertica relation without moving data.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadUserConfig()
			if err != nil {
				// Config file is optional.
				cfg = &UserConfig{Profiles: map[string]Profile{}}
			}
			p := cfg.ActiveProfile(opts.profile)

			// Precedence: flag > env > profile.
			applyFallback(cmd.Flags(), "dsn", &opts.dsn, os.Getenv("VPY_DSN"), p.DSN)
			applyFallback(cmd.Flags(), "section", &opts.section, os.Getenv("VPY_SECTION"), p.Section)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.dsn, "dsn", "", "Path to the connections INI file")
	rootCmd.PersistentFlags().StringVar(&opts.section, "section", "", "DSN section to connect with")
	rootCmd.PersistentFlags().StringVarP(&opts.profile, "profile", "p", "", "Config profile to use")
	rootCmd.PersistentFlags().BoolVar(&opts.lenientEnv, "lenient-env", false,
		"Skip credentials whose environment variable is unset instead of failing")

	rootCmd.AddCommand(
		newConnectionsCmd(opts),
		newDTypesCmd(opts),
		newAsTypeCmd(opts),
		newVersionCmd(opts),
	)
	return rootCmd
}

// applyFallback fills target from the first non-empty fallback when the flag
// was not set explicitly.
func applyFallback(fs *pflag.FlagSet, name string, target *string, fallbacks ...string) {
	if fs.Changed(name) {
		return
	}
	for _, v := range fallbacks {
		if v != "" {
			*target = v
			return
		}
	}
}
