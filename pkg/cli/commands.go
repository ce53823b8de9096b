package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/afard/VerticaPy/internal/config"
)

func newConnectionsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "connections",
		Short: "List the DSN sections available in the connections file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := opts.dsn
			if path == "" {
				path = config.DefaultDSNPath()
			}
			sections, err := config.AvailableConnections(path)
			if err != nil {
				return err
			}
			for _, s := range sections {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}

func newDTypesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dtypes <relation>",
		Short: "Show the declared type of every column of a relation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, db, err := openTable(cmd.Context(), opts, args[0])
			if err != nil {
				return err
			}
			defer db.Close() //nolint:errcheck
			t.DTypes().Render(cmd.OutOrStdout())
			return nil
		},
	}
}

func newAsTypeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "astype <relation> <column> <type>",
		Short: "Cast a column and print the resulting view SQL",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, db, err := openTable(cmd.Context(), opts, args[0])
			if err != nil {
				return err
			}
			defer db.Close() //nolint:errcheck
			if _, err := t.AsType(cmd.Context(), args[1], args[2]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.CurrentSQL())
			return nil
		},
	}
}

func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the CLI and connected engine versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "vpy %s\n", version)
			exec, db, err := openExecutor(opts)
			if err != nil {
				// Engine version is best effort; the CLI version printed.
				fmt.Fprintf(os.Stderr, "engine: not connected (%v)\n", err)
				return nil
			}
			defer db.Close() //nolint:errcheck
			v, err := exec.Version(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "engine %s\n", v)
			return nil
		},
	}
}
