package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

const (
	resolveCmdUsage = "resolve NAME..."
	resolveCmdShort = "print the effective level of logger names"
	resolveCmdLong  = `Print the effective level of each logger name.

	The name is matched against <prefix>.logger.<name>, then against every
	shorter dotted prefix of it, then against <prefix>.level. A name nothing
	matches resolves to INFO.`

	resolveCmdExample = `# Show which levels two loggers end up with
	bridgelog resolve org.example.billing.Invoice org.example.web

	# Use a configuration file outside the search path
	bridgelog resolve --config /etc/app/logging.properties org.example`
)

var errNoNames = errors.New("at least one logger name is required")

// resolveCmd returns the command that prints effective levels.
func resolveCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     resolveCmdUsage,
		Short:   heredoc.Doc(resolveCmdShort),
		Long:    heredoc.Doc(resolveCmdLong),
		Example: heredoc.Doc(resolveCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return handleError(cmd, errNoNames)
			}

			store, err := root.loadStore(cmd)
			if err != nil {
				return handleError(cmd, err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range args {
				fmt.Fprintf(w, "%s\t%s\n", name, store.EffectiveLevel(name))
			}
			return w.Flush()
		},
	}
}

// handleError prints err, and the usage for argument errors, and
// returns it so the process exits non zero.
func handleError(cmd *cobra.Command, err error) error {
	cmd.PrintErrln(err)
	if errors.Is(err, errNoNames) || errors.Is(err, errInvalidLevel) || errors.Is(err, errInvalidSink) {
		_ = cmd.Usage()
	}
	return err
}
