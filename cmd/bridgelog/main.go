package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/philipp01105/bridgelog/config"
	"github.com/philipp01105/bridgelog/formatter"
	"github.com/philipp01105/bridgelog/sink"
)

var (
	// Version is injected at build time
	Version = "dev"
	// BuildDate is injected at build time
	BuildDate = ""
)

const (
	appName  = "bridgelog"
	appShort = "inspect and exercise a bridgelog configuration"
	appLong  = `Inspect and exercise a bridgelog configuration.

	The configuration resource is looked up by name in the directories given
	with --dir (or BRIDGELOG_CONFIG_PATH), then in the working directory and
	the directory of the executable. Every key can be overridden through the
	environment, either under its own name or its upper-snake spelling.`

	configFlagName  = "config"
	dirFlagName     = "dir"
	prefixFlagName  = "prefix"
	verboseFlagName = "verbose"

	versionCmdName = "version"
	versionShort   = "Display the " + appName + " version"
)

// rootFlags holds the persistent flags shared across the command tree.
type rootFlags struct {
	configFile string
	dirs       []string
	prefix     string
	verbose    bool
}

// addFlags registers the persistent CLI flags on cmd.
func (f *rootFlags) addFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&f.configFile, configFlagName, "c", "", "configuration resource name or path (default from BRIDGELOG_CONFIG_FILE)")
	flags.StringSliceVarP(&f.dirs, dirFlagName, "d", nil, "directories searched for the configuration resource before the system locations")
	flags.StringVar(&f.prefix, prefixFlagName, "", "key prefix of the configuration (default from BRIDGELOG_PREFIX)")
	flags.BoolVarP(&f.verbose, verboseFlagName, "V", false, "print what the configuration load found to stderr")
}

// storeOptions merges the environment settings with the flags.
func (f *rootFlags) storeOptions(cmd *cobra.Command) ([]config.Option, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}
	opts := settings.Options()

	if f.configFile != "" {
		dir, file := filepath.Split(f.configFile)
		opts = append(opts, config.WithResource(file))
		if dir != "" {
			opts = append(opts, config.WithContextLoader(config.DirLoader{dir}))
		}
	}
	if len(f.dirs) > 0 {
		opts = append(opts, config.WithContextLoader(config.DirLoader(f.dirs)))
	}
	if f.prefix != "" {
		opts = append(opts, config.WithPrefix(f.prefix))
	}
	if f.verbose || settings.Verbose {
		opts = append(opts, config.WithDiagnostics(sink.NewConsole(sink.ConsoleConfig{
			Writer:    cmd.ErrOrStderr(),
			Formatter: formatter.NewTextFormatter(formatter.Config{DisableTimestamp: true}),
		})))
	}
	return opts, nil
}

func (f *rootFlags) loadStore(cmd *cobra.Command) (*config.Store, error) {
	opts, err := f.storeOptions(cmd)
	if err != nil {
		return nil, err
	}
	return config.Load(opts...), nil
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// rootCmd constructs the root Cobra command with shared configuration.
func rootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: heredoc.Doc(appShort),
		Long:  heredoc.Doc(appLong),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln(err)
		_ = c.Usage()
		return err
	})

	flags.addFlags(cmd)
	cmd.AddCommand(
		resolveCmd(flags),
		emitCmd(flags),
		versionCmd(),
	)

	return cmd
}

// versionCmd constructs the Cobra command that prints version information.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   versionCmdName,
		Short: heredoc.Doc(versionShort),

		Args: func(cmd *cobra.Command, args []string) error {
			err := cobra.NoArgs(cmd, args)
			if err != nil {
				cmd.PrintErrln(err)
				_ = cmd.Usage()
			}

			return err
		},
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString(Version, BuildDate, runtime.Version()))
		},
	}
}

// versionString formats the version metadata for display.
func versionString(version, buildDate, runtimeVersion string) string {
	outputString := version
	if buildDate != "" {
		outputString += " (" + buildDate + ")"
	}

	return outputString + ", Go Version: " + runtimeVersion
}
