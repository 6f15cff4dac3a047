package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ksyq12/web-distributor/internal/config"
	"github.com/ksyq12/web-distributor/internal/errors"
	"github.com/ksyq12/web-distributor/internal/generate"
	"github.com/ksyq12/web-distributor/internal/logger"
	"github.com/ksyq12/web-distributor/internal/output"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "web-distributor [config]",
	Short: "Generate nginx proxy hosts and acme-redirect requests from a host map",
	Long: `web-distributor reads a map of public hostnames to backend addresses and
writes one nginx reverse proxy host and one acme-redirect certificate request
per entry. The previous generation is moved into backup directories first.

The config path defaults to ` + config.DefaultPath + `. If the file does not
exist, a default config is written there.

Nothing is reloaded. acme-redirect reloads nginx after issuing certificates;
reload nginx yourself to apply proxy changes.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

func execute(args []string) error {
	logger.SetLevel(logger.LevelInfo)
	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if err != nil {
		logger.Error("generation aborted", "code", errors.CodeOf(err))
		output.Error("%v", err)
	}
	return err
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	rootCmd.Version = v
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts := generate.Options{Now: deps.Clock.Now}
	if len(args) == 1 {
		opts.ConfigPath = args[0]
	}

	result, err := deps.Runner.Run(opts)
	if err != nil {
		return err
	}

	printSummary(result)
	return nil
}

func printSummary(result *generate.Result) {
	output.Info("Config %s", result.ConfigPath)
	for _, out := range result.Outputs {
		output.Success("%s: %d file(s) in %s", out.Driver, len(out.Files), out.Dir)
		for _, path := range out.Files {
			output.Path(path)
		}
	}
	output.Info("Previous generation kept as backup, archives tagged %s", result.Timestamp)
}
