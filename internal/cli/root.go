package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/EduardoAlcebiades/curso-design-patterns--creational/internal/domain"
	"github.com/EduardoAlcebiades/curso-design-patterns--creational/internal/infra/logger"
	"github.com/EduardoAlcebiades/curso-design-patterns--creational/internal/ports"
	"github.com/EduardoAlcebiades/curso-design-patterns--creational/internal/ui/console"
	"github.com/EduardoAlcebiades/curso-design-patterns--creational/internal/usecase"
)

// Execute runs the command line. Failures are printed, never turned into a
// non-zero exit code.
func Execute() {
	execute(os.Args[1:], os.Stdout, os.Stderr)
}

func execute(args []string, out, errOut io.Writer) {
	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(normalizeArgs(args, demoArguments()))
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(out, err)
	}
}

func newRootCmd() *cobra.Command {
	cfg := domain.DefaultConfig()
	values := map[string]*string{}

	cmd := &cobra.Command{
		Use:   "creational",
		Short: "Creational design patterns, one demo per flag",
		Long: "Runs the Factory Method, Abstract Factory and Builder demos.\n" +
			"Each flag selects one demo; several flags run several demos.",
		Example: "  creational --builder suv\n" +
			"  creational --factory-method web --abstract-factory mac",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			cleanup, err := logger.Setup(logger.Config{
				Debug:  cfg.Logging.Debug,
				File:   cfg.Logging.File,
				Stderr: cmd.ErrOrStderr(),
			})
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "logging disabled: %v\n", err)
			}
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			selections := collectSelections(cmd, values)
			if len(selections) == 0 {
				return cmd.Help()
			}

			uc := usecase.NewRunDemos(
				newDemos(logger.L()),
				usecase.WithReporter(console.NewReporter(out)),
				usecase.WithLogger(logger.L()),
			)

			sum, err := uc.Execute(cmd.Context(), out, selections)
			logger.L().Debug("run.finished", "ran", sum.Ran, "failed", sum.Failed, "log_file", logger.Path())
			return err
		},
	}

	for _, d := range newDemos(nil) {
		v := new(string)
		values[d.Argument()] = v
		cmd.Flags().StringVar(v, d.Argument(), "", demoUsage(d))
	}

	cmd.PersistentFlags().BoolVar(&cfg.Logging.Debug, "debug", false, "enable verbose logging to stderr")
	cmd.PersistentFlags().StringVar(&cfg.Logging.File, "log-file", "", "append JSON logs to this file")

	cmd.AddCommand(versionCmd())
	return cmd
}

// collectSelections keeps the demo flags the user actually passed.
func collectSelections(cmd *cobra.Command, values map[string]*string) []domain.Selection {
	var out []domain.Selection
	for _, arg := range demoArguments() {
		if !cmd.Flags().Changed(arg) {
			continue
		}
		out = append(out, domain.Selection{Argument: arg, Value: *values[arg]})
	}
	return out
}

func demoUsage(d ports.Demo) string {
	return "run the " + d.Argument() + " demo: " + strings.Join(d.Options(), "|")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
