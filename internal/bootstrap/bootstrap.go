package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/chmouel/gowc/internal/buildinfo"
	"github.com/chmouel/gowc/internal/config"
	"github.com/chmouel/gowc/internal/count"
	"github.com/chmouel/gowc/internal/log"
	"github.com/chmouel/gowc/internal/report"
	urfavecli "github.com/urfave/cli/v3"
	"golang.org/x/term"
)

const appName = "gowc"

// Run parses args (program name first) and counts every input.
// Per-input failures are reported on stderr and do not make Run fail;
// only usage and configuration override errors are returned.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	return newCommand(stdin, stdout, stderr).Run(ctx, args)
}

func newCommand(stdin io.Reader, stdout, stderr io.Writer) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                      appName,
		Usage:                     "Count lines, words and characters",
		ArgsUsage:                 "[FILE...]",
		Version:                   buildinfo.Version(),
		Flags:                     globalFlags(),
		HideHelpCommand:           true,
		UseShortOptionHandling:    true,
		DisableSliceFlagSeparator: true,
		Reader:                    stdin,
		Writer:                    stdout,
		ErrWriter:                 stderr,
		Action:                    runCount,
	}
}

// runCount is the default action.
func runCount(_ context.Context, cmd *urfavecli.Command) error {
	root := cmd.Root()
	stdin, stdout, stderr := root.Reader, root.Writer, root.ErrWriter

	cfg, err := loadConfig(stderr, cmd.String(flagConfigFile), cmd.StringSlice(flagConfig))
	if err != nil {
		return err
	}

	setupDebugLog(stderr, cmd.String(flagDebugLog), cfg)
	defer func() {
		if err := log.Close(); err != nil {
			fmt.Fprintf(stderr, "Error closing debug log: %v\n", err)
		}
	}()

	sel := resolveSelection(stderr, report.Selection{
		Lines: cmd.Bool(flagLines),
		Words: cmd.Bool(flagWords),
		Chars: cmd.Bool(flagChars),
	}, cfg)

	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		paths = []string{count.StdinName}
		if isTerminal(stdin) {
			log.Printf("reading from interactive terminal")
		}
	}

	formatter := report.NewFormatter(sel, cfg.FieldWidth)
	total := countInputs(paths, stdin, stdout, stderr, formatter)
	log.Printf("processed %d inputs, total %+v", len(paths), total)
	return nil
}

// countInputs counts paths in order and prints one line per input that
// could be read. Failures go to errOut and the loop moves on. A total line
// follows when more than one input was given.
func countInputs(paths []string, stdin io.Reader, out, errOut io.Writer, f report.Formatter) count.FileInfo {
	var total count.FileInfo

	for _, path := range paths {
		info, err := count.CountPath(path, stdin)
		if err != nil {
			log.Printf("count %q: %v", path, err)
			fmt.Fprintln(errOut, err)
			continue
		}
		log.Printf("count %q: %+v", path, info)

		total = total.Add(info)
		fmt.Fprintln(out, f.Line(info, path))
	}

	if len(paths) > 1 {
		fmt.Fprintln(out, f.Total(total))
	}
	return total
}

// resolveSelection falls back to the configured default fields, and to all
// three counters, when no counter flag was given.
func resolveSelection(stderr io.Writer, flags report.Selection, cfg *config.AppConfig) report.Selection {
	if !flags.Empty() {
		return flags
	}

	sel, err := report.ParseFields(cfg.DefaultFields)
	if err != nil {
		fmt.Fprintf(stderr, "Error in default_fields: %v\n", err)
		return report.All()
	}
	return sel.WithDefaults()
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec
}

func printVersion(cmd *urfavecli.Command) {
	fmt.Fprint(cmd.Root().Writer, buildinfo.Get().Summary(cmd.Root().Name))
}
