// Package bootstrap wires the gowc command line.
package bootstrap

import (
	urfavecli "github.com/urfave/cli/v3"
)

const (
	flagLines      = "lines"
	flagWords      = "words"
	flagChars      = "chars"
	flagConfigFile = "config-file"
	flagConfig     = "config"
	flagDebugLog   = "debug-log"
)

func init() {
	urfavecli.VersionFlag = &urfavecli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
	urfavecli.VersionPrinter = printVersion
}

// globalFlags returns all flags for the application.
// --help and --version are provided by urfave/cli.
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.BoolFlag{
			Name:    flagLines,
			Aliases: []string{"l"},
			Usage:   "Count lines",
		},
		&urfavecli.BoolFlag{
			Name:    flagWords,
			Aliases: []string{"w"},
			Usage:   "Count words",
		},
		&urfavecli.BoolFlag{
			Name:    flagChars,
			Aliases: []string{"c"},
			Usage:   "Count characters",
		},
		&urfavecli.StringFlag{
			Name:  flagConfigFile,
			Usage: "Path to configuration file",
		},
		&urfavecli.StringSliceFlag{
			Name:    flagConfig,
			Aliases: []string{"C"},
			Usage:   "Override config values (repeatable): --config=wc.key=value",
		},
		&urfavecli.StringFlag{
			Name:  flagDebugLog,
			Usage: "Path to debug log file",
		},
	}
}
