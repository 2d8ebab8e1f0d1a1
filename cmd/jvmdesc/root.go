package main

import (
	"fmt"
	"io"

	"github.com/dhamidi/jvmdesc/format"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("jvmdesc")

func newRootCmd() *cobra.Command {
	var verbosity int
	var logPath string

	rootCmd := &cobra.Command{
		Use:          "jvmdesc",
		Short:        "Inspect JVM field and method descriptors",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var path *string
			if logPath != "" {
				path = &logPath
			}
			commonlog.Configure(verbosity, path)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newClassCmd())

	return rootCmd
}

func newEncoder(name string, w io.Writer) (format.Encoder, error) {
	switch name {
	case "line":
		return format.NewLineEncoder(w), nil
	case "json":
		return format.NewJSONEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s (expected line or json)", name)
	}
}
