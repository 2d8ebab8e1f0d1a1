package main

import (
	"fmt"

	"github.com/dhamidi/jvmdesc/descriptor"
	"github.com/dhamidi/jvmdesc/format"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var kind string

	cmd := &cobra.Command{
		Use:   "parse <descriptor>...",
		Short: "Parse field or method descriptors and print their structure",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoder, err := newEncoder(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			report := &format.Report{}
			for _, arg := range args {
				d, err := parseAs(kind, arg)
				if err != nil {
					return err
				}
				log.Debugf("parsed %q as %s", arg, d)
				report.Descriptors = append(report.Descriptors, format.Parsed{Input: arg, Descriptor: d})
			}

			if err := encoder.Encode(report); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format (line, json)")
	cmd.Flags().StringVarP(&kind, "kind", "k", "any", "descriptor kind to accept (any, field, method)")

	return cmd
}

func parseAs(kind, text string) (descriptor.Descriptor, error) {
	var d descriptor.Descriptor
	var ok bool
	switch kind {
	case "any":
		d, ok = descriptor.ParseDescriptor(text)
	case "field":
		d, ok = descriptor.ParseFieldType(text)
	case "method":
		d, ok = descriptor.ParseMethodType(text)
	default:
		return nil, fmt.Errorf("unknown kind: %s (expected any, field or method)", kind)
	}
	if !ok && kind == "any" {
		return nil, fmt.Errorf("invalid descriptor %q", text)
	}
	if !ok {
		return nil, fmt.Errorf("invalid %s descriptor %q", kind, text)
	}
	return d, nil
}
