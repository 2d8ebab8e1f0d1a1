package main

import (
	"fmt"

	"github.com/dhamidi/jvmdesc/classfile"
	"github.com/dhamidi/jvmdesc/format"
	"github.com/spf13/cobra"
)

func newClassCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "class <file.class>",
		Short: "List the fields and methods of a class file with their parsed descriptors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			encoder, err := newEncoder(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			cf, err := classfile.ParseFile(filename)
			if err != nil {
				return fmt.Errorf("parse class file: %w", err)
			}

			if err := encoder.Encode(&format.Report{Class: format.NewClassReport(cf)}); err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			errs := cf.CheckDescriptors()
			for _, err := range errs {
				log.Errorf("%s: %s", filename, err)
			}
			if len(errs) > 0 {
				return fmt.Errorf("%s: %d invalid descriptors", filename, len(errs))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format (line, json)")

	return cmd
}
