/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 * @author Alisher Nurmanov
 */

package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/xmldef/xmldef/pkg/anydoc"
	"github.com/xmldef/xmldef/pkg/xmlio"
)

func newOutlineCmd() *cobra.Command {
	params := xdtParams{}
	cmd := &cobra.Command{
		Use:   "outline <file>",
		Short: "write the structural skeleton of an XML document",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _, err := importFile(cmd, args[0], params)
			if err != nil {
				return err
			}
			return outline(cmd, root, params)
		},
		Args: cobra.ExactArgs(1),
	}
	cmd.Flags().StringVarP(&params.Output, "output", "o", "", "output file name, standard output unless specified")
	cmd.Flags().BoolVar(&params.Progress, "progress", false, "log reading progress")
	return cmd
}

func outline(cmd *cobra.Command, root *anydoc.AnyNode, params xdtParams) error {
	out := io.Writer(cmd.OutOrStdout())
	if params.Output != "" {
		file, err := os.Create(params.Output)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	w := xmlio.NewWriter(out)
	w.SetIndent("", "  ")
	return anydoc.Outline(cmd.Context(), root, w)
}
