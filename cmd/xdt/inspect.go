/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 * @author Alisher Nurmanov
 */

package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/xmldef/xmldef/pkg/anydoc"
	"github.com/xmldef/xmldef/pkg/mapper"
)

func newInspectCmd() *cobra.Command {
	params := xdtParams{}
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "print the structural summary of an XML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, stats, err := importFile(cmd, args[0], params)
			if err != nil {
				return err
			}
			return report(cmd, args[0], root, stats)
		},
	}
	cmd.Flags().BoolVar(&params.Progress, "progress", false, "log reading progress")
	return cmd
}

func importFile(cmd *cobra.Command, path string, params xdtParams) (*anydoc.AnyNode, mapper.ImportStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mapper.ImportStats{}, err
	}

	if logger.IsVerbose() {
		logger.Verbose("run", uuid.NewString(), "reads", path)
	}

	var opts []mapper.Option
	if params.Progress {
		opts = append(opts, mapper.WithProgress(func(f float64) {
			logger.Info(fmt.Sprintf("%s: read %.0f%%", path, f*100))
		}))
	}

	return anydoc.Import(cmd.Context(), data, opts...)
}

func report(cmd *cobra.Command, path string, root *anydoc.AnyNode, stats mapper.ImportStats) error {
	out := cmd.OutOrStdout()
	s := anydoc.Stats(root)

	fmt.Fprintf(out, "%s: %d elements, %d attributes, depth %d\n", path, s.Elements, s.Attrs, s.MaxDepth)

	tags := maps.Keys(s.Tags)
	slices.Sort(tags)
	for _, tag := range tags {
		fmt.Fprintf(out, "  %s: %d\n", tag, s.Tags[tag])
	}

	if d := diagnostics(stats); d > 0 {
		fmt.Fprintf(out, "diagnostics: %d, details logged above\n", d)
	} else {
		fmt.Fprintln(out, "diagnostics: none")
	}
	return nil
}

func diagnostics(stats mapper.ImportStats) int {
	return stats.UnmatchedAttrs + stats.InvalidValues +
		stats.UnmatchedChildren + stats.UnsupportedChildren +
		stats.OverCounts + stats.UnderCounts
}
