package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"geotraits/internal/dataset"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>...",
		Short: "Print kind, counts and bounds of each file without opening the viewer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed int
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FILE\tKIND\tPOINTS\tLINES\tPOLYGONS\tRINGS\tVERTICES\tBOUNDS")
			for _, path := range args {
				d, err := dataset.Load(path)
				if err != nil {
					failed++
					a.log.WithFields(logrus.Fields{"path": path}).WithError(err).Error("info: load failed")
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
					continue
				}
				writeInfo(w, d)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed to load", failed, len(args))
			}
			return nil
		},
	}
}

func writeInfo(w io.Writer, d dataset.Dataset) {
	c := d.Counts()
	bounds := "-"
	if b, ok := d.Bounds(); ok {
		bounds = fmt.Sprintf("[%g %g %g %g]", b.MinX, b.MinY, b.MaxX, b.MaxY)
	}
	fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%s\n",
		d.Source(), d.Kind(), c.Points, c.LineStrings, c.Polygons, c.Rings, c.Vertices, bounds)
}
