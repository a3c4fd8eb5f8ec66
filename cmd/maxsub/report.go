package main

import (
	"fmt"
	"io"

	"github.com/mbzadegan/PhD-Research/algo/maxsub"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

func writeReport(w io.Writer, format string, c maxsub.Candidate) error {
	switch format {
	case formatText:
		_, err := fmt.Fprintf(w, "Maximum subarray found between indices %d and %d\nMaximum sum: %d\n", c.Start, c.End, c.Sum)
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, formatText, formatYAML)
	}
}
