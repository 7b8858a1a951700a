package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/akasprzok/legendsnap/internal/charts"
	"github.com/akasprzok/legendsnap/internal/legend"
	"github.com/akasprzok/legendsnap/internal/sink"
	"gopkg.in/yaml.v2"
)

func writeSnapshot(w io.Writer, snap legend.VisibilitySnapshot, output string) error {
	switch output {
	case "json":
		jsonBytes, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling snapshot to JSON: %w", err)
		}
		fmt.Fprintln(w, string(jsonBytes))
	case "yaml":
		yamlBytes, err := yaml.Marshal(map[string]string(snap))
		if err != nil {
			return fmt.Errorf("marshalling snapshot to YAML: %w", err)
		}
		fmt.Fprint(w, string(yamlBytes))
	case "lines":
		sink.Dump(sink.NewWriterSink(w), snap)
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
	return nil
}

// summary is the one-line visible/total count shown under charts. It counts
// legend rows, so series sharing a name are counted separately.
func summary(chart *charts.Chart) string {
	visible := 0
	for i := 0; i < chart.Len(); i++ {
		if chart.At(i).Visible() {
			visible++
		}
	}
	return fmt.Sprintf("%d/%d series visible", visible, chart.Len())
}
