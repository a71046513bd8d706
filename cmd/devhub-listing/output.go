package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/v0xg/devhub-listing/internal/pages"
	"gopkg.in/yaml.v3"
)

func checkFormat(format string) error {
	switch format {
	case "text", "", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("unknown output format: %s (supported: text, json, yaml)", format)
	}
}

// progressWriter is where status lines go: stdout for text output, stderr
// when stdout carries JSON or YAML.
func progressWriter(cmd *cobra.Command, format string) io.Writer {
	if format == "json" || format == "yaml" {
		return cmd.ErrOrStderr()
	}
	return cmd.OutOrStdout()
}

func printSnapshot(w io.Writer, s pages.Snapshot, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, row := range rows(s) {
			fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1])
		}
		return tw.Flush()
	default:
		return checkFormat(format)
	}
}

func rows(s pages.Snapshot) [][2]string {
	return [][2]string{
		{"Name", s.Name},
		{"URL end", s.URLEnd},
		{"Manifest URL", s.ManifestURL},
		{"Summary", s.Summary},
		{"Categories", strings.Join(s.Categories, pages.Separator)},
		{"Device types", strings.Join(s.DeviceTypes, pages.Separator)},
		{"Support email", s.Email},
		{"Support website", s.Website},
	}
}

// diff returns the labels of rows whose value changed.
func diff(before, after pages.Snapshot) []string {
	var changed []string
	a, b := rows(before), rows(after)
	for i := range a {
		if a[i][1] != b[i][1] {
			changed = append(changed, a[i][0])
		}
	}
	return changed
}
