package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openddlab/donorpipe/layout"
	"github.com/openddlab/donorpipe/pipeline"
	"github.com/openddlab/donorpipe/replacement"
	"github.com/openddlab/donorpipe/table"
)

var extractCmd = &cobra.Command{
	Use:   "extract <archive>",
	Short: "Convert a downloaded bundle into a table",
	Long: `Parse the per-record JSON files of a downloaded bundle, apply the
platform layouts and the optional replacement roster, and write the result
as CSV or JSONL.`,
	Example: `  donorpipe extract data.zip --output donations.csv
  donorpipe extract data.zip --format jsonl --replacement replacements.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		layoutFile, _ := cmd.Flags().GetString("layouts")
		replacementFile, _ := cmd.Flags().GetString("replacement")
		output, _ := cmd.Flags().GetString("output")
		format, _ := cmd.Flags().GetString("format")
		strict, _ := cmd.Flags().GetBool("strict")
		flatten, _ := cmd.Flags().GetBool("flatten")
		noLayouts, _ := cmd.Flags().GetBool("no-layouts")

		a, err := pipeline.OpenLocal(args[0])
		if err != nil {
			return err
		}
		defer a.Close()

		opts := []pipeline.LoadOption{
			pipeline.WithSnakeCaseColumns(),
			pipeline.WithProvenance(),
		}

		if !noLayouts {
			layouts := layout.Builtin()
			if layoutFile != "" {
				if layouts, err = layout.LoadFile(layoutFile); err != nil {
					return err
				}
			}
			opts = append(opts, pipeline.WithLayouts(layouts))
		}

		if replacementFile != "" {
			roster, err := replacement.Load(replacementFile)
			if err != nil {
				return err
			}
			opts = append(opts, pipeline.WithReplacement(roster))
		}

		if strict {
			opts = append(opts, pipeline.WithStrictEmpty())
		}
		if flatten {
			opts = append(opts, pipeline.WithFlatten("."))
		}

		t, err := pipeline.LoadTable(cmd.Context(), a, opts...)
		if err != nil {
			return err
		}

		if err := writeTable(t, output, format); err != nil {
			return err
		}

		fmt.Printf("Wrote %d rows, %d columns", t.RowCount(), len(t.Columns))
		if t.SkipCount > 0 {
			fmt.Printf(" (skipped %d malformed records)", t.SkipCount)
		}
		fmt.Println()
		return nil
	},
}

func writeTable(t *table.Table, output, format string) error {
	out := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "csv":
		return t.WriteCSV(out)
	case "jsonl":
		return t.WriteJSONL(out)
	default:
		return fmt.Errorf("unsupported format %q - use csv or jsonl", format)
	}
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().String("layouts", "", "YAML layout spec file (default: built-in platform layouts)")
	extractCmd.Flags().Bool("no-layouts", false, "extract every .json entry, with no layout matching")
	extractCmd.Flags().String("replacement", "", "participant replacement roster CSV")
	extractCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	extractCmd.Flags().String("format", "csv", "output format: csv, jsonl")
	extractCmd.Flags().Bool("strict", false, "fail when zero records survive filtering")
	extractCmd.Flags().Bool("flatten", false, "flatten nested objects into dotted columns")
}
