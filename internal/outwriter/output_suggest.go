package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/trafficlens/trafficlens/internal/contract"
	"github.com/trafficlens/trafficlens/schema"
)

var (
	validColor   = color.New(color.FgGreen, color.Bold)
	invalidColor = color.New(color.FgRed, color.Bold)
)

// PrintValidation outputs a dimension validation verdict, dispatching based
// on the output format configured.
func PrintValidation(validation schema.Validation, sel schema.DimensionSelection, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, validation)
		}, "Wrote JSON")

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"rank", "chart_type"}, func(cw *csv.Writer) error {
				for i, ct := range validation.SuggestedTypes {
					if err := cw.Write([]string{strconv.Itoa(i + 1), string(ct)}); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")

	default:
		return printValidationTable(validation, sel, cfg)
	}
}

// printValidationTable prints the verdict and the suggested chart types.
func printValidationTable(validation schema.Validation, sel schema.DimensionSelection, cfg *contract.Config) error {
	verdict := "This combination of dimensions cannot be charted"
	if validation.Valid {
		verdict = "Valid dimension selection"
	}

	switch {
	case cfg.UseColors && validation.Valid:
		_, _ = validColor.Println(verdict)
	case cfg.UseColors:
		_, _ = invalidColor.Println(verdict)
	default:
		fmt.Println(verdict)
	}

	fmt.Printf("Dimensions: time=%s location=%s categories=%v\n",
		orNone(sel.TimeField), orNone(sel.LocationField), sel.CategoryFields)

	if !validation.Valid {
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Rank", "Chart Type"})
	var data [][]string
	for i, ct := range validation.SuggestedTypes {
		data = append(data, []string{strconv.Itoa(i + 1), string(ct)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
