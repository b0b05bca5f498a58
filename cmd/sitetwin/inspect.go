package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sitetwin/internal/model"
	"sitetwin/internal/service/calculator"
	"sitetwin/internal/service/excel"
	"sitetwin/internal/util"
)

func newInspectCmd() *cobra.Command {
	var (
		sheet      string
		asJSON     bool
		evaMode    bool
		listSheets bool
	)
	cmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Print a workbook sheet the way the dashboard reads it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", path)
			}

			p := excel.NewParser()
			if err := p.OpenPath(path); err != nil {
				return err
			}
			defer p.Close()

			if listSheets {
				sheets, err := p.GetSheets()
				if err != nil {
					return err
				}
				if asJSON {
					return printJSON(sheets)
				}
				for _, name := range sheets {
					fmt.Println(name)
				}
				return nil
			}

			if evaMode {
				rows, err := p.ParseEVA(sheet)
				if err != nil {
					return fmt.Errorf("parse EVA: %w", err)
				}
				return printEVA(calculator.AnalyzeEVA(rows), asJSON)
			}

			table, err := p.ReadTable(sheet)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(table)
			}
			return printTable(table)
		},
	}
	cmd.Flags().StringVar(&sheet, "sheet", "", "sheet name (default: first sheet)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	cmd.Flags().BoolVar(&evaMode, "eva", false, "parse as an EVA workbook and print the analysis")
	cmd.Flags().BoolVar(&listSheets, "sheets", false, "list sheet names and exit")
	return cmd
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printTable(table *model.Table) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(table.Columns, "\t"))
	for _, row := range table.Rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d row(s)\n", table.RowCount())
	return nil
}

func printEVA(summary *model.EVASummary, asJSON bool) error {
	if asJSON {
		return printJSON(summary)
	}
	pct := "n/a"
	if summary.HasPercent {
		pct = util.FormatPercent(summary.PercentComplete)
	}
	fmt.Printf("Activities:         %d\n", len(summary.Rows))
	fmt.Printf("Total Planned Cost: %s\n", util.FormatCurrency(summary.TotalPlannedCost))
	fmt.Printf("Total Actual Cost:  %s\n", util.FormatCurrency(summary.TotalActualCost))
	fmt.Printf("Project %% Complete: %s\n", pct)
	return nil
}
