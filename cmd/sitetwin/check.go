package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sitetwin/internal/dashboard"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the files the dashboard pages read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}
			checks := dashboard.New(cfg).CheckAssets()

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "STATUS\tFILE\tPATH")
			for _, c := range checks {
				status := "ok"
				switch {
				case !c.Present && c.Required:
					status = "MISSING"
				case !c.Present:
					status = "absent"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", status, c.Name, c.Path)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if missing := dashboard.MissingRequired(checks); len(missing) > 0 {
				return fmt.Errorf("%d required file(s) missing", len(missing))
			}
			return nil
		},
	}
}
