package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "list aeronaves|pecas|etapas|funcionarios|testes",
		Short:     "Lista os registros de uma coleção",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"aeronaves", "pecas", "etapas", "funcionarios", "testes"},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			ctx := ctxOf(cmd)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			defer tw.Flush()

			switch args[0] {
			case "aeronaves":
				list, err := store.ListAircraft(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(tw, "CÓDIGO\tMODELO\tTIPO\tCAPACIDADE\tALCANCE\tPEÇAS\tETAPAS\tTESTES")
				for _, a := range list {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
						a.Code, a.Model, a.Type, a.Capacity, a.Range, len(a.Parts), len(a.Stages), len(a.Tests))
				}
			case "pecas":
				list, err := store.ListParts(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(tw, "NOME\tTIPO\tFORNECEDOR\tSTATUS")
				for _, p := range list {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Name, p.Type, p.Supplier, p.Status)
				}
			case "etapas":
				list, err := store.ListStages(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(tw, "NOME\tPRAZO\tSTATUS\tFUNCIONÁRIOS")
				for _, st := range list {
					ids := make([]string, len(st.Employees))
					for i, e := range st.Employees {
						ids[i] = e.ID
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", st.Name, st.Deadline, st.Status, strings.Join(ids, ","))
				}
			case "funcionarios":
				list, err := store.ListEmployees(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(tw, "ID\tNOME\tUSUÁRIO\tNÍVEL")
				for _, e := range list {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Username, e.Permission)
				}
			case "testes":
				list, err := store.ListTests(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(tw, "ID\tTIPO\tRESULTADO")
				for _, t := range list {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", t.ID, t.Type, t.Result)
				}
			}
			return nil
		},
	}
}
