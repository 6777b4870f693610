package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize",
		Short: "Normaliza enums, reconcilia referências e regrava os arquivos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			ctx := ctxOf(cmd)

			out := cmd.OutOrStdout()
			warnings, rewrote := store.LoadResult()
			for _, w := range warnings {
				fmt.Fprintf(out, "aviso: %s\n", w)
			}

			aircraft, err := store.ListAircraft(ctx)
			if err != nil {
				return err
			}
			parts, err := store.ListParts(ctx)
			if err != nil {
				return err
			}
			stages, err := store.ListStages(ctx)
			if err != nil {
				return err
			}
			employees, err := store.ListEmployees(ctx)
			if err != nil {
				return err
			}
			tests, err := store.ListTests(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "aeronaves: %d\npeças: %d\netapas: %d\nfuncionários: %d\ntestes: %d\n",
				len(aircraft), len(parts), len(stages), len(employees), len(tests))
			if rewrote {
				fmt.Fprintln(out, "arquivos regravados")
			} else {
				fmt.Fprintln(out, "nenhuma alteração")
			}
			return nil
		},
	}
}
