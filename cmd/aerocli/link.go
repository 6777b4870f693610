package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) linkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Associa registros",
		Long: `Associa uma peça, etapa ou teste a uma aeronave,
ou um funcionário a uma etapa.`,
	}

	var code, name, id, stage string

	part := &cobra.Command{
		Use:   "peca",
		Short: "Associa uma peça a uma aeronave",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			if _, err := store.AttachPart(ctxOf(cmd), code, name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "peça %s associada à aeronave %s\n", name, code)
			return nil
		},
	}
	part.Flags().StringVar(&code, "aeronave", "", "código da aeronave")
	part.Flags().StringVar(&name, "nome", "", "nome da peça")
	part.MarkFlagRequired("aeronave")
	part.MarkFlagRequired("nome")

	st := &cobra.Command{
		Use:   "etapa",
		Short: "Associa uma etapa a uma aeronave",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			if _, err := store.AttachStage(ctxOf(cmd), code, name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "etapa %s associada à aeronave %s\n", name, code)
			return nil
		},
	}
	st.Flags().StringVar(&code, "aeronave", "", "código da aeronave")
	st.Flags().StringVar(&name, "nome", "", "nome da etapa")
	st.MarkFlagRequired("aeronave")
	st.MarkFlagRequired("nome")

	test := &cobra.Command{
		Use:   "teste",
		Short: "Associa um teste existente a uma aeronave",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			if _, err := store.AttachTest(ctxOf(cmd), code, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "teste %s associado à aeronave %s\n", id, code)
			return nil
		},
	}
	test.Flags().StringVar(&code, "aeronave", "", "código da aeronave")
	test.Flags().StringVar(&id, "id", "", "id do teste")
	test.MarkFlagRequired("aeronave")
	test.MarkFlagRequired("id")

	employee := &cobra.Command{
		Use:   "funcionario",
		Short: "Associa um funcionário a uma etapa",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			if _, err := store.AssignEmployee(ctxOf(cmd), stage, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "funcionário %s associado à etapa %s\n", id, stage)
			return nil
		},
	}
	employee.Flags().StringVar(&stage, "etapa", "", "nome da etapa")
	employee.Flags().StringVar(&id, "id", "", "id do funcionário")
	employee.MarkFlagRequired("etapa")
	employee.MarkFlagRequired("id")

	cmd.AddCommand(part, st, test, employee)
	return cmd
}
