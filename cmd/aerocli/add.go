package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"aerotrack/internal/service/credential"
	"aerotrack/internal/storage"
)

func (c *cli) addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Cadastra um registro",
	}
	cmd.AddCommand(
		c.addAircraftCmd(),
		c.addPartCmd(),
		c.addStageCmd(),
		c.addEmployeeCmd(),
		c.addTestCmd(),
	)
	return cmd
}

func (c *cli) addAircraftCmd() *cobra.Command {
	var a storage.Aircraft
	var kind string

	cmd := &cobra.Command{
		Use:   "aeronave",
		Short: "Cadastra uma aeronave",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if a.Type, err = storage.ParseAircraftType(kind); err != nil {
				return err
			}

			store, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			created, err := store.CreateAircraft(ctxOf(cmd), a)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "aeronave %s cadastrada\n", created.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&a.Code, "codigo", "", "código da aeronave")
	cmd.Flags().StringVar(&a.Model, "modelo", "", "modelo")
	cmd.Flags().StringVar(&kind, "tipo", "", "COMERCIAL ou MILITAR")
	cmd.Flags().IntVar(&a.Capacity, "capacidade", 0, "capacidade de passageiros")
	cmd.Flags().IntVar(&a.Range, "alcance", 0, "alcance em km")
	cmd.MarkFlagRequired("codigo")
	cmd.MarkFlagRequired("tipo")
	return cmd
}

func (c *cli) addPartCmd() *cobra.Command {
	var p storage.Part
	var kind, status string

	cmd := &cobra.Command{
		Use:   "peca",
		Short: "Cadastra uma peça",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if p.Type, err = storage.ParsePartType(kind); err != nil {
				return err
			}
			if status != "" {
				if p.Status, err = storage.ParsePartStatus(status); err != nil {
					return err
				}
			}

			store, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			created, err := store.CreatePart(ctxOf(cmd), p)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "peça %s cadastrada (%s)\n", created.Name, created.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&p.Name, "nome", "", "nome da peça")
	cmd.Flags().StringVar(&kind, "tipo", "", "NACIONAL ou IMPORTADA")
	cmd.Flags().StringVar(&p.Supplier, "fornecedor", "", "fornecedor")
	cmd.Flags().StringVar(&status, "status", "", "EM_PRODUCAO, EM_TRANSPORTE ou PRONTA")
	cmd.MarkFlagRequired("nome")
	cmd.MarkFlagRequired("tipo")
	return cmd
}

func (c *cli) addStageCmd() *cobra.Command {
	var st storage.Stage
	var status string

	cmd := &cobra.Command{
		Use:   "etapa",
		Short: "Cadastra uma etapa de produção",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if status != "" {
				var err error
				if st.Status, err = storage.ParseStageStatus(status); err != nil {
					return err
				}
			}

			store, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			created, err := store.CreateStage(ctxOf(cmd), st)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "etapa %s cadastrada (%s)\n", created.Name, created.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&st.Name, "nome", "", "nome da etapa")
	cmd.Flags().StringVar(&st.Deadline, "prazo", "", "prazo")
	cmd.Flags().StringVar(&status, "status", "", "PENDENTE, ANDAMENTO ou CONCLUIDA")
	cmd.MarkFlagRequired("nome")
	return cmd
}

func (c *cli) addEmployeeCmd() *cobra.Command {
	var e storage.Employee
	var level, password string

	cmd := &cobra.Command{
		Use:   "funcionario",
		Short: "Cadastra um funcionário",
		Long:  "Cadastra um funcionário. Sem --senha a senha é pedida no terminal.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if e.Permission, err = storage.ParsePermissionLevel(level); err != nil {
				return err
			}

			if password == "" {
				if password, err = promptPassword(cmd, "Senha: "); err != nil {
					return err
				}
			}
			if strings.TrimSpace(password) == "" {
				return fmt.Errorf("senha é obrigatória")
			}

			h, err := credential.GenerateHash(password)
			if err != nil {
				return err
			}
			e.PasswordHash, e.Salt = h.Hash, h.Salt

			store, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			created, err := store.CreateEmployee(ctxOf(cmd), e)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "funcionário %s cadastrado (%s)\n", created.ID, created.Permission)
			return nil
		},
	}

	cmd.Flags().StringVar(&e.ID, "id", "", "identificador")
	cmd.Flags().StringVar(&e.Name, "nome", "", "nome")
	cmd.Flags().StringVar(&e.Phone, "telefone", "", "telefone")
	cmd.Flags().StringVar(&e.Address, "endereco", "", "endereço")
	cmd.Flags().StringVar(&e.Username, "usuario", "", "login")
	cmd.Flags().StringVar(&password, "senha", "", "senha (se omitida, é pedida)")
	cmd.Flags().StringVar(&level, "nivel", "OPERADOR", "ADMINISTRADOR, ENGENHEIRO ou OPERADOR")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("usuario")
	return cmd
}

func (c *cli) addTestCmd() *cobra.Command {
	var t storage.Test
	var kind, result string

	cmd := &cobra.Command{
		Use:   "teste",
		Short: "Cadastra um teste",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if t.Type, err = storage.ParseTestType(kind); err != nil {
				return err
			}
			if result != "" {
				if t.Result, err = storage.ParseTestResult(result); err != nil {
					return err
				}
			}

			store, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			created, err := store.CreateTest(ctxOf(cmd), t)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "teste %s cadastrado (%s: %s)\n", created.ID, created.Type, created.Result)
			return nil
		},
	}

	cmd.Flags().StringVar(&t.ID, "id", "", "identificador (gerado se omitido)")
	cmd.Flags().StringVar(&kind, "tipo", "", "ELETRICO, HIDRAULICO ou AERODINAMICO")
	cmd.Flags().StringVar(&result, "resultado", "", "APROVADO ou REPROVADO")
	cmd.MarkFlagRequired("tipo")
	return cmd
}
