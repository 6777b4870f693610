package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aerotrack/internal/common"
	"aerotrack/internal/service/credential"
	"aerotrack/internal/service/report"
	"aerotrack/internal/storage/artifact"
)

func (c *cli) reportCmd() *cobra.Command {
	var req report.Request
	var username, password string
	var save bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Gera o relatório de entrega de uma aeronave",
		Long: `Gera o relatório de entrega. Apenas ADMINISTRADOR e ENGENHEIRO podem gerar relatórios.
Com --salvar o texto é gravado no diretório de relatórios e registrado em relatorios.json.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			ctx := ctxOf(cmd)

			if password == "" {
				if password, err = promptPassword(cmd, "Senha: "); err != nil {
					return err
				}
			}
			e, err := store.GetEmployeeByUsername(ctx, username)
			if err != nil || !credential.VerifyPassword(password, e.PasswordHash, e.Salt) {
				return common.Unauthorized("Credenciais inválidas")
			}

			svc := report.NewService(store, store, artifact.NewFS(c.reportsDir))
			out := cmd.OutOrStdout()
			if !save {
				text, err := svc.Preview(ctx, e, req)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, text)
				return nil
			}

			rep, err := svc.Generate(ctx, e, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, rep.Content)
			fmt.Fprintf(cmd.ErrOrStderr(), "relatório salvo: %s\n", rep.File)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.AircraftCode, "aeronave", "", "código da aeronave")
	cmd.Flags().StringVar(&req.Client, "cliente", "", "nome do cliente")
	cmd.Flags().StringVar(&req.DeliveryDate, "entrega", "", "data de entrega prevista")
	cmd.Flags().BoolVar(&save, "salvar", false, "gravar o arquivo do relatório")
	cmd.Flags().StringVar(&username, "usuario", "", "login de quem gera o relatório")
	cmd.Flags().StringVar(&password, "senha", "", "senha (se omitida, é pedida)")
	cmd.MarkFlagRequired("aeronave")
	cmd.MarkFlagRequired("usuario")
	return cmd
}
