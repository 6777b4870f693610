package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"aerotrack/internal/storage/jsonfile"
)

// cli держит общие флаги всех команд.
type cli struct {
	dataDir    string
	reportsDir string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "aerocli",
		Short: "Gerenciamento local dos registros de produção de aeronaves",
		Long: `aerocli trabalha diretamente com os arquivos JSON do diretório de dados,
sem passar pelo servidor HTTP.

Comandos:
  normalize - normaliza e reconcilia os registros, regravando se necessário
  list      - lista aeronaves, peças, etapas, funcionários ou testes
  add       - cadastra um registro
  link      - associa registros entre si
  report    - gera o relatório de entrega de uma aeronave`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&c.dataDir, "data", "registros", "diretório com os arquivos JSON")
	root.PersistentFlags().StringVar(&c.reportsDir, "reports", "relatorios", "diretório dos arquivos de relatório")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log detalhado")

	root.AddCommand(
		c.normalizeCmd(),
		c.listCmd(),
		c.addCmd(),
		c.linkCmd(),
		c.reportCmd(),
	)

	return root
}

func (c *cli) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func (c *cli) openStore(cmd *cobra.Command) (*jsonfile.Storage, error) {
	store, err := jsonfile.New(ctxOf(cmd), c.logger(cmd), c.dataDir)
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", c.dataDir, err)
	}
	return store, nil
}

func ctxOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
