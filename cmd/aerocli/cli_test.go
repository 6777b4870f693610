package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, "", args...)
	require.NoError(t, err, "aerocli %s", strings.Join(args, " "))
	return out
}

func TestCLI_Scenario(t *testing.T) {
	data := t.TempDir()
	reports := t.TempDir()
	base := []string{"--data", data, "--reports", reports}
	with := func(args ...string) []string { return append(append([]string{}, args...), base...) }

	mustRun(t, with("add", "aeronave", "--codigo", "AER001", "--modelo", "Boeing 737", "--tipo", "comercial", "--capacidade", "180", "--alcance", "5000")...)
	mustRun(t, with("add", "peca", "--nome", "Motor Turbina", "--tipo", "IMPORTADA", "--fornecedor", "Rolls-Royce", "--status", "PRONTA")...)
	mustRun(t, with("add", "etapa", "--nome", "Montagem", "--prazo", "2025-01-10")...)
	mustRun(t, with("add", "teste", "--id", "t1", "--tipo", "ELETRICO", "--resultado", "APROVADO")...)
	mustRun(t, with("add", "funcionario", "--id", "F001", "--nome", "Ana", "--usuario", "ana", "--senha", "eng123", "--nivel", "ENGENHEIRO")...)

	// пароль из stdin, когда флаг не задан
	_, err := run(t, "op123\n", with("add", "funcionario", "--id", "F003", "--nome", "Carlos", "--usuario", "carlos")...)
	require.NoError(t, err)

	mustRun(t, with("link", "peca", "--aeronave", "AER001", "--nome", "Motor Turbina")...)
	mustRun(t, with("link", "etapa", "--aeronave", "AER001", "--nome", "Montagem")...)
	mustRun(t, with("link", "teste", "--aeronave", "AER001", "--id", "t1")...)
	mustRun(t, with("link", "funcionario", "--etapa", "Montagem", "--id", "F003")...)

	_, err = run(t, "", with("link", "peca", "--aeronave", "AER001", "--nome", "Motor Turbina")...)
	assert.Error(t, err)

	out := mustRun(t, with("list", "aeronaves")...)
	assert.Contains(t, out, "AER001")
	assert.Contains(t, out, "COMERCIAL")

	out = mustRun(t, with("list", "etapas")...)
	assert.Contains(t, out, "F003")

	out = mustRun(t, with("report", "--aeronave", "AER001", "--cliente", "Acme", "--usuario", "ana", "--senha", "eng123")...)
	assert.Contains(t, out, "- Motor Turbina (Fornecedor: Rolls-Royce, Tipo: IMPORTADA)")
	entries, err := os.ReadDir(reports)
	require.NoError(t, err)
	assert.Empty(t, entries)

	mustRun(t, with("report", "--aeronave", "AER001", "--usuario", "ana", "--senha", "eng123", "--salvar")...)
	entries, err = os.ReadDir(reports)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "relatorio_AER001_"))
	_, err = os.Stat(filepath.Join(data, "relatorios.json"))
	assert.NoError(t, err)

	_, err = run(t, "", with("report", "--aeronave", "AER001", "--usuario", "carlos", "--senha", "op123")...)
	assert.ErrorContains(t, err, "Permissão insuficiente")

	_, err = run(t, "", with("report", "--aeronave", "AER001", "--usuario", "ana", "--senha", "errada")...)
	assert.ErrorContains(t, err, "Credenciais inválidas")
}

func TestCLI_NormalizeRewritesLegacyFiles(t *testing.T) {
	data := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(data, "etapas.json"),
		[]byte(`[{"nome":"Pintura","prazo":"2025-03-01","status":"pendente","funcionarios":[]}]`), 0o644))

	out := mustRun(t, "normalize", "--data", data)
	assert.Contains(t, out, "etapas: 1")
	assert.Contains(t, out, "arquivos regravados")

	raw, err := os.ReadFile(filepath.Join(data, "etapas.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"PENDENTE"`)

	out = mustRun(t, "normalize", "--data", data)
	assert.Contains(t, out, "nenhuma alteração")
}

func TestCLI_ListRejectsUnknownCollection(t *testing.T) {
	_, err := run(t, "", "list", "avioes", "--data", t.TempDir())
	assert.Error(t, err)
}
