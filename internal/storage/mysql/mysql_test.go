package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aerotrack/internal/common"
	"aerotrack/internal/config"
	"aerotrack/internal/storage"
)

var testDB *sql.DB

// Интеграционные тесты идут только при заданном AEROTRACK_TEST_MYSQL_DSN,
// например root:@tcp(localhost:3306)/aerotrack_test?parseTime=true
func TestMain(m *testing.M) {
	dsn := os.Getenv("AEROTRACK_TEST_MYSQL_DSN")
	if dsn != "" {
		var err error
		testDB, err = sql.Open("mysql", dsn)
		if err != nil {
			panic(fmt.Errorf("не удалось подключиться к тестовой БД: %w", err))
		}
		if err := testDB.Ping(); err != nil {
			panic(fmt.Errorf("ping failed: %w", err))
		}
	}

	code := m.Run()

	if testDB != nil {
		testDB.Close()
	}
	os.Exit(code)
}

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	if testDB == nil {
		t.Skip("AEROTRACK_TEST_MYSQL_DSN not set")
	}

	s, err := NewWithDB(context.Background(), testDB)
	require.NoError(t, err)

	_, err = testDB.Exec(`DELETE FROM relatorios`)
	require.NoError(t, err)
	return s
}

func TestDSN(t *testing.T) {
	dsn := DSN(config.MySQL{
		DBUser:     "user",
		DBPassword: "password",
		DBHost:     "localhost",
		DBPort:     3306,
		DBName:     "aerotrack",
		ParseTime:  true,
	})

	assert.Equal(t, "user:password@tcp(localhost:3306)/aerotrack?parseTime=true", dsn)
}

func TestReports_CRUD(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	r := storage.Report{
		ID:            "r1",
		AircraftCode:  "AER001",
		AircraftModel: "Boeing 737",
		Client:        "Acme",
		DeliveryDate:  "2025-01-01",
		GeneratedAt:   "2024-12-01",
		Kind:          storage.ReportKindDelivery,
		File:          "relatorio_AER001_1.txt",
		Content:       "texto",
	}
	require.NoError(t, s.SaveReport(ctx, r))
	assert.ErrorIs(t, s.SaveReport(ctx, r), common.ErrConflict)

	got, err := s.GetReport(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, r, *got)

	client := "Outra"
	upd, err := s.UpdateReport(ctx, "r1", storage.ReportUpdate{Client: &client})
	require.NoError(t, err)
	assert.Equal(t, "Outra", upd.Client)
	assert.Equal(t, "texto", upd.Content)

	list, err := s.ListReports(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, s.DeleteReport(ctx, "r1"))
	assert.ErrorIs(t, s.DeleteReport(ctx, "r1"), common.ErrNotFound)

	_, err = s.UpdateReport(ctx, "r1", storage.ReportUpdate{Client: &client})
	assert.ErrorIs(t, err, common.ErrNotFound)
}
