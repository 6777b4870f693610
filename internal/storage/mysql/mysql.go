package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"

	"aerotrack/internal/config"
)

// Storage - индекс сформированных отчётов в MySQL.
type Storage struct {
	db *sql.DB
}

func DSN(cfg config.MySQL) string {
	c := mysql.NewConfig()
	c.User = cfg.DBUser
	c.Passwd = cfg.DBPassword
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(cfg.DBHost, strconv.Itoa(cfg.DBPort))
	c.DBName = cfg.DBName
	c.ParseTime = cfg.ParseTime
	return c.FormatDSN()
}

func New(ctx context.Context, cfg config.MySQL) (*Storage, error) {
	const op = "storage.mysql.New"

	db, err := sql.Open("mysql", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s, err := NewWithDB(ctx, db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

// NewWithDB проверяет соединение и создаёт таблицу, если её нет.
func NewWithDB(ctx context.Context, db *sql.DB) (*Storage, error) {
	const op = "storage.mysql.NewWithDB"

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("%s: ping failed: %w", op, err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("%s: ошибка создания таблицы relatorios: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS relatorios (
    id              VARCHAR(64)  NOT NULL PRIMARY KEY,
    aeronave_codigo VARCHAR(64)  NOT NULL,
    aeronave_modelo VARCHAR(255) NOT NULL DEFAULT '',
    cliente         VARCHAR(255) NOT NULL DEFAULT '',
    data_entrega    VARCHAR(64)  NOT NULL DEFAULT '',
    data_geracao    VARCHAR(32)  NOT NULL DEFAULT '',
    tipo            VARCHAR(32)  NOT NULL DEFAULT 'entrega',
    arquivo         VARCHAR(255) NOT NULL DEFAULT '',
    conteudo        MEDIUMTEXT   NOT NULL,
    created_at      TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
    INDEX idx_relatorios_aeronave (aeronave_codigo)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`
