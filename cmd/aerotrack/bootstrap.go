package main

import (
	"context"
	"fmt"
	"log/slog"

	"aerotrack/internal/service/credential"
	"aerotrack/internal/storage"
)

type adminStore interface {
	ListEmployees(ctx context.Context) ([]*storage.Employee, error)
	CreateEmployee(ctx context.Context, e storage.Employee) (*storage.Employee, error)
}

// ensureAdmin заводит администратора, если в системе ещё нет ни одного сотрудника.
func ensureAdmin(ctx context.Context, log *slog.Logger, store adminStore, login, password string) error {
	const op = "main.ensureAdmin"

	employees, err := store.ListEmployees(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if len(employees) > 0 {
		return nil
	}
	if password == "" {
		log.Warn("no employees and ADMIN_PASS is empty, nobody can log in", slog.String("op", op))
		return nil
	}

	h, err := credential.GenerateHash(password)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = store.CreateEmployee(ctx, storage.Employee{
		ID:           "admin",
		Name:         "Administrador",
		Phone:        "(00) 00000-0000",
		Address:      "Não informado",
		Username:     login,
		PasswordHash: h.Hash,
		Salt:         h.Salt,
		Permission:   storage.PermissionAdmin,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("default admin created", slog.String("op", op), slog.String("usuario", login))
	return nil
}
