package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"aerotrack/internal/service/normalize"
	"aerotrack/internal/storage"
)

const (
	fileAircraft  = "aeronaves.json"
	fileParts     = "pecas.json"
	fileStages    = "etapas.json"
	fileEmployees = "funcionarios.json"
	fileTests     = "testes.json"
	fileReports   = "relatorios.json"
)

// Storage держит граф сущностей в памяти и после каждого изменения
// перезаписывает затронутые файлы коллекций целиком.
type Storage struct {
	mu  sync.Mutex
	dir string
	log *slog.Logger

	aircraft  []*storage.Aircraft
	parts     []*storage.Part
	stages    []*storage.Stage
	employees []*storage.Employee
	tests     []*storage.Test
	reports   []*storage.Report

	// итог последней загрузки
	loadWarnings []string
	loadRewrote  bool
}

// employeeRecord - формат funcionarios.json, в отличие от API с хешем и солью.
type employeeRecord struct {
	ID         string                  `json:"id"`
	Name       string                  `json:"nome"`
	Phone      string                  `json:"telefone"`
	Address    string                  `json:"endereco"`
	Username   string                  `json:"usuario"`
	Hash       string                  `json:"senhaHash"`
	Salt       string                  `json:"salt"`
	Permission storage.PermissionLevel `json:"nivelPermissao"`
}

// New читает все коллекции из dir, нормализует и связывает их.
// Если при загрузке что-то поменялось, всё пересохраняется.
func New(ctx context.Context, log *slog.Logger, dir string) (*Storage, error) {
	const op = "storage.jsonfile.New"

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: ошибка создания каталога %s: %w", op, dir, err)
	}

	s := &Storage{dir: dir, log: log}

	var raw normalize.Raw
	var reports []*storage.Report

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() (err error) { raw.Aircraft, err = s.readRecords(fileAircraft); return })
	g.Go(func() (err error) { raw.Parts, err = s.readRecords(fileParts); return })
	g.Go(func() (err error) { raw.Stages, err = s.readRecords(fileStages); return })
	g.Go(func() (err error) { raw.Employees, err = s.readRecords(fileEmployees); return })
	g.Go(func() (err error) { raw.Tests, err = s.readRecords(fileTests); return })
	g.Go(func() error { return s.readInto(fileReports, &reports) })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res, err := normalize.Build(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for _, w := range res.Warnings {
		log.Warn("inconsistent record on load", slog.String("op", op), slog.String("detail", w))
	}

	s.aircraft = res.Graph.Aircraft
	s.parts = res.Graph.Parts
	s.stages = res.Graph.Stages
	s.employees = res.Graph.Employees
	s.tests = res.Graph.Tests
	s.reports = reports
	s.loadWarnings = res.Warnings
	s.loadRewrote = res.Dirty

	if res.Dirty {
		log.Info("records normalized on load, saving", slog.String("op", op))
		if err := s.save(fileAircraft, fileParts, fileStages, fileEmployees, fileTests); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	log.Info("records loaded",
		slog.Int("aircraft", len(s.aircraft)),
		slog.Int("parts", len(s.parts)),
		slog.Int("stages", len(s.stages)),
		slog.Int("employees", len(s.employees)),
		slog.Int("tests", len(s.tests)),
		slog.Int("reports", len(s.reports)),
	)

	return s, nil
}

func (s *Storage) Dir() string {
	return s.dir
}

// LoadResult - предупреждения последней загрузки и были ли файлы перезаписаны.
func (s *Storage) LoadResult() ([]string, bool) {
	return s.loadWarnings, s.loadRewrote
}

func (s *Storage) lock(ctx context.Context) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	return s.mu.Unlock, nil
}

func (s *Storage) readRecords(name string) ([]normalize.Record, error) {
	var recs []normalize.Record
	if err := s.readInto(name, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// readInto считает отсутствующий или пустой файл пустой коллекцией.
func (s *Storage) readInto(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("ошибка чтения %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("ошибка разбора %s: %w", name, err)
	}
	return nil
}

// save перезаписывает перечисленные коллекции. Вызывается под s.mu.
func (s *Storage) save(names ...string) error {
	const op = "storage.jsonfile.save"

	var g errgroup.Group
	for _, name := range names {
		v := s.collection(name)
		g.Go(func() error { return s.writeJSON(name, v) })
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// checkpoint запоминает списки коллекций и значения всех записей.
// Возвращённая функция возвращает граф в это состояние. Вызывается под s.mu.
func (s *Storage) checkpoint() func() {
	aircraft, undoAircraft := keep(s.aircraft)
	parts, undoParts := keep(s.parts)
	stages, undoStages := keep(s.stages)
	employees, undoEmployees := keep(s.employees)
	tests, undoTests := keep(s.tests)
	reports, undoReports := keep(s.reports)

	return func() {
		undoAircraft()
		undoParts()
		undoStages()
		undoEmployees()
		undoTests()
		undoReports()
		s.aircraft, s.parts, s.stages = aircraft, parts, stages
		s.employees, s.tests, s.reports = employees, tests, reports
	}
}

// commit сохраняет файлы, а если запись не удалась, откатывает граф к cp.
func (s *Storage) commit(cp func(), names ...string) error {
	if err := s.save(names...); err != nil {
		cp()
		return err
	}
	return nil
}

func keep[T any](items []*T) ([]*T, func()) {
	list := slices.Clone(items)
	values := make([]T, len(items))
	for i, it := range items {
		values[i] = *it
	}
	return list, func() {
		for i, it := range list {
			*it = values[i]
		}
	}
}

func (s *Storage) collection(name string) any {
	switch name {
	case fileAircraft:
		return nonNil(s.aircraft)
	case fileParts:
		return nonNil(s.parts)
	case fileStages:
		return nonNil(s.stages)
	case fileEmployees:
		recs := make([]employeeRecord, len(s.employees))
		for i, e := range s.employees {
			recs[i] = employeeRecord{
				ID:         e.ID,
				Name:       e.Name,
				Phone:      e.Phone,
				Address:    e.Address,
				Username:   e.Username,
				Hash:       e.PasswordHash,
				Salt:       e.Salt,
				Permission: e.Permission,
			}
		}
		return recs
	case fileTests:
		return nonNil(s.tests)
	case fileReports:
		return nonNil(s.reports)
	}
	return nil
}

// writeJSON пишет во временный файл и переименовывает, чтобы не оставить обрезанный json.
func (s *Storage) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("ошибка сериализации %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("ошибка создания временного файла для %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("ошибка записи %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("ошибка записи %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("ошибка сохранения %s: %w", name, err)
	}
	return nil
}

func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
