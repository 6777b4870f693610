package artifact

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"aerotrack/internal/common"
)

var ErrArtifactNotFound = common.NotFound("Arquivo do relatório não encontrado")

// FS хранит файлы отчётов в локальном каталоге.
type FS struct {
	dir string
}

func NewFS(dir string) *FS {
	return &FS{dir: dir}
}

func (s *FS) Put(ctx context.Context, key string, content []byte) error {
	const op = "storage.artifact.FS.Put"

	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.path(key)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%s: ошибка создания каталога: %w", op, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *FS) Get(ctx context.Context, key string) ([]byte, error) {
	const op = "storage.artifact.FS.Get"

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.path(key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", op, ErrArtifactNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return data, nil
}

// path не выпускает ключ за пределы каталога.
func (s *FS) path(key string) (string, error) {
	if !filepath.IsLocal(key) {
		return "", common.Validation("Nome de arquivo inválido")
	}
	return filepath.Join(s.dir, key), nil
}
