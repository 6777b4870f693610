package jsonfile

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"aerotrack/internal/storage"
)

func (s *Storage) ListTests(ctx context.Context) ([]*storage.Test, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	out := make([]*storage.Test, len(s.tests))
	for i, t := range s.tests {
		out[i] = t.Clone()
	}
	return out, nil
}

func (s *Storage) GetTest(ctx context.Context, id string) (*storage.Test, error) {
	const op = "storage.jsonfile.GetTest"

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	_, t := s.findTest(id)
	if t == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrTestNotFound)
	}
	return t.Clone(), nil
}

func (s *Storage) CreateTest(ctx context.Context, t storage.Test) (*storage.Test, error) {
	const op = "storage.jsonfile.CreateTest"

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Result == "" {
		t.Result = storage.TestRejected
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	cp := s.checkpoint()

	if _, dup := s.findTest(t.ID); dup != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrTestExists)
	}

	n := t.Clone()
	s.tests = append(s.tests, n)

	if err := s.commit(cp, fileTests); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return n.Clone(), nil
}

func (s *Storage) UpdateTest(ctx context.Context, id string, u storage.TestUpdate) (*storage.Test, error) {
	const op = "storage.jsonfile.UpdateTest"

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	cp := s.checkpoint()

	_, t := s.findTest(id)
	if t == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrTestNotFound)
	}

	c := t.Clone()
	c.Apply(u)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	t.Apply(u)

	if err := s.commit(cp, fileTests, fileAircraft); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return t.Clone(), nil
}

// DeleteTest удаляет испытание и все его привязки к самолётам.
func (s *Storage) DeleteTest(ctx context.Context, id string) error {
	const op = "storage.jsonfile.DeleteTest"

	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	cp := s.checkpoint()

	i, _ := s.findTest(id)
	if i < 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrTestNotFound)
	}
	s.tests = append(s.tests[:i], s.tests[i+1:]...)

	for _, a := range s.aircraft {
		a.Tests, _ = remove(a.Tests, func(t *storage.Test) bool { return t.ID == id })
	}

	if err := s.commit(cp, fileTests, fileAircraft); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Storage) findTest(id string) (int, *storage.Test) {
	for i, t := range s.tests {
		if t.ID == id {
			return i, t
		}
	}
	return -1, nil
}
