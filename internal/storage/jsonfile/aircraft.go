package jsonfile

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"aerotrack/internal/storage"
)

func (s *Storage) ListAircraft(ctx context.Context) ([]*storage.Aircraft, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	out := make([]*storage.Aircraft, len(s.aircraft))
	for i, a := range s.aircraft {
		out[i] = a.Clone()
	}
	return out, nil
}

func (s *Storage) GetAircraft(ctx context.Context, code string) (*storage.Aircraft, error) {
	const op = "storage.jsonfile.GetAircraft"

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	_, a := s.findAircraft(code)
	if a == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrAircraftNotFound)
	}
	return a.Clone(), nil
}

// ListAircraftByPart - самолёты, в которых используется деталь.
func (s *Storage) ListAircraftByPart(ctx context.Context, partName string) ([]*storage.Aircraft, error) {
	const op = "storage.jsonfile.ListAircraftByPart"

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if _, p := s.findPart(partName); p == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrPartNotFound)
	}

	out := []*storage.Aircraft{}
	for _, a := range s.aircraft {
		if a.HasPart(partName) {
			out = append(out, a.Clone())
		}
	}
	return out, nil
}

func (s *Storage) CreateAircraft(ctx context.Context, a storage.Aircraft) (*storage.Aircraft, error) {
	const op = "storage.jsonfile.CreateAircraft"

	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	cp := s.checkpoint()

	if _, dup := s.findAircraft(a.Code); dup != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrAircraftExists)
	}

	n := &storage.Aircraft{
		Code:     a.Code,
		Model:    a.Model,
		Type:     a.Type,
		Capacity: a.Capacity,
		Range:    a.Range,
		Parts:    []*storage.Part{},
		Stages:   []*storage.Stage{},
		Tests:    []*storage.Test{},
	}
	s.aircraft = append(s.aircraft, n)

	if err := s.commit(cp, fileAircraft); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return n.Clone(), nil
}

func (s *Storage) UpdateAircraft(ctx context.Context, code string, u storage.AircraftUpdate) (*storage.Aircraft, error) {
	const op = "storage.jsonfile.UpdateAircraft"

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	cp := s.checkpoint()

	_, a := s.findAircraft(code)
	if a == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrAircraftNotFound)
	}

	c := a.Clone()
	c.Apply(u)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	a.Apply(u)

	if err := s.commit(cp, fileAircraft); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a.Clone(), nil
}

func (s *Storage) DeleteAircraft(ctx context.Context, code string) error {
	const op = "storage.jsonfile.DeleteAircraft"

	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	cp := s.checkpoint()

	i, _ := s.findAircraft(code)
	if i < 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrAircraftNotFound)
	}
	s.aircraft = append(s.aircraft[:i], s.aircraft[i+1:]...)

	if err := s.commit(cp, fileAircraft); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Storage) AttachPart(ctx context.Context, code, partName string) (*storage.Aircraft, error) {
	const op = "storage.jsonfile.AttachPart"

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	cp := s.checkpoint()

	_, a := s.findAircraft(code)
	if a == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrAircraftNotFound)
	}
	_, p := s.findPart(partName)
	if p == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrPartNotFound)
	}
	if a.HasPart(partName) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrPartLinked)
	}

	a.Parts = append(a.Parts, p)
	return s.commitAircraft(cp, op, a, fileAircraft)
}

func (s *Storage) DetachPart(ctx context.Context, code, partName string) (*storage.Aircraft, error) {
	const op = "storage.jsonfile.DetachPart"

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	cp := s.checkpoint()

	_, a := s.findAircraft(code)
	if a == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrAircraftNotFound)
	}

	parts, ok := remove(a.Parts, func(p *storage.Part) bool { return p.Name == partName })
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrPartNotLinked)
	}
	a.Parts = parts
	return s.commitAircraft(cp, op, a, fileAircraft)
}

func (s *Storage) AttachStage(ctx context.Context, code, stageName string) (*storage.Aircraft, error) {
	const op = "storage.jsonfile.AttachStage"

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	cp := s.checkpoint()

	_, a := s.findAircraft(code)
	if a == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrAircraftNotFound)
	}
	_, st := s.findStage(stageName)
	if st == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrStageNotFound)
	}
	if a.HasStage(stageName) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrStageLinked)
	}

	a.Stages = append(a.Stages, st)
	return s.commitAircraft(cp, op, a, fileAircraft)
}

func (s *Storage) DetachStage(ctx context.Context, code, stageName string) (*storage.Aircraft, error) {
	const op = "storage.jsonfile.DetachStage"

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	cp := s.checkpoint()

	_, a := s.findAircraft(code)
	if a == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrAircraftNotFound)
	}

	stages, ok := remove(a.Stages, func(st *storage.Stage) bool { return st.Name == stageName })
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrStageNotLinked)
	}
	a.Stages = stages
	return s.commitAircraft(cp, op, a, fileAircraft)
}

func (s *Storage) AttachTest(ctx context.Context, code, testID string) (*storage.Aircraft, error) {
	const op = "storage.jsonfile.AttachTest"

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	cp := s.checkpoint()

	_, a := s.findAircraft(code)
	if a == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrAircraftNotFound)
	}
	_, t := s.findTest(testID)
	if t == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrTestNotFound)
	}
	if a.HasTest(testID) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrTestLinked)
	}

	a.Tests = append(a.Tests, t)
	return s.commitAircraft(cp, op, a, fileAircraft)
}

func (s *Storage) DetachTest(ctx context.Context, code, testID string) (*storage.Aircraft, error) {
	const op = "storage.jsonfile.DetachTest"

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	cp := s.checkpoint()

	_, a := s.findAircraft(code)
	if a == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrAircraftNotFound)
	}

	tests, ok := remove(a.Tests, func(t *storage.Test) bool { return t.ID == testID })
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrTestNotLinked)
	}
	a.Tests = tests
	return s.commitAircraft(cp, op, a, fileAircraft)
}

// AddAircraftTest создаёт испытание и сразу привязывает его к самолёту.
func (s *Storage) AddAircraftTest(ctx context.Context, code string, t storage.Test) (*storage.Aircraft, error) {
	const op = "storage.jsonfile.AddAircraftTest"

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

	_, a := s.findAircraft(code)
	if a == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrAircraftNotFound)
	}
	if _, dup := s.findTest(t.ID); dup != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrTestExists)
	}

	n := t.Clone()
	s.tests = append(s.tests, n)
	a.Tests = append(a.Tests, n)
	return s.commitAircraft(cp, op, a, fileAircraft, fileTests)
}

func (s *Storage) commitAircraft(cp func(), op string, a *storage.Aircraft, files ...string) (*storage.Aircraft, error) {
	if err := s.commit(cp, files...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a.Clone(), nil
}

func (s *Storage) findAircraft(code string) (int, *storage.Aircraft) {
	for i, a := range s.aircraft {
		if a.Code == code {
			return i, a
		}
	}
	return -1, nil
}

// remove убирает первый подходящий элемент.
func remove[T any](items []T, match func(T) bool) ([]T, bool) {
	for i, it := range items {
		if match(it) {
			return append(items[:i:i], items[i+1:]...), true
		}
	}
	return items, false
}
