package jsonfile

import (
	"context"
	"fmt"

	"aerotrack/internal/storage"
)

func (s *Storage) ListStages(ctx context.Context) ([]*storage.Stage, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	out := make([]*storage.Stage, len(s.stages))
	for i, st := range s.stages {
		out[i] = st.Clone()
	}
	return out, nil
}

func (s *Storage) GetStage(ctx context.Context, name string) (*storage.Stage, error) {
	const op = "storage.jsonfile.GetStage"

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	_, st := s.findStage(name)
	if st == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrStageNotFound)
	}
	return st.Clone(), nil
}

func (s *Storage) CreateStage(ctx context.Context, st storage.Stage) (*storage.Stage, error) {
	const op = "storage.jsonfile.CreateStage"

	if st.Status == "" {
		st.Status = storage.StagePending
	}
	if err := st.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	cp := s.checkpoint()

	if _, dup := s.findStage(st.Name); dup != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrStageExists)
	}

	n := &storage.Stage{
		Name:      st.Name,
		Deadline:  st.Deadline,
		Status:    st.Status,
		Employees: []*storage.Employee{},
	}
	s.stages = append(s.stages, n)

	if err := s.commit(cp, fileStages); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return n.Clone(), nil
}

func (s *Storage) UpdateStage(ctx context.Context, name string, u storage.StageUpdate) (*storage.Stage, error) {
	const op = "storage.jsonfile.UpdateStage"

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	cp := s.checkpoint()

	_, st := s.findStage(name)
	if st == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrStageNotFound)
	}

	c := st.Clone()
	c.Apply(u)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	st.Apply(u)

	if err := s.commit(cp, fileStages, fileAircraft); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return st.Clone(), nil
}

// DeleteStage удаляет этап и все его привязки к самолётам.
func (s *Storage) DeleteStage(ctx context.Context, name string) error {
	const op = "storage.jsonfile.DeleteStage"

	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	cp := s.checkpoint()

	i, _ := s.findStage(name)
	if i < 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrStageNotFound)
	}
	s.stages = append(s.stages[:i], s.stages[i+1:]...)

	for _, a := range s.aircraft {
		a.Stages, _ = remove(a.Stages, func(st *storage.Stage) bool { return st.Name == name })
	}

	if err := s.commit(cp, fileStages, fileAircraft); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Storage) AssignEmployee(ctx context.Context, stageName, employeeID string) (*storage.Stage, error) {
	const op = "storage.jsonfile.AssignEmployee"

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	cp := s.checkpoint()

	_, st := s.findStage(stageName)
	if st == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrStageNotFound)
	}
	_, e := s.findEmployee(employeeID)
	if e == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrEmployeeNotFound)
	}
	if st.HasEmployee(employeeID) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrEmployeeLinked)
	}

	st.Employees = append(st.Employees, e)

	if err := s.commit(cp, fileStages, fileAircraft); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return st.Clone(), nil
}

func (s *Storage) UnassignEmployee(ctx context.Context, stageName, employeeID string) (*storage.Stage, error) {
	const op = "storage.jsonfile.UnassignEmployee"

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	cp := s.checkpoint()

	_, st := s.findStage(stageName)
	if st == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrStageNotFound)
	}

	employees, ok := remove(st.Employees, func(e *storage.Employee) bool { return e.ID == employeeID })
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrEmployeeNotLinked)
	}
	st.Employees = employees

	if err := s.commit(cp, fileStages, fileAircraft); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return st.Clone(), nil
}

func (s *Storage) findStage(name string) (int, *storage.Stage) {
	for i, st := range s.stages {
		if st.Name == name {
			return i, st
		}
	}
	return -1, nil
}
