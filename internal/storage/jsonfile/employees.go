package jsonfile

import (
	"context"
	"fmt"

	"aerotrack/internal/storage"
)

func (s *Storage) ListEmployees(ctx context.Context) ([]*storage.Employee, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	out := make([]*storage.Employee, len(s.employees))
	for i, e := range s.employees {
		out[i] = e.Clone()
	}
	return out, nil
}

func (s *Storage) GetEmployee(ctx context.Context, id string) (*storage.Employee, error) {
	const op = "storage.jsonfile.GetEmployee"

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	_, e := s.findEmployee(id)
	if e == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrEmployeeNotFound)
	}
	return e.Clone(), nil
}

func (s *Storage) GetEmployeeByUsername(ctx context.Context, username string) (*storage.Employee, error) {
	const op = "storage.jsonfile.GetEmployeeByUsername"

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	for _, e := range s.employees {
		if e.Username == username {
			return e.Clone(), nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, storage.ErrEmployeeNotFound)
}

func (s *Storage) CreateEmployee(ctx context.Context, e storage.Employee) (*storage.Employee, error) {
	const op = "storage.jsonfile.CreateEmployee"

	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	cp := s.checkpoint()

	if _, dup := s.findEmployee(e.ID); dup != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrEmployeeIDExists)
	}
	if s.usernameTaken(e.Username, "") {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrUsernameExists)
	}

	n := e.Clone()
	s.employees = append(s.employees, n)

	if err := s.commit(cp, fileEmployees); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return n.Clone(), nil
}

func (s *Storage) UpdateEmployee(ctx context.Context, id string, u storage.EmployeeUpdate) (*storage.Employee, error) {
	const op = "storage.jsonfile.UpdateEmployee"

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	cp := s.checkpoint()

	_, e := s.findEmployee(id)
	if e == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrEmployeeNotFound)
	}
	if u.Username != nil && s.usernameTaken(*u.Username, id) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrUsernameExists)
	}

	c := e.Clone()
	c.Apply(u)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	e.Apply(u)

	if err := s.commit(cp, fileEmployees, fileStages, fileAircraft); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return e.Clone(), nil
}

// DeleteEmployee удаляет сотрудника и снимает его со всех этапов.
func (s *Storage) DeleteEmployee(ctx context.Context, id string) error {
	const op = "storage.jsonfile.DeleteEmployee"

	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	cp := s.checkpoint()

	i, _ := s.findEmployee(id)
	if i < 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrEmployeeNotFound)
	}
	s.employees = append(s.employees[:i], s.employees[i+1:]...)

	for _, st := range s.stages {
		st.Employees, _ = remove(st.Employees, func(e *storage.Employee) bool { return e.ID == id })
	}

	if err := s.commit(cp, fileEmployees, fileStages, fileAircraft); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Storage) findEmployee(id string) (int, *storage.Employee) {
	for i, e := range s.employees {
		if e.ID == id {
			return i, e
		}
	}
	return -1, nil
}

func (s *Storage) usernameTaken(username, exceptID string) bool {
	for _, e := range s.employees {
		if e.Username == username && e.ID != exceptID {
			return true
		}
	}
	return false
}
