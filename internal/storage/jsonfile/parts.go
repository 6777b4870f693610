package jsonfile

import (
	"context"
	"fmt"

	"aerotrack/internal/storage"
)

func (s *Storage) ListParts(ctx context.Context) ([]*storage.Part, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	out := make([]*storage.Part, len(s.parts))
	for i, p := range s.parts {
		out[i] = p.Clone()
	}
	return out, nil
}

func (s *Storage) GetPart(ctx context.Context, name string) (*storage.Part, error) {
	const op = "storage.jsonfile.GetPart"

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	_, p := s.findPart(name)
	if p == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrPartNotFound)
	}
	return p.Clone(), nil
}

func (s *Storage) CreatePart(ctx context.Context, p storage.Part) (*storage.Part, error) {
	const op = "storage.jsonfile.CreatePart"

	if p.Status == "" {
		p.Status = storage.PartInProduction
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	cp := s.checkpoint()

	if _, dup := s.findPart(p.Name); dup != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrPartExists)
	}

	n := p.Clone()
	s.parts = append(s.parts, n)

	if err := s.commit(cp, fileParts); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return n.Clone(), nil
}

func (s *Storage) UpdatePart(ctx context.Context, name string, u storage.PartUpdate) (*storage.Part, error) {
	const op = "storage.jsonfile.UpdatePart"

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	cp := s.checkpoint()

	_, p := s.findPart(name)
	if p == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrPartNotFound)
	}

	c := p.Clone()
	c.Apply(u)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	p.Apply(u)

	// копии деталей лежат и внутри aeronaves.json
	if err := s.commit(cp, fileParts, fileAircraft); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p.Clone(), nil
}

// DeletePart удаляет деталь и все её привязки к самолётам.
func (s *Storage) DeletePart(ctx context.Context, name string) error {
	const op = "storage.jsonfile.DeletePart"

	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	cp := s.checkpoint()

	i, _ := s.findPart(name)
	if i < 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrPartNotFound)
	}
	s.parts = append(s.parts[:i], s.parts[i+1:]...)

	for _, a := range s.aircraft {
		a.Parts, _ = remove(a.Parts, func(p *storage.Part) bool { return p.Name == name })
	}

	if err := s.commit(cp, fileParts, fileAircraft); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Storage) findPart(name string) (int, *storage.Part) {
	for i, p := range s.parts {
		if p.Name == name {
			return i, p
		}
	}
	return -1, nil
}
