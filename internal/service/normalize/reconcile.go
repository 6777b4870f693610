package normalize

import (
	"fmt"

	"github.com/google/uuid"

	"aerotrack/internal/service/credential"
	"aerotrack/internal/storage"
)

// Raw - содержимое всех файлов коллекций до разбора.
type Raw struct {
	Parts     []Record
	Employees []Record
	Tests     []Record
	Stages    []Record
	Aircraft  []Record
}

// Graph - граф сущностей. Связанные записи указывают на канонические
// экземпляры из соответствующих коллекций.
type Graph struct {
	Aircraft  []*storage.Aircraft
	Parts     []*storage.Part
	Stages    []*storage.Stage
	Employees []*storage.Employee
	Tests     []*storage.Test
}

type Result struct {
	Graph *Graph
	// Dirty - данные изменились при загрузке и их нужно пересохранить.
	Dirty    bool
	Warnings []string
}

type builder struct {
	g        *Graph
	dirty    bool
	warnings []string

	parts     map[string]*storage.Part
	stages    map[string]*storage.Stage
	employees map[string]*storage.Employee
	usernames map[string]*storage.Employee
	tests     map[string]*storage.Test
}

// Build нормализует перечисления и собирает граф в порядке зависимостей:
// детали, сотрудники, испытания, затем этапы, затем самолёты.
func Build(raw Raw) (*Result, error) {
	const op = "service.normalize.Build"

	b := &builder{
		g:         &Graph{},
		parts:     make(map[string]*storage.Part),
		stages:    make(map[string]*storage.Stage),
		employees: make(map[string]*storage.Employee),
		usernames: make(map[string]*storage.Employee),
		tests:     make(map[string]*storage.Test),
	}

	b.normalizeEnums(raw)

	b.loadParts(raw.Parts)
	if err := b.loadEmployees(raw.Employees); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	b.loadTests(raw.Tests)
	b.loadStages(raw.Stages)
	b.loadAircraft(raw.Aircraft)

	b.validate()

	return &Result{Graph: b.g, Dirty: b.dirty, Warnings: b.warnings}, nil
}

func (b *builder) normalizeEnums(raw Raw) {
	if Records(raw.Parts, partEnums...) {
		b.dirty = true
	}
	if Records(raw.Employees, employeeEnums...) {
		b.dirty = true
	}
	if Records(raw.Tests, testEnums...) {
		b.dirty = true
	}

	for _, st := range raw.Stages {
		if Records([]Record{st}, stageEnums...) {
			b.dirty = true
		}
		if Records(list(st, "funcionarios"), employeeEnums...) {
			b.dirty = true
		}
	}

	for _, a := range raw.Aircraft {
		if Records([]Record{a}, aircraftEnums...) {
			b.dirty = true
		}
		if Records(list(a, "pecas"), partEnums...) {
			b.dirty = true
		}
		if Records(list(a, "testes"), testEnums...) {
			b.dirty = true
		}
		for _, st := range list(a, "etapas") {
			if Records([]Record{st}, stageEnums...) {
				b.dirty = true
			}
			if Records(list(st, "funcionarios"), employeeEnums...) {
				b.dirty = true
			}
		}
	}
}

func (b *builder) warn(format string, args ...any) {
	b.warnings = append(b.warnings, fmt.Sprintf(format, args...))
}

func (b *builder) loadParts(recs []Record) {
	for _, rec := range recs {
		p := b.partFrom(rec)
		if p.Name == "" {
			b.warn("peça sem nome descartada")
			b.dirty = true
			continue
		}
		if _, ok := b.parts[p.Name]; ok {
			b.warn("peça duplicada %q unificada", p.Name)
			b.dirty = true
			continue
		}
		b.parts[p.Name] = p
		b.g.Parts = append(b.g.Parts, p)
	}
}

func (b *builder) partFrom(rec Record) *storage.Part {
	p := &storage.Part{
		Name:     str(rec, "nome"),
		Type:     storage.PartType(str(rec, "tipo")),
		Supplier: str(rec, "fornecedor"),
		Status:   storage.PartStatus(str(rec, "status")),
	}
	if p.Status == "" {
		p.Status = storage.PartInProduction
		b.dirty = true
	}
	return p
}

func (b *builder) loadEmployees(recs []Record) error {
	for _, rec := range recs {
		e, err := b.employeeFrom(rec)
		if err != nil {
			return err
		}
		if e.ID == "" {
			b.warn("funcionário sem id descartado")
			b.dirty = true
			continue
		}
		if _, ok := b.employees[e.ID]; ok {
			b.warn("funcionário duplicado %q unificado", e.ID)
			b.dirty = true
			continue
		}
		b.addEmployee(e)
	}
	return nil
}

// addEmployee регистрирует сотрудника, если его логин ещё свободен.
// Запись с занятым логином отбрасывается, первая по порядку остаётся.
func (b *builder) addEmployee(e *storage.Employee) bool {
	if e.Username != "" {
		if owner, ok := b.usernames[e.Username]; ok {
			b.warn("funcionário %q descartado: usuário %q já pertence a %q", e.ID, e.Username, owner.ID)
			b.dirty = true
			return false
		}
		b.usernames[e.Username] = e
	}
	b.employees[e.ID] = e
	b.g.Employees = append(b.g.Employees, e)
	return true
}

func (b *builder) employeeFrom(rec Record) (*storage.Employee, error) {
	e := &storage.Employee{
		ID:           str(rec, "id"),
		Name:         str(rec, "nome"),
		Phone:        str(rec, "telefone"),
		Address:      str(rec, "endereco"),
		Username:     str(rec, "usuario"),
		PasswordHash: str(rec, "senhaHash"),
		Salt:         str(rec, "salt"),
		Permission:   storage.PermissionLevel(str(rec, "nivelPermissao")),
	}

	// старый формат: пароль открытым текстом
	if plain := str(rec, "senha"); plain != "" && (e.PasswordHash == "" || e.Salt == "") {
		h, err := credential.GenerateHash(plain)
		if err != nil {
			return nil, err
		}
		e.PasswordHash, e.Salt = h.Hash, h.Salt
		b.dirty = true
	}
	if _, ok := rec["senha"]; ok {
		b.dirty = true
	}

	return e, nil
}

func (b *builder) loadTests(recs []Record) {
	for _, rec := range recs {
		t := b.testFrom(rec)
		if _, ok := b.tests[t.ID]; ok {
			b.warn("teste duplicado %q unificado", t.ID)
			b.dirty = true
			continue
		}
		b.tests[t.ID] = t
		b.g.Tests = append(b.g.Tests, t)
	}
}

func (b *builder) testFrom(rec Record) *storage.Test {
	t := &storage.Test{
		ID:     str(rec, "id"),
		Type:   storage.TestType(str(rec, "tipo")),
		Result: storage.TestResult(str(rec, "resultado")),
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
		b.dirty = true
	}
	if t.Result == "" {
		t.Result = storage.TestRejected
		b.dirty = true
	}
	return t
}

func (b *builder) loadStages(recs []Record) {
	for _, rec := range recs {
		s := b.stageFrom(rec)
		if s.Name == "" {
			b.warn("etapa sem nome descartada")
			b.dirty = true
			continue
		}
		if _, ok := b.stages[s.Name]; ok {
			b.warn("etapa duplicada %q unificada", s.Name)
			b.dirty = true
			continue
		}
		b.stages[s.Name] = s
		b.g.Stages = append(b.g.Stages, s)
	}
}

func (b *builder) stageFrom(rec Record) *storage.Stage {
	s := &storage.Stage{
		Name:      str(rec, "nome"),
		Deadline:  str(rec, "prazo"),
		Status:    storage.StageStatus(str(rec, "status")),
		Employees: []*storage.Employee{},
	}
	if s.Status == "" {
		s.Status = storage.StagePending
		b.dirty = true
	}

	for _, er := range list(rec, "funcionarios") {
		e := b.resolveEmployee(er)
		if e == nil || s.HasEmployee(e.ID) {
			b.dirty = true
			continue
		}
		s.Employees = append(s.Employees, e)
	}
	return s
}

func (b *builder) resolveEmployee(rec Record) *storage.Employee {
	id := str(rec, "id")
	if id == "" {
		b.warn("funcionário associado sem id descartado")
		return nil
	}
	if e, ok := b.employees[id]; ok {
		return e
	}

	e, err := b.employeeFrom(rec)
	if err != nil {
		b.warn("funcionário %q: %v", id, err)
		return nil
	}
	if !b.addEmployee(e) {
		return nil
	}
	b.dirty = true
	return e
}

func (b *builder) loadAircraft(recs []Record) {
	seen := make(map[string]struct{})
	for _, rec := range recs {
		a := &storage.Aircraft{
			Code:     str(rec, "codigo"),
			Model:    str(rec, "modelo"),
			Type:     storage.AircraftType(str(rec, "tipo")),
			Capacity: num(rec, "capacidade"),
			Range:    num(rec, "alcance"),
			Parts:    []*storage.Part{},
			Stages:   []*storage.Stage{},
			Tests:    []*storage.Test{},
		}
		if a.Code == "" {
			b.warn("aeronave sem código descartada")
			b.dirty = true
			continue
		}
		if _, ok := seen[a.Code]; ok {
			b.warn("aeronave duplicada %q unificada", a.Code)
			b.dirty = true
			continue
		}
		seen[a.Code] = struct{}{}

		for _, pr := range list(rec, "pecas") {
			p := b.resolvePart(pr)
			if p == nil || a.HasPart(p.Name) {
				b.dirty = true
				continue
			}
			a.Parts = append(a.Parts, p)
		}

		for _, sr := range list(rec, "etapas") {
			s := b.resolveStage(sr)
			if s == nil || a.HasStage(s.Name) {
				b.dirty = true
				continue
			}
			a.Stages = append(a.Stages, s)
		}

		for _, tr := range list(rec, "testes") {
			t := b.resolveTest(tr)
			if a.HasTest(t.ID) {
				b.dirty = true
				continue
			}
			a.Tests = append(a.Tests, t)
		}

		b.g.Aircraft = append(b.g.Aircraft, a)
	}
}

func (b *builder) resolvePart(rec Record) *storage.Part {
	name := str(rec, "nome")
	if name == "" {
		b.warn("peça associada sem nome descartada")
		return nil
	}
	if p, ok := b.parts[name]; ok {
		return p
	}

	p := b.partFrom(rec)
	b.parts[name] = p
	b.g.Parts = append(b.g.Parts, p)
	b.dirty = true
	return p
}

func (b *builder) resolveStage(rec Record) *storage.Stage {
	name := str(rec, "nome")
	if name == "" {
		b.warn("etapa associada sem nome descartada")
		return nil
	}
	if s, ok := b.stages[name]; ok {
		return s
	}

	s := b.stageFrom(rec)
	b.stages[name] = s
	b.g.Stages = append(b.g.Stages, s)
	b.dirty = true
	return s
}

// resolveTest ищет испытание по id, а у записей без id по паре тип+результат.
func (b *builder) resolveTest(rec Record) *storage.Test {
	if id := str(rec, "id"); id != "" {
		if t, ok := b.tests[id]; ok {
			return t
		}
	} else {
		typ := storage.TestType(str(rec, "tipo"))
		res := storage.TestResult(str(rec, "resultado"))
		if res == "" {
			res = storage.TestRejected
		}
		for _, t := range b.g.Tests {
			if t.Type == typ && t.Result == res {
				b.dirty = true
				return t
			}
		}
	}

	t := b.testFrom(rec)
	b.tests[t.ID] = t
	b.g.Tests = append(b.g.Tests, t)
	b.dirty = true
	return t
}

// validate не отбрасывает записи с неизвестными значениями, только предупреждает.
func (b *builder) validate() {
	for _, a := range b.g.Aircraft {
		if _, err := storage.ParseAircraftType(string(a.Type)); err != nil {
			b.warn("aeronave %q: %v", a.Code, err)
		}
	}
	for _, p := range b.g.Parts {
		if _, err := storage.ParsePartType(string(p.Type)); err != nil {
			b.warn("peça %q: %v", p.Name, err)
		}
		if _, err := storage.ParsePartStatus(string(p.Status)); err != nil {
			b.warn("peça %q: %v", p.Name, err)
		}
	}
	for _, s := range b.g.Stages {
		if _, err := storage.ParseStageStatus(string(s.Status)); err != nil {
			b.warn("etapa %q: %v", s.Name, err)
		}
	}
	for _, e := range b.g.Employees {
		if _, err := storage.ParsePermissionLevel(string(e.Permission)); err != nil {
			b.warn("funcionário %q: %v", e.ID, err)
		}
	}
	for _, t := range b.g.Tests {
		if _, err := storage.ParseTestType(string(t.Type)); err != nil {
			b.warn("teste %q: %v", t.ID, err)
		}
		if _, err := storage.ParseTestResult(string(t.Result)); err != nil {
			b.warn("teste %q: %v", t.ID, err)
		}
	}
}
