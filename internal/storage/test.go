package storage

type Test struct {
	ID     string     `json:"id"`
	Type   TestType   `json:"tipo"`
	Result TestResult `json:"resultado"`
}

type TestUpdate struct {
	Type   *TestType
	Result *TestResult
}

func (t *Test) Validate() error {
	if _, err := ParseTestType(string(t.Type)); err != nil {
		return err
	}
	if _, err := ParseTestResult(string(t.Result)); err != nil {
		return err
	}

	return nil
}

func (t *Test) Apply(u TestUpdate) {
	if u.Type != nil {
		t.Type = *u.Type
	}
	if u.Result != nil {
		t.Result = *u.Result
	}
}

func (t *Test) Clone() *Test {
	c := *t
	return &c
}
