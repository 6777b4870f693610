package storage

const ReportKindDelivery = "entrega"

// Report - метаданные сформированного отчёта о сдаче.
type Report struct {
	ID            string `json:"id"`
	AircraftCode  string `json:"aeronaveCodigo"`
	AircraftModel string `json:"aeronaveModelo"`
	Client        string `json:"cliente"`
	DeliveryDate  string `json:"dataEntrega"`
	GeneratedAt   string `json:"dataGeracao"`
	Kind          string `json:"tipo"`
	File          string `json:"arquivo"`
	Content       string `json:"message"`
}

type ReportUpdate struct {
	Client       *string
	DeliveryDate *string
	Kind         *string
	File         *string
	Content      *string
}

func (r *Report) Apply(u ReportUpdate) {
	if u.Client != nil {
		r.Client = *u.Client
	}
	if u.DeliveryDate != nil {
		r.DeliveryDate = *u.DeliveryDate
	}
	if u.Kind != nil {
		r.Kind = *u.Kind
	}
	if u.File != nil {
		r.File = *u.File
	}
	if u.Content != nil {
		r.Content = *u.Content
	}
}
