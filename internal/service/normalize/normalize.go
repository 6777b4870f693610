package normalize

import (
	"fmt"
	"math"
	"strconv"

	"aerotrack/internal/storage"
)

// Record - сырая запись в том виде, в каком она лежит в json-файле.
type Record = map[string]any

// поля-перечисления по коллекциям
var (
	aircraftEnums = []string{"tipo"}
	partEnums     = []string{"tipo", "status"}
	stageEnums    = []string{"status"}
	employeeEnums = []string{"nivelPermissao"}
	testEnums     = []string{"tipo", "resultado"}
)

// Value приводит значение перечисления к каноническому виду.
func Value(s string) string {
	return storage.NormalizeEnum(s)
}

// Field нормализует строковое поле записи на месте и сообщает, изменилось ли оно.
func Field(rec Record, key string) bool {
	s, ok := rec[key].(string)
	if !ok || s == "" {
		return false
	}

	n := Value(s)
	if n == s {
		return false
	}

	rec[key] = n
	return true
}

// Records нормализует перечисленные поля во всех записях.
func Records(recs []Record, keys ...string) bool {
	changed := false
	for _, rec := range recs {
		for _, k := range keys {
			if Field(rec, k) {
				changed = true
			}
		}
	}
	return changed
}

func str(rec Record, key string) string {
	switch v := rec[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func num(rec Record, key string) int {
	switch v := rec[key].(type) {
	case float64:
		return int(math.Round(v))
	case int:
		return v
	case int64:
		return int(v)
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func list(rec Record, key string) []Record {
	raw, ok := rec[key].([]any)
	if !ok {
		if recs, ok := rec[key].([]Record); ok {
			return recs
		}
		return nil
	}

	out := make([]Record, 0, len(raw))
	for _, item := range raw {
		if r, ok := item.(Record); ok {
			out = append(out, r)
		}
	}
	return out
}
