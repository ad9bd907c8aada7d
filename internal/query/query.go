// Package query translates the raw range/sort/filter parameters of list
// endpoints into a normalized data-access query.
//
// The wire format follows the admin-panel convention: range is a JSON
// array [start, end] (inclusive), sort is ["field", "asc"|"desc"], and
// filter is a JSON object whose value type selects the predicate kind
// (string -> case-insensitive substring, array -> set membership,
// number -> exact equality).
package query

import (
	"encoding/json"
	"strings"

	"github.com/makeitweb/studio-backend/internal/apperr"
)

const (
	DefaultRangeEnd  = 19
	DefaultSortField = "createdAt"
)

type Kind int

const (
	MatchContains Kind = iota
	MatchIn
	MatchEquals
)

type Predicate struct {
	Column string
	Kind   Kind
	Value  any
}

type ListQuery struct {
	Offset      int
	Limit       int
	OrderColumn string
	Descending  bool
	Predicates  []Predicate
}

// RangeEnd reports the inclusive upper bound the client asked for, which
// the Content-Range header needs back.
func (q ListQuery) RangeEnd() int { return q.Offset + q.Limit - 1 }

// Raw carries the three query parameters exactly as they arrived.
type Raw struct {
	Range  string
	Sort   string
	Filter string
}

// Fields is the per-entity allow-list: API field name -> database column.
// Sorting or filtering on a field outside the map is a validation error.
type Fields map[string]string

// Parse normalizes raw parameters against the entity's field allow-list.
// Malformed JSON yields a parse error; out-of-range values and unknown
// fields yield validation errors.
func Parse(raw Raw, fields Fields) (ListQuery, error) {
	q := ListQuery{}

	start, end, err := parseRange(raw.Range)
	if err != nil {
		return q, err
	}
	q.Offset = start
	q.Limit = end - start + 1

	col, desc, err := parseSort(raw.Sort, fields)
	if err != nil {
		return q, err
	}
	q.OrderColumn = col
	q.Descending = desc

	preds, err := parseFilter(raw.Filter, fields)
	if err != nil {
		return q, err
	}
	q.Predicates = preds

	return q, nil
}

func parseRange(raw string) (start, end int, err error) {
	if raw == "" {
		return 0, DefaultRangeEnd, nil
	}

	var bounds []int
	if err := json.Unmarshal([]byte(raw), &bounds); err != nil {
		return 0, 0, apperr.Wrap(apperr.KindParse, "malformed range parameter", err)
	}
	if len(bounds) != 2 {
		return 0, 0, apperr.New(apperr.KindParse, "range must be [start, end]")
	}

	start, end = bounds[0], bounds[1]
	if start < 0 {
		return 0, 0, apperr.New(apperr.KindValidation, "range start must not be negative")
	}
	if end < start {
		return 0, 0, apperr.New(apperr.KindValidation, "range end must not precede start")
	}
	return start, end, nil
}

func parseSort(raw string, fields Fields) (column string, desc bool, err error) {
	field, dir := DefaultSortField, "desc"

	if raw != "" {
		var pair []string
		if err := json.Unmarshal([]byte(raw), &pair); err != nil {
			return "", false, apperr.Wrap(apperr.KindParse, "malformed sort parameter", err)
		}
		if len(pair) != 2 {
			return "", false, apperr.New(apperr.KindParse, "sort must be [field, direction]")
		}
		field, dir = pair[0], strings.ToLower(pair[1])
	}

	column, ok := fields[field]
	if !ok {
		return "", false, apperr.Newf(apperr.KindValidation, "cannot sort by %q", field)
	}

	switch dir {
	case "asc":
		return column, false, nil
	case "desc":
		return column, true, nil
	default:
		return "", false, apperr.Newf(apperr.KindValidation, "unknown sort direction %q", dir)
	}
}

func parseFilter(raw string, fields Fields) ([]Predicate, error) {
	if raw == "" {
		return nil, nil
	}

	var filters map[string]any
	if err := json.Unmarshal([]byte(raw), &filters); err != nil {
		return nil, apperr.Wrap(apperr.KindParse, "malformed filter parameter", err)
	}

	preds := make([]Predicate, 0, len(filters))
	for field, value := range filters {
		column, ok := fields[field]
		if !ok {
			return nil, apperr.Newf(apperr.KindValidation, "cannot filter by %q", field)
		}

		switch v := value.(type) {
		case string:
			preds = append(preds, Predicate{Column: column, Kind: MatchContains, Value: v})
		case []any:
			preds = append(preds, Predicate{Column: column, Kind: MatchIn, Value: v})
		case float64:
			preds = append(preds, Predicate{Column: column, Kind: MatchEquals, Value: v})
		default:
			// booleans, nulls and nested objects carry no predicate
		}
	}
	return preds, nil
}
