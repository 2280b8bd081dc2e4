package storage

import (
	"fmt"
	"strings"
)

// Order is a single ORDER BY term.
type Order struct {
	// Field is the public field name (for example "created_at").
	Field string
	// Desc sorts in descending order.
	Desc bool
}

// Page limits a listing. A zero Limit returns every row.
type Page struct {
	Limit  uint
	Offset uint
}

// ParseOrdering parses a comma separated ordering expression such as
// "-created_at,name" into Orders. Fields not present in allowed are rejected.
// An empty expression returns def.
func ParseOrdering(expr string, allowed []string, def ...Order) ([]Order, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return def, nil
	}

	var out []Order
	for _, term := range strings.Split(expr, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}

		o := Order{Field: term}
		if strings.HasPrefix(term, "-") {
			o = Order{Field: strings.TrimPrefix(term, "-"), Desc: true}
		}

		valid := false
		for _, a := range allowed {
			if a == o.Field {
				valid = true

				break
			}
		}
		if !valid {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOrdering, o.Field)
		}

		out = append(out, o)
	}

	if len(out) == 0 {
		return def, nil
	}

	return out, nil
}
