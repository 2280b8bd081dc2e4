package postgres

import (
	"plasmodocking/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

// orderBy converts public orderings into ORDER BY terms using columns to
// resolve field names. Unknown fields are skipped; the tiebreaker keeps
// pagination stable.
func orderBy(ds *goqu.SelectDataset,
	orders []storage.Order,
	columns map[string]string,
	tiebreaker string,
) *goqu.SelectDataset {
	terms := make([]exp.OrderedExpression, 0, len(orders)+1)
	for _, o := range orders {
		col, ok := columns[o.Field]
		if !ok {
			continue
		}
		if o.Desc {
			terms = append(terms, goqu.I(col).Desc())
		} else {
			terms = append(terms, goqu.I(col).Asc())
		}
	}
	terms = append(terms, goqu.I(tiebreaker).Asc())

	return ds.Order(terms...)
}

func paginate(ds *goqu.SelectDataset, page storage.Page) *goqu.SelectDataset {
	if page.Limit > 0 {
		ds = ds.Limit(page.Limit)
	}
	if page.Offset > 0 {
		ds = ds.Offset(page.Offset)
	}

	return ds
}
