package remote

import (
	"fmt"
	"net/url"
)

// Query describes a table read or update target: column projection,
// equality filters, ordering and a row limit. The zero value selects
// every column of every row.
type Query struct {
	columns string
	filters []eqFilter
	order   string
	limit   int
}

type eqFilter struct {
	column string
	value  string
}

func NewQuery() Query {
	return Query{}
}

// Columns restricts the selected columns, e.g. "name,phone_number,address".
func (q Query) Columns(cols string) Query {
	q.columns = cols
	return q
}

// Eq adds an equality filter on a column.
func (q Query) Eq(column, value string) Query {
	q.filters = append(append([]eqFilter(nil), q.filters...), eqFilter{column, value})
	return q
}

// Order sorts the result by a column, descending when desc is true.
func (q Query) Order(column string, desc bool) Query {
	dir := "asc"
	if desc {
		dir = "desc"
	}
	q.order = column + "." + dir
	return q
}

// Limit caps the number of returned rows. Zero means no cap.
func (q Query) Limit(n int) Query {
	q.limit = n
	return q
}

// values encodes the query the way the hosted service's table API expects.
func (q Query) values() url.Values {
	v := url.Values{}
	if q.columns != "" {
		v.Set("select", q.columns)
	}
	for _, f := range q.filters {
		v.Set(f.column, "eq."+f.value)
	}
	if q.order != "" {
		v.Set("order", q.order)
	}
	if q.limit > 0 {
		v.Set("limit", fmt.Sprint(q.limit))
	}
	return v
}
