// Package updates assembles partial UPDATE statements from whichever optional
// fields a request actually supplied. Every resource with optional-field
// updates goes through Statement instead of hand-rolling per-field SQL.
package updates

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoFields is returned when a partial update carries no recognized fields.
var ErrNoFields = errors.New("no fields to update")

// Field is one column assignment to include in the statement. Handlers append
// a Field only when the request supplied the value, in the resource's declared
// field order, so an omitted field never appears in the statement at all.
type Field struct {
	Column string
	Value  interface{}
}

// Statement builds an UPDATE limited to the supplied fields, keyed on
// keyColumn, returning the listed columns. Placeholders are numbered in field
// order with the key as the final parameter.
func Statement(table string, fields []Field, keyColumn string, key interface{}, returning []string) (string, []interface{}, error) {
	if len(fields) == 0 {
		return "", nil, ErrNoFields
	}

	assignments := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields)+1)

	n := 1
	for _, f := range fields {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", f.Column, n))
		args = append(args, f.Value)
		n++
	}

	args = append(args, key)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d RETURNING %s",
		table,
		strings.Join(assignments, ", "),
		keyColumn,
		n,
		strings.Join(returning, ", "))

	return query, args, nil
}
