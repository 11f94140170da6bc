package database

import (
	"fmt"
	"strings"
)

// Assignments collects the columns of a partial UPDATE in insertion order.
type Assignments struct {
	columns []string
	args    []interface{}
}

func (a *Assignments) Set(column string, value interface{}) {
	a.columns = append(a.columns, column)
	a.args = append(a.args, value)
}

func (a *Assignments) Len() int {
	return len(a.columns)
}

// Update renders `UPDATE table SET ... , updated_at = NOW() WHERE key = $n` followed by
// the optional returning clause, with positional placeholders.
func (a *Assignments) Update(table, key string, id interface{}, returning string) (string, []interface{}) {
	sets := make([]string, 0, len(a.columns)+1)
	for i, col := range a.columns {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+1))
	}
	sets = append(sets, "updated_at = NOW()")

	args := append(append([]interface{}{}, a.args...), id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d", table, strings.Join(sets, ", "), key, len(args))
	if returning != "" {
		query += " RETURNING " + returning
	}
	return query, args
}

// Conditions builds a positional WHERE clause.
type Conditions struct {
	clauses []string
	args    []interface{}
}

// Arg registers v and returns its placeholder.
func (c *Conditions) Arg(v interface{}) string {
	c.args = append(c.args, v)
	return fmt.Sprintf("$%d", len(c.args))
}

// Add appends a clause, typically built with Arg.
func (c *Conditions) Add(clause string) {
	c.clauses = append(c.clauses, clause)
}

func (c *Conditions) Args() []interface{} {
	return c.args
}

func (c *Conditions) Where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}
