package iocypher

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ReturnVariables are the columns of every trait query.
var ReturnVariables = []string{
	"obj.name",
	"obj.uri",
	"p.citation",
	"p.page_id",
	"pred.name",
	"pred.uri",
	"r.resource_id",
	"t.citation",
	"t.eol_pk",
	"t.literal",
	"t.normal_measurement",
	"t.normal_units",
	"t.object_page_id",
	"t.resource_ok",
	"t.scientific_name",
	"t.source",
	"units.name",
	"units.uri",
}

// orderBy makes pagination stable.
const orderBy = "t.eol_pk"

var limitRe = regexp.MustCompile(`(?i)\s*\bLIMIT\s+(\d+)`)

// Condition is one 'variable = value' part of a WHERE clause.
type Condition struct {
	Variable string
	Value    string
}

// TraitQuery composes a query for trait records that satisfy all
// conditions.
func TraitQuery(limit int, conds ...Condition) string {
	var sb strings.Builder
	sb.WriteString("MATCH (t:Trait)<-[:trait]-(p:Page), ")
	sb.WriteString("(t)-[:supplier]->(r:Resource), ")
	sb.WriteString("(t)-[:predicate]->(pred:Term)")
	if len(conds) > 0 {
		where := make([]string, len(conds))
		for i, v := range conds {
			where[i] = fmt.Sprintf("%s = %s", v.Variable, Literal(v.Value))
		}
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(where, " AND "))
	}
	sb.WriteString(" OPTIONAL MATCH (t)-[:object_term]->(obj:Term)")
	sb.WriteString(" OPTIONAL MATCH (t)-[:normal_units_term]->(units:Term)")
	sb.WriteString(" RETURN ")
	sb.WriteString(strings.Join(ReturnVariables, ", "))
	sb.WriteString(" ORDER BY ")
	sb.WriteString(orderBy)
	sb.WriteString(" LIMIT ")
	sb.WriteString(strconv.Itoa(limit))
	return sb.String()
}

// Literal renders a value for a WHERE clause. Integers are left as is,
// everything else becomes a quoted string.
func Literal(s string) string {
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return s
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// splitLimit removes the trailing semicolon and the LIMIT clause from a
// query, returning the rest of the query and the limit.
func splitLimit(query string) (string, int, error) {
	query = strings.TrimSpace(query)
	query = strings.TrimSuffix(query, ";")
	m := limitRe.FindStringSubmatchIndex(query)
	if m == nil {
		return "", 0, MissingLimitError(query)
	}
	limit, err := strconv.Atoi(query[m[2]:m[3]])
	if err != nil || limit <= 0 {
		return "", 0, MissingLimitError(query)
	}
	base := query[:m[0]] + query[m[1]:]
	return strings.TrimSpace(base), limit, nil
}

// pageQuery returns the query of a page that starts at skip.
func pageQuery(base string, skip, limit int) string {
	return fmt.Sprintf("%s SKIP %d LIMIT %d", base, skip, limit)
}
