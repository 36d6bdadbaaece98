// Package filter declares the recognized product filter keys and how each one
// becomes a SQL predicate. Unknown keys are dropped during normalization, never
// rejected.
package filter

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	dErrors "polyglot/pkg/domain-errors"
)

// Kind is the value type a key accepts.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindDecimal
)

// Comparison is the predicate operator.
type Comparison string

const (
	Eq  Comparison = "="
	Min Comparison = ">="
	Max Comparison = "<="
)

// Rule maps one filter key to a column expression and operator.
type Rule struct {
	Key    string
	Column string
	Cmp    Comparison
	Kind   Kind
}

// Filter holds normalized values keyed by recognized filter keys. Values are
// string, int64 or decimal.Decimal according to the rule's Kind.
type Filter map[string]any

// Table is a validated set of rules.
type Table struct {
	rules map[string]Rule
}

// AttributeKeys are the free-form attribute names that can be matched exactly.
var AttributeKeys = []string{
	"Disk Type",
	"Disk Storage Size",
	"RAM Size",
	"Screen Size",
	"Operating system",
	"Processor Name",
}

// DefaultRules returns the product filter rules. Columns reference the
// aliases of the catalog's product query (p, v, pt, pc).
func DefaultRules() []Rule {
	rules := []Rule{
		{Key: "id", Column: "p.id", Cmp: Eq, Kind: KindInt},
		{Key: "vendor", Column: "v.vendor", Cmp: Eq, Kind: KindText},
		{Key: "product_type", Column: "pt.product_type", Cmp: Eq, Kind: KindText},
		{Key: "product_condition", Column: "pc.product_condition", Cmp: Eq, Kind: KindText},
		{Key: "mpn", Column: "p.mpn", Cmp: Eq, Kind: KindText},
	}
	rules = append(rules, ranged("product_warranty", "p.product_warranty", KindInt)...)
	rules = append(rules, ranged("stock_quantity", "p.stock_quantity", KindInt)...)
	rules = append(rules, ranged("price", "p.price", KindDecimal)...)
	for _, attr := range AttributeKeys {
		rules = append(rules, Rule{
			Key:    attr,
			Column: "p.attributes->>'" + attr + "'",
			Cmp:    Eq,
			Kind:   KindText,
		})
	}
	return rules
}

func ranged(key, column string, kind Kind) []Rule {
	return []Rule{
		{Key: key, Column: column, Cmp: Eq, Kind: kind},
		{Key: key + "_min", Column: column, Cmp: Min, Kind: kind},
		{Key: key + "_max", Column: column, Cmp: Max, Kind: kind},
	}
}

// NewTable validates rules and builds a Table. Keys must be unique and
// non-empty; columns must not contain statement separators.
func NewTable(rules []Rule) (*Table, error) {
	t := &Table{rules: make(map[string]Rule, len(rules))}
	for _, r := range rules {
		if r.Key == "" || r.Column == "" {
			return nil, dErrors.Newf(dErrors.CodeInvariantViolation, "filter rule %q has no column", r.Key)
		}
		if strings.ContainsAny(r.Column, ";$") {
			return nil, dErrors.Newf(dErrors.CodeInvariantViolation, "filter rule %q has unsafe column %q", r.Key, r.Column)
		}
		switch r.Cmp {
		case Eq, Min, Max:
		default:
			return nil, dErrors.Newf(dErrors.CodeInvariantViolation, "filter rule %q has unknown comparison %q", r.Key, r.Cmp)
		}
		if _, dup := t.rules[r.Key]; dup {
			return nil, dErrors.Newf(dErrors.CodeInvariantViolation, "duplicate filter key %q", r.Key)
		}
		t.rules[r.Key] = r
	}
	return t, nil
}

// Default returns the validated default table. It panics only if the built-in
// rules are inconsistent, which tests guard against.
func Default() *Table {
	t, err := NewTable(DefaultRules())
	if err != nil {
		panic(err)
	}
	return t
}

// keys lists the recognized keys in sorted order.
func (t *Table) keys() []string {
	keys := make([]string, 0, len(t.rules))
	for k := range t.rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Normalize keeps only recognized keys and converts their values. A recognized
// key with a value of the wrong type is a validation error.
func (t *Table) Normalize(in map[string]any) (Filter, error) {
	out := make(Filter, len(in))
	for key, raw := range in {
		rule, ok := t.rules[key]
		if !ok {
			continue
		}
		v, err := convert(rule.Kind, raw)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeValidation, fmt.Sprintf("invalid value for filter %q", key))
		}
		out[key] = v
	}
	return out, nil
}

// Where renders f as a conjunctive WHERE clause with numbered placeholders
// starting at $1. Keys are emitted in sorted order so the query text is
// deterministic. An empty filter renders as "".
func (t *Table) Where(f Filter) (string, []any) {
	keys := make([]string, 0, len(f))
	for k := range f {
		if _, ok := t.rules[k]; ok {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return "", nil
	}
	sort.Strings(keys)

	preds := make([]string, 0, len(keys))
	args := make([]any, 0, len(keys))
	for i, k := range keys {
		rule := t.rules[k]
		preds = append(preds, fmt.Sprintf("%s %s $%d", rule.Column, rule.Cmp, i+1))
		v := f[k]
		if d, ok := v.(decimal.Decimal); ok {
			v = d.String()
		}
		args = append(args, v)
	}
	return "WHERE " + strings.Join(preds, " AND "), args
}

func convert(kind Kind, raw any) (any, error) {
	switch kind {
	case KindText:
		switch v := raw.(type) {
		case string:
			return v, nil
		case json.Number:
			return v.String(), nil
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), nil
		}
	case KindInt:
		switch v := raw.(type) {
		case float64:
			if v != float64(int64(v)) {
				return nil, fmt.Errorf("%v is not an integer", v)
			}
			return int64(v), nil
		case int:
			return int64(v), nil
		case int64:
			return v, nil
		case json.Number:
			return v.Int64()
		case string:
			return strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		}
	case KindDecimal:
		switch v := raw.(type) {
		case float64:
			return decimal.NewFromFloat(v), nil
		case int:
			return decimal.NewFromInt(int64(v)), nil
		case int64:
			return decimal.NewFromInt(v), nil
		case json.Number:
			return decimal.NewFromString(v.String())
		case string:
			return decimal.NewFromString(strings.TrimSpace(v))
		case decimal.Decimal:
			return v, nil
		}
	}
	return nil, fmt.Errorf("unsupported value %v (%T)", raw, raw)
}
