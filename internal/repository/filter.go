package repository

import (
	"strings"

	"gorm.io/gorm"
)

// FilterKind tags the supported filter variants
type FilterKind int

const (
	// FilterEquals is an exact-match equality filter
	FilterEquals FilterKind = iota
	// FilterContains is a case-insensitive substring filter
	FilterContains
	// FilterDigitsContain is a substring filter after stripping non-digit
	// characters from both the stored value and the query term, so
	// formatted and unformatted identifiers both match
	FilterDigitsContain
)

// Filter is one typed condition composed into a parameterized query
type Filter struct {
	Kind   FilterKind
	Column string
	Value  string
}

// Equals creates an exact-match filter
func Equals(column, value string) Filter {
	return Filter{Kind: FilterEquals, Column: column, Value: value}
}

// Contains creates a case-insensitive substring filter
func Contains(column, value string) Filter {
	return Filter{Kind: FilterContains, Column: column, Value: value}
}

// DigitsContain creates a digit-normalized substring filter
func DigitsContain(column, value string) Filter {
	return Filter{Kind: FilterDigitsContain, Column: column, Value: value}
}

// Clause renders the filter as a SQL fragment with its bind argument
func (f Filter) Clause() (string, interface{}) {
	switch f.Kind {
	case FilterContains:
		return "LOWER(" + f.Column + ") LIKE ?", "%" + strings.ToLower(f.Value) + "%"
	case FilterDigitsContain:
		return "regexp_replace(" + f.Column + ", '[^0-9]', '', 'g') LIKE ?", "%" + stripNonDigits(f.Value) + "%"
	default:
		return f.Column + " = ?", f.Value
	}
}

// FilterSet composes conditions onto a query. Conditions combine with AND;
// the search filters form one OR group ANDed with the rest. An empty set
// applies nothing (full scan).
type FilterSet struct {
	Conditions []Filter
	Search     []Filter
}

// Where adds an AND condition
func (s *FilterSet) Where(f Filter) *FilterSet {
	s.Conditions = append(s.Conditions, f)
	return s
}

// MatchAny adds the OR search group
func (s *FilterSet) MatchAny(filters ...Filter) *FilterSet {
	s.Search = append(s.Search, filters...)
	return s
}

// Apply attaches all conditions to the query
func (s *FilterSet) Apply(tx *gorm.DB) *gorm.DB {
	for _, f := range s.Conditions {
		clause, arg := f.Clause()
		tx = tx.Where(clause, arg)
	}
	if len(s.Search) > 0 {
		clause, args := s.searchClause()
		tx = tx.Where(clause, args...)
	}
	return tx
}

func (s *FilterSet) searchClause() (string, []interface{}) {
	parts := make([]string, 0, len(s.Search))
	args := make([]interface{}, 0, len(s.Search))
	for _, f := range s.Search {
		clause, arg := f.Clause()
		parts = append(parts, clause)
		args = append(args, arg)
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
