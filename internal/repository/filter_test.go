package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterClause(t *testing.T) {
	t.Run("equality", func(t *testing.T) {
		clause, arg := Equals("status", "Ativo").Clause()

		assert.Equal(t, "status = ?", clause)
		assert.Equal(t, "Ativo", arg)
	})

	t.Run("substring is case-insensitive", func(t *testing.T) {
		clause, arg := Contains("nome", "MarIa").Clause()

		assert.Equal(t, "LOWER(nome) LIKE ?", clause)
		assert.Equal(t, "%maria%", arg)
	})

	t.Run("digit filter strips formatting from both sides", func(t *testing.T) {
		clause, arg := DigitsContain("cpf", "111.222").Clause()

		assert.Equal(t, "regexp_replace(cpf, '[^0-9]', '', 'g') LIKE ?", clause)
		assert.Equal(t, "%111222%", arg)
	})
}

func TestStripNonDigits(t *testing.T) {
	assert.Equal(t, "11122233344", stripNonDigits("111.222.333-44"))
	assert.Equal(t, "", stripNonDigits("abc"))
	assert.Equal(t, "2026", stripNonDigits("ano 2026"))
}

func TestFilterSetSearchClause(t *testing.T) {
	t.Run("search filters join with OR", func(t *testing.T) {
		set := &FilterSet{}
		set.MatchAny(
			Contains("nome", "ana"),
			Contains("email", "ana"),
		)

		clause, args := set.searchClause()

		assert.Equal(t, "(LOWER(nome) LIKE ? OR LOWER(email) LIKE ?)", clause)
		assert.Len(t, args, 2)
	})

	t.Run("conditions accumulate", func(t *testing.T) {
		set := &FilterSet{}
		set.Where(Equals("status", "Ativo")).Where(Equals("setor", "TI"))

		assert.Len(t, set.Conditions, 2)
		assert.Empty(t, set.Search)
	})
}
