package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneralStatsQuery(t *testing.T) {
	t.Run("counts questions under both active spellings", func(t *testing.T) {
		// Rows created through the API carry "Ativo", legacy rows "Ativa";
		// the counter must see both.
		assert.Contains(t, generalStatsQuery, "UPPER(status) IN ('ATIVO', 'ATIVA')) AS perguntas_cadastradas")
		assert.NotContains(t, generalStatsQuery, "UPPER(status) = 'ATIVA'")
	})

	t.Run("pending counter is bounded by the cutoff", func(t *testing.T) {
		assert.Contains(t, generalStatsQuery, "rating_geral IS NULL AND data_completa < ?")
	})
}

func TestScopedResponseJoin(t *testing.T) {
	t.Run("restricts responses to evaluations of the questionnaire", func(t *testing.T) {
		// A question shared by two questionnaires must not leak one
		// questionnaire's responses into the other's chart.
		assert.Contains(t, scopedResponseJoin, "r.avaliacao_cod IN (SELECT cod_avaliacao FROM avaliacao WHERE questionario_cod = ?)")
	})
}

func TestSectorStatsQuery(t *testing.T) {
	t.Run("skips employees without a sector", func(t *testing.T) {
		assert.Contains(t, sectorStatsQuery, "WHERE f.setor IS NOT NULL")
		assert.NotContains(t, sectorStatsQuery, "Sem setor")
	})
}
