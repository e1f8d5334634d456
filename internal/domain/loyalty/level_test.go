package loyalty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointsForOrder(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		want  int
	}{
		{"pedido comum", 97.0, 9},
		{"abaixo do mínimo", 5.0, 0},
		{"valor exato", 100.0, 10},
		{"um centavo abaixo", 99.99, 9},
		{"zero", 0, 0},
		{"negativo", -30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PointsForOrder(tt.total))
		})
	}
}

func TestSelectLevel(t *testing.T) {
	levels := DefaultLevels("branch-1")

	t.Run("saldo intermediário escolhe o nível mais alto alcançado", func(t *testing.T) {
		level := SelectLevel(levels, 299)
		require.NotNil(t, level)
		assert.Equal(t, "Prata", level.Name)
	})

	t.Run("saldo exatamente no limiar sobe de nível", func(t *testing.T) {
		level := SelectLevel(levels, 300)
		require.NotNil(t, level)
		assert.Equal(t, "Ouro", level.Name)
	})

	t.Run("saldo zero cai no nível de entrada", func(t *testing.T) {
		level := SelectLevel(levels, 0)
		require.NotNil(t, level)
		assert.Equal(t, "Bronze", level.Name)
	})

	t.Run("saldo alto fica no último nível", func(t *testing.T) {
		level := SelectLevel(levels, 5000)
		require.NotNil(t, level)
		assert.Equal(t, "Diamante", level.Name)
	})

	t.Run("sem níveis qualificados retorna nil", func(t *testing.T) {
		custom, err := NewLevel("branch-1", "VIP", 500, 20, nil)
		require.NoError(t, err)
		assert.Nil(t, SelectLevel([]*Level{custom}, 100))
	})
}

func TestNewLevel(t *testing.T) {
	t.Run("cria nível válido", func(t *testing.T) {
		level, err := NewLevel("branch-1", "Prata", 100, 5, []string{"5% de desconto"})
		require.NoError(t, err)
		assert.NotEmpty(t, level.ID)
		assert.Equal(t, 100, level.MinimumPoints)
	})

	t.Run("rejeita pontuação mínima negativa", func(t *testing.T) {
		_, err := NewLevel("branch-1", "Inválido", -1, 0, nil)
		assert.ErrorIs(t, err, ErrNegativeMinPoints)
	})

	t.Run("rejeita nome vazio", func(t *testing.T) {
		_, err := NewLevel("branch-1", "", 0, 0, nil)
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("rejeita filial vazia", func(t *testing.T) {
		_, err := NewLevel("", "Bronze", 0, 0, nil)
		assert.ErrorIs(t, err, ErrEmptyBranchID)
	})
}

func TestDefaultLevels(t *testing.T) {
	levels := DefaultLevels("branch-1")
	require.Len(t, levels, 4)

	assert.Equal(t, 0, levels[0].MinimumPoints)
	assert.Equal(t, 100, levels[1].MinimumPoints)
	assert.Equal(t, 300, levels[2].MinimumPoints)
	assert.Equal(t, 1000, levels[3].MinimumPoints)

	for _, level := range levels {
		assert.Equal(t, "branch-1", level.BranchID)
		assert.NotEmpty(t, level.ID)
	}
}

func TestDefaultRewards(t *testing.T) {
	rewards := DefaultRewards("branch-1")
	require.NotEmpty(t, rewards)

	for _, r := range rewards {
		assert.Equal(t, "branch-1", r.BranchID)
		assert.True(t, r.Active)
		assert.Greater(t, r.PointsRequired, 0)
	}
}

func TestNewReward(t *testing.T) {
	t.Run("cria recompensa ativa", func(t *testing.T) {
		r, err := NewReward("branch-1", "Café grátis", "Um café expresso", 50)
		require.NoError(t, err)
		assert.True(t, r.Active)
	})

	t.Run("rejeita pontuação não positiva", func(t *testing.T) {
		_, err := NewReward("branch-1", "Nada", "", 0)
		assert.ErrorIs(t, err, ErrInvalidPointsNeeded)
	})
}
