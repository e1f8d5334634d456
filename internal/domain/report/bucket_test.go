package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeBuckets(t *testing.T) {
	loc := time.UTC

	t.Run("diário cobre todos os dias do período", func(t *testing.T) {
		from := time.Date(2026, 3, 1, 10, 30, 0, 0, loc)
		to := time.Date(2026, 3, 10, 8, 0, 0, 0, loc)

		buckets, err := MakeBuckets(from, to, GranularityDaily)
		require.NoError(t, err)
		require.Len(t, buckets, 10)

		assert.Equal(t, "01/03/2026", buckets[0].Label)
		assert.Equal(t, "10/03/2026", buckets[9].Label)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, loc), buckets[0].Start)
		assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, loc), buckets[0].End)
	})

	t.Run("semanal começa no domingo", func(t *testing.T) {
		// 2026-03-04 é uma quarta-feira; o domingo anterior é 01/03
		from := time.Date(2026, 3, 4, 12, 0, 0, 0, loc)
		to := time.Date(2026, 3, 18, 0, 0, 0, 0, loc)

		buckets, err := MakeBuckets(from, to, GranularityWeekly)
		require.NoError(t, err)
		require.Len(t, buckets, 3)

		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, loc), buckets[0].Start)
		assert.Equal(t, time.Weekday(0), buckets[0].Start.Weekday())
		assert.Equal(t, "Semana de 01/03/2026", buckets[0].Label)
	})

	t.Run("mensal cobre meses de calendário", func(t *testing.T) {
		from := time.Date(2026, 1, 15, 0, 0, 0, 0, loc)
		to := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

		buckets, err := MakeBuckets(from, to, GranularityMonthly)
		require.NoError(t, err)
		require.Len(t, buckets, 3)

		assert.Equal(t, "01/2026", buckets[0].Label)
		assert.Equal(t, "03/2026", buckets[2].Label)
		assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, loc), buckets[1].Start)
	})

	t.Run("granularidade desconhecida é rejeitada", func(t *testing.T) {
		from := time.Date(2026, 3, 1, 0, 0, 0, 0, loc)
		_, err := MakeBuckets(from, from, Granularity("hourly"))
		assert.ErrorIs(t, err, ErrInvalidGranularity)
	})

	t.Run("período invertido é rejeitado", func(t *testing.T) {
		from := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)
		to := time.Date(2026, 3, 1, 0, 0, 0, 0, loc)
		_, err := MakeBuckets(from, to, GranularityDaily)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}

func TestFindBucket(t *testing.T) {
	loc := time.UTC
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, loc)
	to := time.Date(2026, 3, 5, 0, 0, 0, 0, loc)

	buckets, err := MakeBuckets(from, to, GranularityDaily)
	require.NoError(t, err)

	assert.Equal(t, 2, FindBucket(buckets, time.Date(2026, 3, 3, 15, 0, 0, 0, loc)))
	assert.Equal(t, -1, FindBucket(buckets, time.Date(2026, 4, 1, 0, 0, 0, 0, loc)))

	// Início do balde é inclusivo, fim é exclusivo
	assert.Equal(t, 1, FindBucket(buckets, time.Date(2026, 3, 2, 0, 0, 0, 0, loc)))
}
