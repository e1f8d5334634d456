package report

import (
	"errors"
	"time"
)

var (
	ErrInvalidGranularity = errors.New("granularidade inválida")
	ErrInvalidRange       = errors.New("período inválido")
)

// Granularity define o tamanho do balde de tempo dos relatórios
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// Bucket é um intervalo de calendário [Start, End) com rótulo de exibição
type Bucket struct {
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains informa se o instante cai dentro do balde
func (b Bucket) Contains(t time.Time) bool {
	return !t.Before(b.Start) && t.Before(b.End)
}

// MakeBuckets gera um balde por unidade de calendário cobrindo todo o
// período, inclusive unidades sem registros. Semanas começam no domingo.
func MakeBuckets(from, to time.Time, granularity Granularity) ([]Bucket, error) {
	if to.Before(from) {
		return nil, ErrInvalidRange
	}

	var buckets []Bucket
	switch granularity {
	case GranularityDaily:
		cursor := truncateToDay(from)
		for !cursor.After(to) {
			next := cursor.AddDate(0, 0, 1)
			buckets = append(buckets, Bucket{
				Label: cursor.Format("02/01/2006"),
				Start: cursor,
				End:   next,
			})
			cursor = next
		}
	case GranularityWeekly:
		cursor := truncateToWeek(from)
		for !cursor.After(to) {
			next := cursor.AddDate(0, 0, 7)
			buckets = append(buckets, Bucket{
				Label: "Semana de " + cursor.Format("02/01/2006"),
				Start: cursor,
				End:   next,
			})
			cursor = next
		}
	case GranularityMonthly:
		cursor := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, from.Location())
		for !cursor.After(to) {
			next := cursor.AddDate(0, 1, 0)
			buckets = append(buckets, Bucket{
				Label: cursor.Format("01/2006"),
				Start: cursor,
				End:   next,
			})
			cursor = next
		}
	default:
		return nil, ErrInvalidGranularity
	}

	return buckets, nil
}

// FindBucket retorna o índice do balde que contém o instante, ou -1
func FindBucket(buckets []Bucket, t time.Time) int {
	for idx, b := range buckets {
		if b.Contains(t) {
			return idx
		}
	}
	return -1
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// truncateToWeek recua até o domingo da semana do instante
func truncateToWeek(t time.Time) time.Time {
	day := truncateToDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}
