package tariff

import (
	"errors"
	"sort"
)

var (
	ErrInvalidDuration = errors.New("duration must be at least one hour")
	ErrInvalidSchedule = errors.New("invalid tariff schedule")
)

const hoursPerDay = 24

type Calculator interface {
	ComputeAmount(durationHours, extraMinutes int) (Money, error)
}

// Band charges RateCents for every hour from FromHour (1-based) until the next band starts.
type Band struct {
	FromHour  int
	RateCents int64
}

// Schedule is a table-driven Calculator. Any started extra minute is billed as a
// full hour, and DailyCapCents (when set) bounds each started 24h block.
type Schedule struct {
	bands         []Band
	dailyCapCents int64
}

func NewSchedule(bands []Band, dailyCapCents int64) (*Schedule, error) {
	if len(bands) == 0 || dailyCapCents < 0 {
		return nil, ErrInvalidSchedule
	}
	sorted := append([]Band(nil), bands...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].FromHour < sorted[j].FromHour })
	if sorted[0].FromHour != 1 {
		return nil, ErrInvalidSchedule
	}
	for i, b := range sorted {
		if b.RateCents < 0 || (i > 0 && b.FromHour == sorted[i-1].FromHour) {
			return nil, ErrInvalidSchedule
		}
	}
	return &Schedule{bands: sorted, dailyCapCents: dailyCapCents}, nil
}

// NewScheduleFromTable builds a Schedule from hour→rate pairs as loaded from config.
func NewScheduleFromTable(table map[int]int64, dailyCapCents int64) (*Schedule, error) {
	bands := make([]Band, 0, len(table))
	for from, rate := range table {
		bands = append(bands, Band{FromHour: from, RateCents: rate})
	}
	return NewSchedule(bands, dailyCapCents)
}

func DefaultSchedule() *Schedule {
	s, _ := NewSchedule([]Band{
		{FromHour: 1, RateCents: 4000},
		{FromHour: 3, RateCents: 3000},
		{FromHour: 7, RateCents: 2000},
	}, 50000)
	return s
}

func (s *Schedule) ComputeAmount(durationHours, extraMinutes int) (Money, error) {
	if durationHours < 1 || extraMinutes < 0 {
		return Money{}, ErrInvalidDuration
	}
	hours := durationHours + (extraMinutes+59)/60

	var total int64
	for hours > 0 {
		block := min(hours, hoursPerDay)
		total += s.blockCents(block)
		hours -= block
	}
	return NewMoney(total), nil
}

// blockCents prices up to one day of hours.
func (s *Schedule) blockCents(hours int) int64 {
	var cents int64
	for h := 1; h <= hours; h++ {
		cents += s.rateAt(h)
	}
	if s.dailyCapCents > 0 && cents > s.dailyCapCents {
		return s.dailyCapCents
	}
	return cents
}

func (s *Schedule) rateAt(hour int) int64 {
	rate := s.bands[0].RateCents
	for _, b := range s.bands {
		if b.FromHour > hour {
			break
		}
		rate = b.RateCents
	}
	return rate
}
