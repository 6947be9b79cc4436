package schedule

import (
	"fmt"
	"time"
)

// TimeOfDay é um horário do dia em minutos desde a meia-noite.
// Evita carregar time.Time (e timezone) onde só importa "HH:MM".
type TimeOfDay int

func ParseTimeOfDay(hm string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", hm, err)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// MustTimeOfDay é para valores literais em testes e seeds.
func MustTimeOfDay(hm string) TimeOfDay {
	t, err := ParseTimeOfDay(hm)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

// At ancora o horário em uma data/timezone concretos.
func (t TimeOfDay) At(date time.Time, loc *time.Location) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		int(t)/60, int(t)%60, 0, 0,
		loc,
	)
}

// Range é uma faixa semiaberta [Start, End).
type Range struct {
	Start TimeOfDay
	End   TimeOfDay
}

func NewRange(start, end string) (Range, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return Range{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return Range{}, err
	}
	return Range{Start: s, End: e}, nil
}

// Overlaps usa semântica de intervalos semiabertos:
// [a, b) cruza [c, d) sse a < d && c < b.
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

func (r Range) Contains(other Range) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// Intersect devolve a interseção das duas faixas; ok=false quando
// não há sobreposição.
func (r Range) Intersect(other Range) (Range, bool) {
	start := r.Start
	if other.Start > start {
		start = other.Start
	}
	end := r.End
	if other.End < end {
		end = other.End
	}
	if start >= end {
		return Range{}, false
	}
	return Range{Start: start, End: end}, true
}
