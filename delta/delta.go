package delta

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/bitmark-inc/ukcovid-dashboard/schema"
)

var (
	ErrDateNotFound     = fmt.Errorf("date not found")
	ErrPreviousNotFound = fmt.Errorf("previous day not found")
	ErrBracketMismatch  = fmt.Errorf("age brackets differ")
	ErrDuplicateBracket = fmt.Errorf("duplicate age bracket")
)

// AlignmentError is returned when two snapshots cannot be lined up bucket by bucket
type AlignmentError struct {
	Date schema.Date
	Err  error
}

func (e *AlignmentError) Error() string {
	if e.Date.IsZero() {
		return fmt.Sprintf("align snapshots: %s", e.Err)
	}
	return fmt.Sprintf("align snapshots for %s: %s", e.Date, e.Err)
}

func (e *AlignmentError) Unwrap() error {
	return e.Err
}

// IsAlignmentError reports whether err is an AlignmentError
func IsAlignmentError(err error) bool {
	var ae *AlignmentError
	return errors.As(err, &ae)
}

type bucket struct {
	age    string
	gender schema.Gender
}

func index(s schema.AgeGenderSnapshot) (map[bucket]int64, error) {
	counts := s.Counts()
	idx := make(map[bucket]int64, len(counts))
	for _, c := range counts {
		k := bucket{age: c.Age, gender: c.Gender}
		if _, ok := idx[k]; ok {
			return nil, &AlignmentError{Date: s.Date, Err: fmt.Errorf("%w: %s %s", ErrDuplicateBracket, c.Gender, c.Age)}
		}
		idx[k] = c.Count
	}
	return idx, nil
}

// Compute returns current minus previous for every (age, gender) bucket,
// sorted by age bracket then gender. Both snapshots must enumerate the same buckets.
func Compute(current, previous schema.AgeGenderSnapshot) ([]schema.AgeGenderDelta, error) {
	cur, err := index(current)
	if err != nil {
		return nil, err
	}

	prev, err := index(previous)
	if err != nil {
		return nil, err
	}

	if len(cur) != len(prev) {
		return nil, &AlignmentError{Date: current.Date, Err: ErrBracketMismatch}
	}

	deltas := make([]schema.AgeGenderDelta, 0, len(cur))
	for k, count := range cur {
		before, ok := prev[k]
		if !ok {
			return nil, &AlignmentError{Date: current.Date, Err: fmt.Errorf("%w: %s %s", ErrBracketMismatch, k.gender, k.age)}
		}

		d := count - before
		deltas = append(deltas, schema.AgeGenderDelta{
			Age:     k.age,
			Gender:  k.gender,
			Delta:   d,
			Revised: d < 0,
		})
	}

	sort.Slice(deltas, func(i, j int) bool {
		if deltas[i].Age != deltas[j].Age {
			return AgeLess(deltas[i].Age, deltas[j].Age)
		}
		return deltas[i].Gender.Rank() < deltas[j].Gender.Rank()
	})

	return deltas, nil
}

// ForDate computes the deltas of date against the calendar day before it
func ForDate(snapshots []schema.AgeGenderSnapshot, date schema.Date) ([]schema.AgeGenderDelta, error) {
	byDate := make(map[schema.Date]schema.AgeGenderSnapshot, len(snapshots))
	for _, s := range snapshots {
		byDate[s.Date] = s
	}

	current, ok := byDate[date]
	if !ok {
		return nil, &AlignmentError{Date: date, Err: ErrDateNotFound}
	}

	previous, ok := byDate[date.AddDays(-1)]
	if !ok {
		return nil, &AlignmentError{Date: date, Err: ErrPreviousNotFound}
	}

	return Compute(current, previous)
}

// AgeLess orders age brackets such as "0_to_4", "10_to_14" and "90+" by their
// lower bound. Brackets without a leading number sort after numbered ones.
func AgeLess(a, b string) bool {
	na, oka := lowerBound(a)
	nb, okb := lowerBound(b)
	switch {
	case oka && okb && na != nb:
		return na < nb
	case oka != okb:
		return oka
	default:
		return a < b
	}
}

func lowerBound(age string) (int, bool) {
	end := 0
	for end < len(age) && age[end] >= '0' && age[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(age[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
