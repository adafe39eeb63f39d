package nutrition

import (
	"fmt"
	"strings"
	"time"
)

type IntakeService struct {
	edibles *EdibleCalculator
	store   IntakeStore
	now     func() time.Time
}

func NewIntakeService(edibles *EdibleCalculator, store IntakeStore) *IntakeService {
	return &IntakeService{edibles: edibles, store: store, now: time.Now}
}

// SplitConsumers lower-cases a space separated list of consumer names.
func SplitConsumers(consumers string) []string {
	return strings.Fields(strings.ToLower(consumers))
}

// Eat computes the nutrients of the edible once and logs them for every
// consumer named in consumers.
func (s *IntakeService) Eat(edible Edible, weight Weight, consumers string) (Fact, []string, error) {
	if len(SplitConsumers(consumers)) == 0 {
		return nil, nil, ErrNoConsumer
	}
	fact, err := s.edibles.CalculateWeight(edible, weight)
	if err != nil {
		return nil, nil, err
	}
	logged, err := s.Log(consumers, fact)
	if err != nil {
		return nil, logged, err
	}
	return fact, logged, nil
}

// Log appends one intake record per consumer, all with the same timestamp.
func (s *IntakeService) Log(consumers string, fact Fact) ([]string, error) {
	names := SplitConsumers(consumers)
	if len(names) == 0 {
		return nil, ErrNoConsumer
	}

	at := s.now()
	logged := make([]string, 0, len(names))
	for _, name := range names {
		if err := s.store.AppendIntakeRecord(name, fact, at); err != nil {
			return logged, err
		}
		logged = append(logged, name)
	}
	return logged, nil
}

// Sum adds every fact consumer logged in [start, end).
func (s *IntakeService) Sum(consumer string, start, end time.Time) (Fact, error) {
	records, err := s.store.QueryIntakeRecords(consumer, start, end)
	if err != nil {
		return nil, err
	}
	total, err := Sum(records...)
	if err != nil {
		return nil, fmt.Errorf("consumer %s: %w", consumer, err)
	}
	return total, nil
}

// DayWindow returns the [midnight, next midnight) window of day in location.
func DayWindow(day time.Time, location *time.Location) (time.Time, time.Time) {
	local := day.In(location)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, location)
	return start, start.AddDate(0, 0, 1)
}
