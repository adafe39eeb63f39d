package nutrition

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestSplitConsumers(t *testing.T) {
	got := SplitConsumers("Alice  BOB ")
	if !reflect.DeepEqual(got, []string{"alice", "bob"}) {
		t.Fatalf("got %v", got)
	}
	if got := SplitConsumers("   "); len(got) != 0 {
		t.Fatalf("want no consumers, got %v", got)
	}
}

func TestIntakeEatLogsEveryConsumer(t *testing.T) {
	store := breadStore()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	intake := NewIntakeService(NewEdibleCalculator(store), store)
	intake.now = func() time.Time { return at }

	fact, logged, err := intake.Eat(Edible{Type: "food", ID: 1}, Weight{SeqNum: 1, Amount: 2}, "alice bob")
	if err != nil {
		t.Fatalf("eat: %v", err)
	}
	if !reflect.DeepEqual(logged, []string{"alice", "bob"}) {
		t.Fatalf("logged: %v", logged)
	}
	if !reflect.DeepEqual(sortedConsumers(store.intake), []string{"alice", "bob"}) {
		t.Fatalf("records: %v", store.intake)
	}
	for _, row := range store.intake {
		if !row.at.Equal(at) {
			t.Fatalf("timestamp: want=%v got=%v", at, row.at)
		}
		assertFact(t, row.fact, fact)
	}
}

func TestIntakeEatInvalidEdibleLogsNothing(t *testing.T) {
	store := breadStore()
	intake := NewIntakeService(NewEdibleCalculator(store), store)

	_, _, err := intake.Eat(Edible{Type: "food", ID: 404}, Weight{SeqNum: 0, Amount: 10}, "alice")
	if !errors.Is(err, ErrUnknownFood) {
		t.Fatalf("want ErrUnknownFood, got %v", err)
	}
	if _, _, err := intake.Eat(Edible{Type: "food", ID: 1}, Weight{SeqNum: 0, Amount: 10}, " "); !errors.Is(err, ErrNoConsumer) {
		t.Fatalf("want ErrNoConsumer, got %v", err)
	}
	if len(store.intake) != 0 {
		t.Fatalf("want no records, got %v", store.intake)
	}
}

func TestIntakeSum(t *testing.T) {
	store := breadStore()
	intake := NewIntakeService(NewEdibleCalculator(store), store)
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	for _, at := range []time.Time{day.Add(-time.Minute), day, day.Add(13 * time.Hour), day.Add(24 * time.Hour)} {
		at := at
		intake.now = func() time.Time { return at }
		if _, err := intake.Log("alice", Fact{"Protein": {5, "g"}}); err != nil {
			t.Fatalf("log: %v", err)
		}
	}
	intake.now = func() time.Time { return day.Add(time.Hour) }
	if _, err := intake.Log("bob", Fact{"Protein": {100, "g"}}); err != nil {
		t.Fatalf("log: %v", err)
	}

	start, end := DayWindow(day.Add(9*time.Hour), time.UTC)
	got, err := intake.Sum("alice", start, end)
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	assertFact(t, got, Fact{"Protein": {10, "g"}})
}

func TestIntakeSumWithoutRecords(t *testing.T) {
	store := breadStore()
	intake := NewIntakeService(NewEdibleCalculator(store), store)

	got, err := intake.Sum("alice", time.Unix(0, 0), time.Now())
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty fact, got %#v", got)
	}
}

func TestDayWindowUsesLocation(t *testing.T) {
	taipei := time.FixedZone("Asia/Taipei", 8*60*60)
	start, end := DayWindow(time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC), taipei)

	if want := time.Date(2026, 3, 2, 0, 0, 0, 0, taipei); !start.Equal(want) {
		t.Fatalf("start: want=%v got=%v", want, start)
	}
	if end.Sub(start) != 24*time.Hour {
		t.Fatalf("window: got %v", end.Sub(start))
	}
}
