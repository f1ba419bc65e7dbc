package store

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/alexanderramin/weekboard/internal/domain"
	"github.com/stretchr/testify/require"
)

// assertContiguous checks the core ordering invariant: within every column
// the set of orders is exactly {0..count-1}.
func assertContiguous(t *testing.T, tasks []domain.Task, context string) {
	t.Helper()
	byColumn := make(map[string][]int)
	for _, tk := range tasks {
		byColumn[tk.Column] = append(byColumn[tk.Column], tk.Order)
	}
	for column, orders := range byColumn {
		seen := make(map[int]bool, len(orders))
		for _, o := range orders {
			require.GreaterOrEqual(t, o, 0, "%s: negative order in %s", context, column)
			require.Less(t, o, len(orders), "%s: order gap in %s: %v", context, column, orders)
			require.False(t, seen[o], "%s: duplicate order %d in %s: %v", context, o, column, orders)
			seen[o] = true
		}
	}
}

// TestReduce_OrderContiguityUnderRandomActions property-tests that any
// sequence of add/delete/move/drop actions keeps every column contiguous
// after every single step.
func TestReduce_OrderContiguityUnderRandomActions(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for trial := 0; trial < 50; trial++ {
		s := State{}
		nextID := 0

		for step := 0; step < 80; step++ {
			var action Action
			switch pick := rng.Intn(10); {
			case pick < 3 || len(s.Tasks) == 0:
				nextID++
				tk := domain.Task{
					ID:     fmt.Sprintf("t%d", nextID),
					Title:  "Task",
					Column: WeekdayColumns[rng.Intn(len(WeekdayColumns))],
				}
				if rng.Intn(2) == 0 {
					pos := rng.Intn(len(s.Tasks) + 1)
					action = AddTask{Task: tk, Order: &pos}
				} else {
					action = AddTask{Task: tk}
				}
			case pick < 5:
				action = DeleteTask{ID: s.Tasks[rng.Intn(len(s.Tasks))].ID}
			case pick < 8:
				action = MoveTask{
					ID:     s.Tasks[rng.Intn(len(s.Tasks))].ID,
					Column: WeekdayColumns[rng.Intn(len(WeekdayColumns))],
					Order:  rng.Intn(len(s.Tasks) + 1),
				}
			default:
				over := WeekdayColumns[rng.Intn(len(WeekdayColumns))]
				if rng.Intn(2) == 0 {
					over = s.Tasks[rng.Intn(len(s.Tasks))].ID
				}
				action = Drop{
					ActiveID: s.Tasks[rng.Intn(len(s.Tasks))].ID,
					OverID:   over,
				}
			}

			s = Reduce(s, action)
			assertContiguous(t, s.Tasks, fmt.Sprintf("trial %d step %d (%T)", trial, step, action))
		}
	}
}
