package store

import (
	"sync"
	"testing"

	"github.com/alexanderramin/weekboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_DispatchAppliesReducer(t *testing.T) {
	s := New(State{})

	got := s.Dispatch(AddTask{Task: domain.Task{Title: "First", Column: "sunday"}})

	require.Len(t, got.Tasks, 1)
	assert.Equal(t, "First", got.Tasks[0].Title)
	assert.Len(t, s.State().Tasks, 1)
}

func TestStore_SubscribersSeeEveryDispatch(t *testing.T) {
	s := New(State{})
	var seen []int
	s.Subscribe(func(st State) { seen = append(seen, len(st.Tasks)) })

	s.Dispatch(AddTask{Task: domain.Task{ID: "A", Title: "A", Column: "sunday"}})
	s.Dispatch(AddTask{Task: domain.Task{ID: "B", Title: "B", Column: "sunday"}})
	s.Dispatch(DeleteTask{ID: "A"})

	assert.Equal(t, []int{1, 2, 1}, seen)
}

func TestStore_StateReturnsCopy(t *testing.T) {
	s := New(State{Tasks: []domain.Task{{ID: "A", Title: "A", Column: "sunday"}}})

	snapshot := s.State()
	snapshot.Tasks[0].Title = "tampered"

	assert.Equal(t, "A", s.State().Tasks[0].Title)
}

func TestStore_ConcurrentDispatchesStaySerialized(t *testing.T) {
	s := New(State{})
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Dispatch(AddTask{Task: domain.Task{Title: "t", Column: "monday"}})
		}()
	}
	wg.Wait()

	st := s.State()
	require.Len(t, st.Tasks, 20)
	assertContiguous(t, st.Tasks, "concurrent adds")
}
