package recipe

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/receptkylen/backend/internal/recipesource"
)

// fakeSource serves canned summaries and details, failing on request.
type fakeSource struct {
	mu        sync.Mutex
	summaries []recipesource.Summary
	searchErr error
	details   map[int]*recipesource.Detail
	failIDs   map[int]bool
	calls     []int
}

func (f *fakeSource) Search(ctx context.Context, query, diet string) ([]recipesource.Summary, error) {
	return f.summaries, f.searchErr
}

func (f *fakeSource) Details(ctx context.Context, id int) (*recipesource.Detail, error) {
	f.mu.Lock()
	f.calls = append(f.calls, id)
	f.mu.Unlock()

	if f.failIDs[id] {
		return nil, errors.New("boom")
	}
	detail, ok := f.details[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return detail, nil
}

func simpleDetail(title string, minutes int) *recipesource.Detail {
	return &recipesource.Detail{Title: title, ReadyInMinutes: minutes}
}

func TestSearchPreservesSummaryOrder(t *testing.T) {
	source := &fakeSource{
		summaries: []recipesource.Summary{
			{ID: 3, Title: "Third"},
			{ID: 1, Title: "First"},
			{ID: 2, Title: "Second"},
		},
		details: map[int]*recipesource.Detail{
			1: simpleDetail("First", 10),
			2: simpleDetail("Second", 10),
			3: simpleDetail("Third", 10),
		},
	}

	svc := NewService(source)
	recipes := svc.Search(context.Background(), Criteria{})

	titles := make([]string, 0, len(recipes))
	for _, r := range recipes {
		titles = append(titles, r.Title)
	}
	assert.Equal(t, []string{"Third", "First", "Second"}, titles)
}

func TestSearchDropsFailedDetailFetches(t *testing.T) {
	source := &fakeSource{
		summaries: []recipesource.Summary{{ID: 1}, {ID: 2}, {ID: 3}},
		details: map[int]*recipesource.Detail{
			1: simpleDetail("A", 10),
			3: simpleDetail("C", 10),
		},
		failIDs: map[int]bool{2: true},
	}

	svc := NewService(source)
	recipes := svc.Search(context.Background(), Criteria{})

	ids := make([]int, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int{1, 3}, ids)
}

func TestSearchAppliesFilters(t *testing.T) {
	source := &fakeSource{
		summaries: []recipesource.Summary{{ID: 1, Title: "Chicken Pie"}, {ID: 2, Title: "Bean Chili"}},
		details: map[int]*recipesource.Detail{
			1: simpleDetail("Chicken Pie", 40),
			2: simpleDetail("Bean Chili", 40),
		},
	}

	svc := NewService(source)
	recipes := svc.Search(context.Background(), Criteria{Diet: "vegetarian"})

	if assert.Len(t, recipes, 1) {
		assert.Equal(t, "Bean Chili", recipes[0].Title)
	}
}

func TestSearchFailureYieldsEmptyList(t *testing.T) {
	source := &fakeSource{searchErr: errors.New("upstream down")}

	svc := NewService(source)
	recipes := svc.Search(context.Background(), Criteria{})

	assert.Empty(t, recipes)
}

func TestSearchFetchesDetailsForEverySummary(t *testing.T) {
	source := &fakeSource{
		summaries: []recipesource.Summary{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}, {ID: 6}},
		details: map[int]*recipesource.Detail{
			1: simpleDetail("A", 5), 2: simpleDetail("B", 5), 3: simpleDetail("C", 5),
			4: simpleDetail("D", 5), 5: simpleDetail("E", 5), 6: simpleDetail("F", 5),
		},
	}

	svc := NewService(source)
	recipes := svc.Search(context.Background(), Criteria{})

	assert.Len(t, recipes, 6)
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6}, source.calls)
}
