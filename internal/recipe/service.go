// Package recipe implements the search-and-filter pipeline: criteria
// parsing, external fetch, per-item enrichment, dietary filtering and
// response shaping.
package recipe

import (
	"context"
	"log"
	"sync"

	"github.com/receptkylen/backend/internal/recipesource"
)

// detailWorkers bounds the concurrent detail fetches per search.
const detailWorkers = 4

// Source is the external recipe API surface the pipeline depends on.
type Source interface {
	Search(ctx context.Context, query, diet string) ([]recipesource.Summary, error)
	Details(ctx context.Context, id int) (*recipesource.Detail, error)
}

// Service runs the pipeline. External failures degrade the result set and
// are never surfaced to the caller.
type Service struct {
	source Source
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

// Search turns criteria into a finalized, filtered, display-ready recipe
// list. Detail fetches fan out over a bounded worker set; a failed fetch
// drops that item. Final ordering follows the summary order from the API.
func (s *Service) Search(ctx context.Context, c Criteria) []Recipe {
	summaries, err := s.source.Search(ctx, c.Ingredients, c.Diet)
	if err != nil {
		log.Printf("recipe search failed: %v", err)
		return nil
	}

	details := make([]*recipesource.Detail, len(summaries))
	sem := make(chan struct{}, detailWorkers)
	var wg sync.WaitGroup

	for i, summary := range summaries {
		wg.Add(1)
		go func(i, id int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			detail, err := s.source.Details(ctx, id)
			if err != nil {
				log.Printf("dropping recipe %d: %v", id, err)
				return
			}
			details[i] = detail
		}(i, summary.ID)
	}
	wg.Wait()

	recipes := make([]Recipe, 0, len(summaries))
	for i, summary := range summaries {
		if details[i] == nil {
			continue
		}
		if !Include(details[i], c) {
			continue
		}
		recipes = append(recipes, Shape(summary, details[i]))
	}
	return recipes
}
