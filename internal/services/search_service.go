package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/courseatlas/backend/internal/models"
	"go.uber.org/zap"
)

type searchService struct {
	repo   CourseRepository
	logger *zap.Logger
}

// NewSearchService creates a new search service
func NewSearchService(repo CourseRepository, logger *zap.Logger) *searchService {
	return &searchService{
		repo:   repo,
		logger: logger,
	}
}

// Search scans the whole catalog for a case-insensitive substring match and
// returns three flat result lists, one per entity kind.
//
// Courses match on title or description, modules on title, topics on title
// or main content text. The traversal is exhaustive: a course's modules and
// topics are scanned whether or not the course itself matched. Results keep
// hierarchy traversal order; there is no ranking.
func (s *searchService) Search(ctx context.Context, query string) (*models.SearchResults, error) {
	if query == "" {
		return nil, validationErrorf("search query is required")
	}

	courses, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to search courses", zap.Error(err))
		return nil, fmt.Errorf("failed to search courses: %w", err)
	}

	term := strings.ToLower(query)
	results := &models.SearchResults{
		Courses: []models.CourseSearchResult{},
		Modules: []models.ModuleSearchResult{},
		Topics:  []models.TopicSearchResult{},
	}

	for _, course := range courses {
		if containsFold(course.Title, term) || containsFold(course.Description, term) {
			results.Courses = append(results.Courses, models.CourseSearchResult{
				ID:          course.ID,
				Title:       course.Title,
				Description: course.Description,
				Type:        "course",
			})
		}

		for _, module := range course.Modules {
			if containsFold(module.Title, term) {
				results.Modules = append(results.Modules, models.ModuleSearchResult{
					ID:          module.ID,
					Title:       module.Title,
					CourseID:    course.ID,
					CourseTitle: course.Title,
					Type:        "module",
				})
			}

			for _, topic := range module.Topics {
				if containsFold(topic.Title, term) || containsFold(topic.Content.Main, term) {
					results.Topics = append(results.Topics, models.TopicSearchResult{
						ID:          topic.ID,
						Title:       topic.Title,
						CourseID:    course.ID,
						CourseTitle: course.Title,
						ModuleID:    module.ID,
						ModuleTitle: module.Title,
						Type:        "topic",
					})
				}
			}
		}
	}

	return results, nil
}

// containsFold reports whether s contains the already-lowercased term.
func containsFold(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}
