package services

import (
	"context"

	"github.com/courseatlas/backend/internal/models"
)

// CourseRepository is the interface that wraps methods for course catalog
// data access. Courses are stored whole: every method reads or writes a
// course together with its full embedded module/topic/test tree.
//
// Implementations must not hand out aliases into their own state; reads
// return copies, and writes take effect only through Create/Update/Delete.
type CourseRepository interface {
	// Method GetAll retrieves every course in catalog order.
	//
	// If the catalog is empty, an empty slice will be returned.
	// If some error occurs during data retrieval, the error will be returned.
	GetAll(ctx context.Context) ([]models.Course, error)
	// Method GetByID retrieves one course by its identifier.
	//
	// "id" parameter is used to identify the course.
	// If no course has the identifier, ErrCourseNotFound will be returned.
	// If some error occurs during data retrieval, the error will be returned.
	GetByID(ctx context.Context, id string) (*models.Course, error)
	// Method Create appends a new course to the catalog.
	//
	// The caller is responsible for having allocated the course identifier.
	// If some error occurs during data creation, the error will be returned.
	Create(ctx context.Context, course *models.Course) error
	// Method Update replaces the stored course (and its whole tree) with the
	// given value, matched by identifier.
	//
	// If no course has the identifier, ErrCourseNotFound will be returned.
	// If some error occurs during data update, the error will be returned.
	Update(ctx context.Context, course *models.Course) error
	// Method Delete removes a course and everything it owns.
	//
	// "id" parameter is used to identify the course.
	// If no course has the identifier, ErrCourseNotFound will be returned.
	// If some error occurs during data deletion, the error will be returned.
	Delete(ctx context.Context, id string) error
	// Method ReplaceAll discards the current catalog and stores the given
	// courses in order.
	//
	// If some error occurs during the replacement, the error will be returned.
	ReplaceAll(ctx context.Context, courses []models.Course) error
	// Method Count returns the number of courses in the catalog.
	//
	// If some error occurs during data retrieval, the error will be returned.
	Count(ctx context.Context) (int, error)
}
