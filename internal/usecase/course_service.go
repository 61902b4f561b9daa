package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/golf-twitchers/internal/domain/course"
)

type CourseService struct {
	courseRepo course.Repository
}

func NewCourseService(courseRepo course.Repository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

func (s *CourseService) List(ctx context.Context) ([]course.Course, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CourseService.List")
	defer span.End()

	courses, err := s.courseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

func (s *CourseService) Create(ctx context.Context, name string) (course.Course, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CourseService.Create")
	defer span.End()

	in := course.Course{Name: strings.TrimSpace(name)}
	if err := in.Validate(); err != nil {
		return course.Course{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.courseRepo.Create(ctx, in)
	if err != nil {
		return course.Course{}, fmt.Errorf("create course: %w", err)
	}
	return created, nil
}

// Update renames a course. Rounds reference courses by id, so past rounds
// show the new name.
func (s *CourseService) Update(ctx context.Context, in course.Course) (course.Course, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CourseService.Update")
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)
	if in.ID <= 0 {
		return course.Course{}, fmt.Errorf("%w: course id is required", ErrInvalidInput)
	}
	if err := in.Validate(); err != nil {
		return course.Course{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.courseRepo.Update(ctx, in)
	if err != nil {
		return course.Course{}, fmt.Errorf("update course: %w", err)
	}
	if !updated {
		return course.Course{}, fmt.Errorf("%w: course=%d", ErrNotFound, in.ID)
	}
	return in, nil
}

// Delete removes the course; rounds played on it keep their scores.
func (s *CourseService) Delete(ctx context.Context, courseID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.CourseService.Delete")
	defer span.End()

	if courseID <= 0 {
		return fmt.Errorf("%w: course id is required", ErrInvalidInput)
	}
	deleted, err := s.courseRepo.Delete(ctx, courseID)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: course=%d", ErrNotFound, courseID)
	}
	return nil
}
