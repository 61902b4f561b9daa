package memory

import (
	"context"

	"github.com/riskibarqy/golf-twitchers/internal/domain/course"
)

type CourseRepository struct {
	store *Store
}

func (r *CourseRepository) List(_ context.Context) ([]course.Course, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]course.Course, 0, len(r.store.courses))
	for _, id := range sortedKeys(r.store.courses) {
		out = append(out, r.store.courses[id])
	}
	return out, nil
}

func (r *CourseRepository) GetByID(_ context.Context, courseID int64) (course.Course, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.courses[courseID]
	return c, ok, nil
}

func (r *CourseRepository) Create(_ context.Context, c course.Course) (course.Course, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextCourseID++
	c.ID = r.store.nextCourseID
	r.store.courses[c.ID] = c
	return c, nil
}

func (r *CourseRepository) Update(_ context.Context, c course.Course) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.courses[c.ID]; !ok {
		return false, nil
	}
	r.store.courses[c.ID] = c
	return true, nil
}

func (r *CourseRepository) Delete(_ context.Context, courseID int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.courses[courseID]; !ok {
		return false, nil
	}
	delete(r.store.courses, courseID)
	for id, rd := range r.store.rounds {
		if rd.CourseID == courseID {
			rd.CourseID = 0
			r.store.rounds[id] = rd
		}
	}
	return true, nil
}
