package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-twitchers/internal/domain/course"
	qb "github.com/riskibarqy/golf-twitchers/internal/platform/querybuilder"
)

type CourseRepository struct {
	db *sqlx.DB
}

func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) List(ctx context.Context) ([]course.Course, error) {
	query, args, err := qb.Select("*").From("courses").
		OrderBy("course_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select courses query: %w", err)
	}

	var rows []courseTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select courses: %w", err)
	}

	out := make([]course.Course, 0, len(rows))
	for _, row := range rows {
		out = append(out, course.Course{ID: row.ID, Name: row.Name})
	}
	return out, nil
}

func (r *CourseRepository) GetByID(ctx context.Context, courseID int64) (course.Course, bool, error) {
	query, args, err := qb.Select("*").From("courses").
		Where(qb.Eq("course_id", courseID)).
		ToSQL()
	if err != nil {
		return course.Course{}, false, fmt.Errorf("build get course by id query: %w", err)
	}

	var row courseTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return course.Course{}, false, nil
		}
		return course.Course{}, false, fmt.Errorf("get course by id: %w", err)
	}
	return course.Course{ID: row.ID, Name: row.Name}, true, nil
}

func (r *CourseRepository) Create(ctx context.Context, c course.Course) (course.Course, error) {
	query, args, err := qb.InsertModel("courses", courseInsertModel{Name: c.Name}, "RETURNING course_id")
	if err != nil {
		return course.Course{}, fmt.Errorf("build create course query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&c.ID); err != nil {
		return course.Course{}, fmt.Errorf("create course: %w", err)
	}
	return c, nil
}

func (r *CourseRepository) Update(ctx context.Context, c course.Course) (bool, error) {
	query, args, err := qb.Update("courses").
		Set("name", c.Name).
		Where(qb.Eq("course_id", c.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update course query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update course: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected update course: %w", err)
	}
	return affected > 0, nil
}

func (r *CourseRepository) Delete(ctx context.Context, courseID int64) (bool, error) {
	query, args, err := qb.DeleteFrom("courses").
		Where(qb.Eq("course_id", courseID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete course query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete course: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete course: %w", err)
	}
	return affected > 0, nil
}
