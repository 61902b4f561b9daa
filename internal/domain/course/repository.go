package course

import "context"

// Repository describes course persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Course, error)
	GetByID(ctx context.Context, courseID int64) (Course, bool, error)
	Create(ctx context.Context, c Course) (Course, error)
	Update(ctx context.Context, c Course) (bool, error)
	Delete(ctx context.Context, courseID int64) (bool, error)
}
