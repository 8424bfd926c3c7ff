package holiday

import "context"

// HolidayRepository - interface for the holidays table
type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	ListByYear(ctx context.Context, year int) ([]Holiday, error)
	Delete(ctx context.Context, id string) error
}
