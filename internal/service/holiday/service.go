package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/saliheu/KAMU-AKYS/internal/domain/holiday"
)

type Service struct {
	holidayRepository holiday.HolidayRepository
}

func NewService(holidayRepository holiday.HolidayRepository) *Service {
	return &Service{holidayRepository: holidayRepository}
}

func (s *Service) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.Holiday, error) {
	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to parse date: %w", err)
	}

	created, err := s.holidayRepository.Create(ctx, holiday.Holiday{
		Name: req.Name,
		Date: date,
	})
	if err != nil {
		return holiday.Holiday{}, err
	}
	return created, nil
}

func (s *Service) ListHolidays(ctx context.Context, year int) ([]holiday.Holiday, error) {
	holidays, err := s.holidayRepository.ListByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	return holidays, nil
}

func (s *Service) DeleteHoliday(ctx context.Context, id string) error {
	return s.holidayRepository.Delete(ctx, id)
}
