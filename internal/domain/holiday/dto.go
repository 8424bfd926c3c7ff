package holiday

import (
	"time"

	"github.com/saliheu/KAMU-AKYS/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HolidayResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}

func ToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:   h.ID,
		Name: h.Name,
		Date: h.Date.Format(time.DateOnly),
	}
}
