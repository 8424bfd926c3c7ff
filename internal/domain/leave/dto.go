package leave

import (
	"time"

	"github.com/saliheu/KAMU-AKYS/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	LeaveType     string  `json:"leave_type"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Reason        string  `json:"reason"`
	IsHalfDay     bool    `json:"is_half_day"`
	HalfDayPeriod *string `json:"half_day_period,omitempty"`
	SubstituteID  *string `json:"substitute_employee_id,omitempty"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !LeaveType(r.LeaveType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is not a known leave type",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}
	if len(r.Reason) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 500 characters",
		})
	}

	if r.IsHalfDay {
		if r.HalfDayPeriod == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "half_day_period",
				Message: "half_day_period is required for half-day requests",
			})
		} else if !validator.IsInSlice(*r.HalfDayPeriod, []string{string(HalfDayMorning), string(HalfDayAfternoon)}) {
			errs = append(errs, validator.ValidationError{
				Field:   "half_day_period",
				Message: "half_day_period must be morning or afternoon",
			})
		}
	}

	if r.SubstituteID != nil && !validator.IsValidUUID(*r.SubstituteID) {
		errs = append(errs, validator.ValidationError{
			Field:   "substitute_employee_id",
			Message: "substitute_employee_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectLeaveRequestRequest struct {
	Reason string `json:"reason"`
}

func (r *RejectLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MyLeaveRequestFilter filters the authenticated employee's own requests.
type MyLeaveRequestFilter struct {
	Status    *string
	LeaveType *string
	StartDate *string
	EndDate   *string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// LeaveRequestFilter filters the HR-wide listing.
type LeaveRequestFilter struct {
	EmployeeID   *string
	EmployeeName *string
	Status       *string
	LeaveType    *string
	StartDate    *string
	EndDate      *string
	Page         int
	Limit        int
	SortBy       string
	SortOrder    string
}

type LeaveRequestResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	LeaveType       string  `json:"leave_type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	TotalDays       int     `json:"total_days"`
	Reason          string  `json:"reason"`
	IsHalfDay       bool    `json:"is_half_day"`
	HalfDayPeriod   *string `json:"half_day_period,omitempty"`
	SubstituteID    *string `json:"substitute_employee_id,omitempty"`
	Status          string  `json:"status"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
	ApprovedAt      *string `json:"approved_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	SubmittedAt     string  `json:"submitted_at"`
}

func ToResponse(r LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		EmployeeName:    r.EmployeeName,
		LeaveType:       string(r.LeaveType),
		StartDate:       r.StartDate.Format(time.DateOnly),
		EndDate:         r.EndDate.Format(time.DateOnly),
		TotalDays:       r.TotalDays,
		Reason:          r.Reason,
		IsHalfDay:       r.IsHalfDay,
		SubstituteID:    r.SubstituteID,
		Status:          string(r.Status),
		ApprovedBy:      r.ApprovedBy,
		RejectionReason: r.RejectionReason,
		SubmittedAt:     r.SubmittedAt.Format(time.RFC3339),
	}
	if r.HalfDayPeriod != nil {
		period := string(*r.HalfDayPeriod)
		resp.HalfDayPeriod = &period
	}
	if r.ApprovedAt != nil {
		at := r.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &at
	}
	return resp
}

func ToResponseList(requests []LeaveRequest) []LeaveRequestResponse {
	responses := make([]LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, ToResponse(r))
	}
	return responses
}
