package http

import (
	"net/http"

	"github.com/saliheu/KAMU-AKYS/internal/domain/employee"
	"github.com/saliheu/KAMU-AKYS/internal/handler/http/response"
	employeeService "github.com/saliheu/KAMU-AKYS/internal/service/employee"
)

type EmployeeHandler interface {
	GetMe(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService *employeeService.Service
}

func NewEmployeeHandler(service *employeeService.Service) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: service}
}

// GetMe implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetMe(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}

	emp, err := h.employeeService.GetProfile(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.ToResponse(emp))
}
