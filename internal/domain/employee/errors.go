package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrTCNoExists         = errors.New("TC no already registered")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
)
