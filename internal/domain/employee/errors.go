package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrCedulaExists     = errors.New("cedula already registered")
)
