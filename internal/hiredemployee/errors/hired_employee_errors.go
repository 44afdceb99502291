package hiredemployeeerrors

import (
	"net/http"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/shared/apperror"
)

var (
	ErrHiredEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Hired employee not found",
		http.StatusNotFound,
	)
	ErrInvalidHiredEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid hired employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidFilter = apperror.New(
		apperror.CodeInvalidInput,
		"department_id and job_id filters must be positive integers",
		http.StatusBadRequest,
	)
)
