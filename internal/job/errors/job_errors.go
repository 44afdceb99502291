package joberrors

import (
	"net/http"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/shared/apperror"
)

var (
	ErrJobNotFound = apperror.New(
		apperror.CodeNotFound,
		"Job not found",
		http.StatusNotFound,
	)
	ErrInvalidJobID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid job ID",
		http.StatusBadRequest,
	)
)
