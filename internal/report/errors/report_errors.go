package reporterrors

import (
	"net/http"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/shared/apperror"
)

var (
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"Year must be between 1900 and 9999",
		http.StatusBadRequest,
	)
)
