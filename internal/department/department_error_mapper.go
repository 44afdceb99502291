package department

import (
	"errors"

	departmenterrors "github.com/gnat1399/globant-data-engineering-challenge-gn/internal/department/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return departmenterrors.ErrDepartmentNotFound
	}
	return err
}
