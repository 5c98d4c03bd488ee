package employeeerrors

import (
	"net/http"

	"go-pontaj/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(apperror.CodeInvalidInput, "invalid company id", http.StatusBadRequest)
	ErrInvalidStoreID   = apperror.New(apperror.CodeInvalidInput, "invalid store id", http.StatusBadRequest)
	ErrInvalidZoneID    = apperror.New(apperror.CodeInvalidInput, "invalid zone id", http.StatusBadRequest)
	ErrInvalidHireDate  = apperror.New(apperror.CodeInvalidInput, "invalid hire date, expected YYYY-MM-DD", http.StatusBadRequest)
	ErrEmployeeNotFound = apperror.New(apperror.CodeNotFound, "employee not found", http.StatusNotFound)
	ErrEmployeeInactive = apperror.New(apperror.CodeInvalidState, "employee is inactive", http.StatusConflict)
)
