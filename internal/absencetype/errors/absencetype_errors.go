package absencetypeerrors

import (
	"net/http"

	"go-pontaj/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrAbsenceTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"absence type not found",
		http.StatusNotFound,
	)
	ErrDuplicateCode = apperror.New(
		apperror.CodeConflict,
		"an absence type with this code already exists",
		http.StatusConflict,
	)
)
