package zoneerrors

import (
	"net/http"

	"go-pontaj/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(apperror.CodeInvalidInput, "invalid company id", http.StatusBadRequest)
	ErrZoneNotFound     = apperror.New(apperror.CodeNotFound, "zone not found", http.StatusNotFound)
	ErrDuplicateName    = apperror.New(apperror.CodeConflict, "zone name already in use", http.StatusConflict)
)
