package storeerrors

import (
	"net/http"

	"go-pontaj/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(apperror.CodeInvalidInput, "invalid company id", http.StatusBadRequest)
	ErrInvalidZoneID    = apperror.New(apperror.CodeInvalidInput, "invalid zone id", http.StatusBadRequest)
	ErrStoreNotFound    = apperror.New(apperror.CodeNotFound, "store not found", http.StatusNotFound)
	ErrDuplicateCode    = apperror.New(apperror.CodeConflict, "store code already in use", http.StatusConflict)
)
