package reporterrors

import (
	"net/http"

	"go-pontaj/internal/shared/apperror"
)

var (
	ErrInvalidMonth   = apperror.New(apperror.CodeInvalidInput, "invalid month, expected YYYY-MM", http.StatusBadRequest)
	ErrInvalidStoreID = apperror.New(apperror.CodeInvalidInput, "invalid store id", http.StatusBadRequest)
	ErrReportNotFound = apperror.New(apperror.CodeNotFound, "report not found", http.StatusNotFound)
)
