package delegationerrors

import (
	"net/http"

	"go-pontaj/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID  = apperror.New(apperror.CodeInvalidInput, "invalid company id", http.StatusBadRequest)
	ErrInvalidEmployeeID = apperror.New(apperror.CodeInvalidInput, "invalid employee id", http.StatusBadRequest)
	ErrInvalidStoreID    = apperror.New(apperror.CodeInvalidInput, "invalid store id", http.StatusBadRequest)
	ErrInvalidKind       = apperror.New(apperror.CodeInvalidInput, "kind must be DELEGATION or TRANSFER", http.StatusBadRequest)
	ErrInvalidWindow     = apperror.New(apperror.CodeInvalidInput, "valid_until must not be before valid_from", http.StatusBadRequest)
	ErrMissingValidUntil = apperror.New(apperror.CodeInvalidInput, "valid_until is required for a delegation", http.StatusBadRequest)
	ErrSameStore         = apperror.New(apperror.CodeInvalidInput, "origin and destination store must differ", http.StatusBadRequest)

	ErrDelegationNotFound  = apperror.New(apperror.CodeNotFound, "delegation not found", http.StatusNotFound)
	ErrInvalidTransition   = apperror.New(apperror.CodeConflict, "status transition not allowed", http.StatusConflict)
	ErrOverlappingApproved = apperror.New(apperror.CodeConflict, "employee already has an approved delegation overlapping this window", http.StatusConflict)
	ErrRejectionReason     = apperror.New(apperror.CodeInvalidInput, "rejection reason is required", http.StatusBadRequest)
)
