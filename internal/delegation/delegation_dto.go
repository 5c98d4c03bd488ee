package delegation

import "time"

type CreateDelegationRequest struct {
	EmployeeID  string  `json:"employeeId" binding:"required,uuid"`
	FromStoreID string  `json:"fromStoreId" binding:"required,uuid"`
	ToStoreID   string  `json:"toStoreId" binding:"required,uuid"`
	Kind        string  `json:"kind" binding:"required,oneof=DELEGATION TRANSFER"`
	ValidFrom   string  `json:"validFrom" binding:"required"`
	ValidUntil  *string `json:"validUntil"`
	Reason      string  `json:"reason"`
}

type RejectDelegationRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type DelegationResponse struct {
	ID              string     `json:"id"`
	EmployeeID      string     `json:"employeeId"`
	FromStoreID     string     `json:"fromStoreId"`
	ToStoreID       string     `json:"toStoreId"`
	Kind            string     `json:"kind"`
	ValidFrom       string     `json:"validFrom"`
	ValidUntil      *string    `json:"validUntil,omitempty"`
	Reason          string     `json:"reason,omitempty"`
	Status          string     `json:"status"`
	RejectionReason *string    `json:"rejectionReason,omitempty"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func mapToResponse(d *Delegation) *DelegationResponse {
	resp := &DelegationResponse{
		ID:              d.ID.String(),
		EmployeeID:      d.EmployeeID.String(),
		FromStoreID:     d.FromStoreID.String(),
		ToStoreID:       d.ToStoreID.String(),
		Kind:            d.Kind,
		ValidFrom:       d.ValidFrom.Format("2006-01-02"),
		Reason:          d.Reason,
		Status:          d.Status,
		RejectionReason: d.RejectionReason,
		ApprovedAt:      d.ApprovedAt,
		CreatedAt:       d.CreatedAt,
	}
	if d.ValidUntil != nil {
		until := d.ValidUntil.Format("2006-01-02")
		resp.ValidUntil = &until
	}
	return resp
}
