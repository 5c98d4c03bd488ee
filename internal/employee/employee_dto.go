package employee

import "time"

type CreateEmployeeRequest struct {
	FullName string `json:"fullName" binding:"required,max=150"`
	Email    string `json:"email" binding:"omitempty,email"`
	Position string `json:"position" binding:"omitempty,max=100"`
	StoreID  string `json:"storeId" binding:"required,uuid"`
	ZoneID   string `json:"zoneId" binding:"omitempty,uuid"`
	HiredAt  string `json:"hiredAt" binding:"omitempty"`
}

type UpdateEmployeeRequest struct {
	FullName *string `json:"fullName" binding:"omitempty,max=150"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Position *string `json:"position" binding:"omitempty,max=100"`
	StoreID  *string `json:"storeId" binding:"omitempty,uuid"`
	ZoneID   *string `json:"zoneId" binding:"omitempty,uuid"`
	IsActive *bool   `json:"isActive"`
}

type EmployeeResponse struct {
	ID             string    `json:"id"`
	EmployeeNumber string    `json:"employeeNumber"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email,omitempty"`
	Position       string    `json:"position,omitempty"`
	StoreID        string    `json:"storeId"`
	ZoneID         string    `json:"zoneId,omitempty"`
	IsActive       bool      `json:"isActive"`
	HiredAt        string    `json:"hiredAt,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func mapToResponse(e *Employee) *EmployeeResponse {
	resp := &EmployeeResponse{
		ID:             e.ID.String(),
		EmployeeNumber: e.EmployeeNumber,
		FullName:       e.FullName,
		Email:          e.Email,
		Position:       e.Position,
		StoreID:        e.StoreID.String(),
		IsActive:       e.IsActive,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
	if e.ZoneID != nil {
		resp.ZoneID = e.ZoneID.String()
	}
	if e.HiredAt != nil {
		resp.HiredAt = e.HiredAt.Format("2006-01-02")
	}
	return resp
}
