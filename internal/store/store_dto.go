package store

import "time"

type CreateStoreRequest struct {
	Name    string `json:"name" binding:"required,max=150"`
	Code    string `json:"code" binding:"required,max=30"`
	ZoneID  string `json:"zoneId" binding:"omitempty,uuid"`
	Address string `json:"address"`
}

type UpdateStoreRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=150"`
	ZoneID   *string `json:"zoneId" binding:"omitempty,uuid"`
	Address  *string `json:"address"`
	IsActive *bool   `json:"isActive"`
}

type StoreResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	ZoneID    string    `json:"zoneId,omitempty"`
	Address   string    `json:"address,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func mapToResponse(s *Store) *StoreResponse {
	resp := &StoreResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		Code:      s.Code,
		Address:   s.Address,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if s.ZoneID != nil {
		resp.ZoneID = s.ZoneID.String()
	}
	return resp
}
