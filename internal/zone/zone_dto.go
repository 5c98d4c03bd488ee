package zone

import "time"

type CreateZoneRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type UpdateZoneRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	IsActive *bool   `json:"isActive"`
}

type ZoneResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func mapToResponse(z *Zone) *ZoneResponse {
	return &ZoneResponse{
		ID:        z.ID.String(),
		Name:      z.Name,
		IsActive:  z.IsActive,
		CreatedAt: z.CreatedAt,
		UpdatedAt: z.UpdatedAt,
	}
}
