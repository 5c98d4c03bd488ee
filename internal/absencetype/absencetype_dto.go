package absencetype

type CreateAbsenceTypeRequest struct {
	Code          string `json:"code" binding:"required"`
	Name          string `json:"name" binding:"required"`
	RequiresHours bool   `json:"requires_hours"`
	ColorClass    string `json:"color_class"`
	SortOrder     int    `json:"sort_order"`
}

type UpdateAbsenceTypeRequest struct {
	Name          string `json:"name" binding:"required"`
	RequiresHours bool   `json:"requires_hours"`
	ColorClass    string `json:"color_class"`
	SortOrder     int    `json:"sort_order"`
	IsActive      bool   `json:"is_active"`
}

type AbsenceTypeResponse struct {
	ID            string `json:"id"`
	CompanyID     string `json:"company_id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	RequiresHours bool   `json:"requires_hours"`
	ColorClass    string `json:"color_class"`
	SortOrder     int    `json:"sort_order"`
	IsActive      bool   `json:"is_active"`
}
