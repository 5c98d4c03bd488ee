package report

import (
	"net/http"

	"go-pontaj/internal/shared/apperror"
	"go-pontaj/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetMonthly(c *gin.Context) {
	companyID := c.GetString("company_id")
	month := c.Query("month")

	if storeID := c.Query("storeId"); storeID != "" {
		resp, err := h.service.GetByStoreAndMonth(c.Request.Context(), companyID, storeID, month)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp, nil)
		return
	}

	resp, err := h.service.GetAllByMonth(c.Request.Context(), companyID, month)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
