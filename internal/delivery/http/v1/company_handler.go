package v1

import (
	"net/http"
	"strconv"

	"github.com/Hemasri-atike/Ihire-sub000/internal/delivery/http/response"
	"github.com/Hemasri-atike/Ihire-sub000/internal/domain"
	"github.com/Hemasri-atike/Ihire-sub000/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

// NewCompanyHandler registers public company routes
func NewCompanyHandler(public *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	public.GET("/companies/:id", handler.GetPublicCard)
}

// GetPublicCard godoc
// @Summary Get public company card
// @Description Company name, logo and location shown on the invite acceptance page
// @Tags Companies
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} domain.Company
// @Failure 404 {object} response.Response
// @Router /companies/{id} [get]
func (h *CompanyHandler) GetPublicCard(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid company ID"))
		return
	}

	company, err := h.companyUC.GetPublicCard(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company retrieved", company)
}
