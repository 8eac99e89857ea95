package v1

import (
	"net/http"

	"github.com/Hemasri-atike/Ihire-sub000/internal/delivery/http/response"
	"github.com/Hemasri-atike/Ihire-sub000/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EmployerHandler struct{}

// NewEmployerHandler registers employer self-service routes
func NewEmployerHandler(protected *gin.RouterGroup) {
	handler := &EmployerHandler{}

	protected.GET("/employers/me", handler.GetMe)
}

// GetMe godoc
// @Summary Get the authenticated employer
// @Description The caller's own employer record, including current company membership
// @Tags Employers
// @Produce json
// @Success 200 {object} domain.Employer
// @Failure 401 {object} response.Response
// @Router /employers/me [get]
func (h *EmployerHandler) GetMe(c *gin.Context) {
	employer, ok := issuerFromContext(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	response.Success(c, http.StatusOK, "Employer retrieved", employer)
}
