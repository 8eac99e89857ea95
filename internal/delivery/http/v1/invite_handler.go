package v1

import (
	"net/http"
	"strconv"

	"github.com/Hemasri-atike/Ihire-sub000/internal/delivery/http/response"
	"github.com/Hemasri-atike/Ihire-sub000/internal/domain"
	"github.com/Hemasri-atike/Ihire-sub000/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type InviteHandler struct {
	inviteUC domain.InviteUsecase
}

// NewInviteHandler registers invite routes. Token validation is public (the
// invitee is not signed in yet) and sits behind the supplied rate limiter;
// everything else requires an authenticated employer.
func NewInviteHandler(
	public *gin.RouterGroup,
	protected *gin.RouterGroup,
	inviteUC domain.InviteUsecase,
	validateRateLimit gin.HandlerFunc,
) {
	handler := &InviteHandler{inviteUC: inviteUC}

	public.GET("/invites/validate", validateRateLimit, handler.Validate)

	invites := protected.Group("/invites")
	{
		invites.POST("", handler.Create)
		invites.GET("", handler.List)
		invites.POST("/accept", handler.Accept)
	}
}

// CreateInviteRequest is the payload for issuing an invite
type CreateInviteRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=admin recruiter viewer"`
}

// AcceptInviteRequest carries the plaintext token from the accept link
type AcceptInviteRequest struct {
	Token string `json:"token" binding:"required"`
}

// issuerFromContext returns the employer resolved by the auth middleware.
func issuerFromContext(c *gin.Context) (*domain.Employer, bool) {
	v, exists := c.Get(string(domain.KeyEmployer))
	if !exists {
		return nil, false
	}
	employer, ok := v.(*domain.Employer)
	return employer, ok
}

// Create godoc
// @Summary Issue a company invite
// @Description Create an invite for the caller's company and email the accept link to the invitee. The token is never returned in the response.
// @Tags Invites
// @Accept json
// @Produce json
// @Param request body CreateInviteRequest true "Invitee email and role"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /invites [post]
// @Security BearerAuth
func (h *InviteHandler) Create(c *gin.Context) {
	issuer, ok := issuerFromContext(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var req CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Email and a role of admin, recruiter, or viewer are required"))
		return
	}

	if err := h.inviteUC.Issue(c.Request.Context(), issuer, req.Email, req.Role); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Invite sent", nil)
}

// Validate godoc
// @Summary Validate an invite token
// @Description Resolve an accept-link token to the invite's email and company so the acceptance form can be pre-filled. Used, expired, and unknown tokens are indistinguishable.
// @Tags Invites
// @Produce json
// @Param token query string true "Plaintext invite token"
// @Success 200 {object} domain.InvitePreview
// @Failure 400 {object} response.Response
// @Router /invites/validate [get]
func (h *InviteHandler) Validate(c *gin.Context) {
	preview, err := h.inviteUC.Validate(c.Request.Context(), c.Query("token"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Invite is valid", preview)
}

// Accept godoc
// @Summary Accept an invite
// @Description Redeem a valid token and attach the authenticated employer to the invite's company. The invite's email must match the authenticated identity.
// @Tags Invites
// @Accept json
// @Produce json
// @Param request body AcceptInviteRequest true "Plaintext invite token"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /invites/accept [post]
// @Security BearerAuth
func (h *InviteHandler) Accept(c *gin.Context) {
	issuer, ok := issuerFromContext(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var req AcceptInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Token is required"))
		return
	}

	if err := h.inviteUC.Accept(c.Request.Context(), issuer.ID, issuer.Email, req.Token); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Invite accepted", nil)
}

// List godoc
// @Summary List company invites
// @Description Paginated invite audit trail for the caller's company, newest first.
// @Tags Invites
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /invites [get]
// @Security BearerAuth
func (h *InviteHandler) List(c *gin.Context) {
	issuer, ok := issuerFromContext(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	invites, total, err := h.inviteUC.ListCompanyInvites(c.Request.Context(), issuer, page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Invites retrieved", gin.H{
		"invites": invites,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}
