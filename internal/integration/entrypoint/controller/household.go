// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/home-ledger/backend/internal/application/usecase/household"
	domainerror "github.com/home-ledger/backend/internal/domain/error"
	"github.com/home-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/home-ledger/backend/internal/integration/entrypoint/middleware"
)

// HouseholdController handles household and invitation endpoints.
type HouseholdController struct {
	createUseCase       *household.CreateHouseholdUseCase
	listUseCase         *household.ListHouseholdsUseCase
	inviteUseCase       *household.InviteMemberUseCase
	acceptInviteUseCase *household.AcceptInviteUseCase
	listMembersUseCase  *household.ListMembersUseCase
	removeMemberUseCase *household.RemoveMemberUseCase
	leaveUseCase        *household.LeaveHouseholdUseCase
	appBaseURL          string
}

// NewHouseholdController creates a new household controller instance.
func NewHouseholdController(
	createUseCase *household.CreateHouseholdUseCase,
	listUseCase *household.ListHouseholdsUseCase,
	inviteUseCase *household.InviteMemberUseCase,
	acceptInviteUseCase *household.AcceptInviteUseCase,
	listMembersUseCase *household.ListMembersUseCase,
	removeMemberUseCase *household.RemoveMemberUseCase,
	leaveUseCase *household.LeaveHouseholdUseCase,
	appBaseURL string,
) *HouseholdController {
	return &HouseholdController{
		createUseCase:       createUseCase,
		listUseCase:         listUseCase,
		inviteUseCase:       inviteUseCase,
		acceptInviteUseCase: acceptInviteUseCase,
		listMembersUseCase:  listMembersUseCase,
		removeMemberUseCase: removeMemberUseCase,
		leaveUseCase:        leaveUseCase,
		appBaseURL:          appBaseURL,
	}
}

// Create handles POST /households requests.
func (c *HouseholdController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateHouseholdRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := household.CreateHouseholdInput{
		UserID: userID,
		Name:   req.Name,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHouseholdError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToHouseholdResponse(output.Household))
}

// List handles GET /households requests.
func (c *HouseholdController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), household.ListHouseholdsInput{UserID: userID})
	if err != nil {
		c.handleHouseholdError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHouseholdListResponse(output.Households))
}

// InviteMember handles POST /households/:id/invites requests. The invitation
// email is delivered asynchronously by the email worker.
func (c *HouseholdController) InviteMember(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	householdID, ok := parseHouseholdID(ctx)
	if !ok {
		return
	}

	var req dto.InviteMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := household.InviteMemberInput{
		HouseholdID: householdID,
		Email:       req.Email,
		InviterID:   userID,
		InviteURL:   fmt.Sprintf("%s/households/accept", c.appBaseURL),
	}

	output, err := c.inviteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHouseholdError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToHouseholdInviteResponse(output.Invite))
}

// AcceptInvite handles POST /households/invites/accept requests.
func (c *HouseholdController) AcceptInvite(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.AcceptInviteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := household.AcceptInviteInput{
		Token:  req.Token,
		UserID: userID,
	}

	output, err := c.acceptInviteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHouseholdError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AcceptInviteResponse{
		HouseholdID:   output.HouseholdID.String(),
		HouseholdName: output.HouseholdName,
	})
}

// ListMembers handles GET /households/:id/members requests.
func (c *HouseholdController) ListMembers(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	householdID, ok := parseHouseholdID(ctx)
	if !ok {
		return
	}

	input := household.ListMembersInput{
		HouseholdID: householdID,
		UserID:      userID,
	}

	output, err := c.listMembersUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHouseholdError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHouseholdMemberListResponse(output.Members))
}

// RemoveMember handles DELETE /households/:id/members/:userId requests.
func (c *HouseholdController) RemoveMember(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	householdID, ok := parseHouseholdID(ctx)
	if !ok {
		return
	}

	targetUserID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	input := household.RemoveMemberInput{
		HouseholdID:  householdID,
		UserID:       userID,
		TargetUserID: targetUserID,
	}

	if _, err := c.removeMemberUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleHouseholdError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Leave handles POST /households/:id/leave requests.
func (c *HouseholdController) Leave(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	householdID, ok := parseHouseholdID(ctx)
	if !ok {
		return
	}

	input := household.LeaveHouseholdInput{
		HouseholdID: householdID,
		UserID:      userID,
	}

	if _, err := c.leaveUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleHouseholdError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseHouseholdID parses the :id path parameter. It writes the error
// response itself and reports success via the bool.
func parseHouseholdID(ctx *gin.Context) (uuid.UUID, bool) {
	householdID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid household ID format",
		})
		return uuid.Nil, false
	}
	return householdID, true
}

// handleHouseholdError handles household errors and returns appropriate HTTP responses.
func (c *HouseholdController) handleHouseholdError(ctx *gin.Context, err error) {
	var householdErr *domainerror.HouseholdError
	if errors.As(err, &householdErr) {
		statusCode := c.getStatusCodeForHouseholdError(householdErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: householdErr.Message,
			Code:  string(householdErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForHouseholdError maps household error codes to HTTP status codes.
func (c *HouseholdController) getStatusCodeForHouseholdError(code domainerror.HouseholdErrorCode) int {
	switch code {
	case domainerror.ErrCodeHouseholdNotFound,
		domainerror.ErrCodeInviteNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotHouseholdMember,
		domainerror.ErrCodeNotHouseholdOwner,
		domainerror.ErrCodeOwnerCannotLeave:
		return http.StatusForbidden
	case domainerror.ErrCodeAlreadyHouseholdMember,
		domainerror.ErrCodeInvitePending:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidHouseholdEmail,
		domainerror.ErrCodeMissingHouseholdName,
		domainerror.ErrCodeCannotInviteSelf,
		domainerror.ErrCodeInviteExpired:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
