// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/home-ledger/backend/internal/application/usecase/card"
	"github.com/home-ledger/backend/internal/domain/entity"
	domainerror "github.com/home-ledger/backend/internal/domain/error"
	"github.com/home-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/home-ledger/backend/internal/integration/entrypoint/middleware"
)

// CardController handles card endpoints.
type CardController struct {
	createUseCase *card.CreateCardUseCase
	listUseCase   *card.ListCardsUseCase
	updateUseCase *card.UpdateCardUseCase
	deleteUseCase *card.DeleteCardUseCase
}

// NewCardController creates a new card controller instance.
func NewCardController(
	createUseCase *card.CreateCardUseCase,
	listUseCase *card.ListCardsUseCase,
	updateUseCase *card.UpdateCardUseCase,
	deleteUseCase *card.DeleteCardUseCase,
) *CardController {
	return &CardController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /cards requests.
func (c *CardController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingCardFields),
		})
		return
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	input := card.CreateCardInput{
		UserID:      userID,
		Name:        req.Name,
		Type:        entity.CardType(req.Type),
		AccountID:   accountID,
		CreditLimit: decimal.NewFromFloat(req.CreditLimit),
		DueDay:      req.DueDay,
		ClosingDay:  req.ClosingDay,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCardResponse(output.Card))
}

// List handles GET /cards requests.
func (c *CardController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), card.ListCardsInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve cards",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCardListResponse(output))
}

// Update handles PATCH /cards/:id requests.
func (c *CardController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	cardID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid card ID format",
		})
		return
	}

	var req dto.UpdateCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := card.UpdateCardInput{
		UserID:     userID,
		CardID:     cardID,
		Name:       req.Name,
		DueDay:     req.DueDay,
		ClosingDay: req.ClosingDay,
	}

	if req.Type != nil {
		cardType := entity.CardType(*req.Type)
		input.Type = &cardType
	}
	if req.AccountID != nil {
		accountID, err := uuid.Parse(*req.AccountID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid account ID format",
			})
			return
		}
		input.AccountID = &accountID
	}
	if req.CreditLimit != nil {
		creditLimit := decimal.NewFromFloat(*req.CreditLimit)
		input.CreditLimit = &creditLimit
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCardResponse(output.Card))
}

// Delete handles DELETE /cards/:id requests.
func (c *CardController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	cardID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid card ID format",
		})
		return
	}

	input := card.DeleteCardInput{
		UserID: userID,
		CardID: cardID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleCardError handles card errors and returns appropriate HTTP responses.
func (c *CardController) handleCardError(ctx *gin.Context, err error) {
	var cardErr *domainerror.CardError
	if errors.As(err, &cardErr) {
		statusCode := c.getStatusCodeForCardError(cardErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: cardErr.Message,
			Code:  string(cardErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCardError maps card error codes to HTTP status codes.
func (c *CardController) getStatusCodeForCardError(code domainerror.CardErrorCode) int {
	switch code {
	case domainerror.ErrCodeCardNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedCard:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidCardType,
		domainerror.ErrCodeInvalidCardDay,
		domainerror.ErrCodeNegativeCreditLimit,
		domainerror.ErrCodeMissingCardFields,
		domainerror.ErrCodeCardAccountNotFound:
		return http.StatusBadRequest
	case domainerror.ErrCodeCardHasExpenses:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
