// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/home-ledger/backend/internal/application/usecase/invoice"
	domainerror "github.com/home-ledger/backend/internal/domain/error"
	"github.com/home-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/home-ledger/backend/internal/integration/entrypoint/middleware"
)

// InvoiceController handles invoice endpoints. Invoices are computed views:
// listing and fetching recompute them from expenses, cards and overrides.
type InvoiceController struct {
	listUseCase *invoice.ListInvoicesUseCase
	getUseCase  *invoice.GetInvoiceUseCase
	payUseCase  *invoice.PayInvoiceUseCase
}

// NewInvoiceController creates a new invoice controller instance.
func NewInvoiceController(
	listUseCase *invoice.ListInvoicesUseCase,
	getUseCase *invoice.GetInvoiceUseCase,
	payUseCase *invoice.PayInvoiceUseCase,
) *InvoiceController {
	return &InvoiceController{
		listUseCase: listUseCase,
		getUseCase:  getUseCase,
		payUseCase:  payUseCase,
	}
}

// List handles GET /invoices requests.
func (c *InvoiceController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := invoice.ListInvoicesInput{UserID: userID}

	if cardIDStr := ctx.Query("cardId"); cardIDStr != "" {
		cardID, err := uuid.Parse(cardIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid card ID format",
			})
			return
		}
		input.CardID = &cardID
	}
	if monthStr := ctx.Query("month"); monthStr != "" {
		monthInt, err := strconv.Atoi(monthStr)
		if err != nil || monthInt < 1 || monthInt > 12 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid month; must be 1-12",
				Code:  string(domainerror.ErrCodeInvalidInvoiceMonth),
			})
			return
		}
		month := time.Month(monthInt)
		input.Month = &month
	}
	if yearStr := ctx.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid year",
			})
			return
		}
		input.Year = &year
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceListResponse(output.Invoices))
}

// Get handles GET /invoices/:cardId/:year/:month requests.
func (c *InvoiceController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	cardID, month, year, ok := c.parseInvoiceKey(ctx)
	if !ok {
		return
	}

	input := invoice.GetInvoiceInput{
		UserID: userID,
		CardID: cardID,
		Month:  month,
		Year:   year,
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceDetailResponse(output.Invoice, output.Items))
}

// Pay handles POST /invoices/:cardId/:year/:month/pay requests.
func (c *InvoiceController) Pay(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	cardID, month, year, ok := c.parseInvoiceKey(ctx)
	if !ok {
		return
	}

	var req dto.PayInvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
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

	input := invoice.PayInvoiceInput{
		UserID:            userID,
		CardID:            cardID,
		Month:             month,
		Year:              year,
		PaidFromAccountID: accountID,
	}

	if req.PaidDate != nil {
		paidDate, err := time.Parse("2006-01-02", *req.PaidDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid paid date format. Use YYYY-MM-DD",
			})
			return
		}
		input.PaidDate = &paidDate
	}

	output, err := c.payUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(output.Invoice))
}

// parseInvoiceKey parses the card id, year and month path parameters. It
// writes the error response itself and reports success via the bool.
func (c *InvoiceController) parseInvoiceKey(ctx *gin.Context) (uuid.UUID, time.Month, int, bool) {
	cardID, err := uuid.Parse(ctx.Param("cardId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid card ID format",
		})
		return uuid.Nil, 0, 0, false
	}

	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid year",
		})
		return uuid.Nil, 0, 0, false
	}

	monthInt, err := strconv.Atoi(ctx.Param("month"))
	if err != nil || monthInt < 1 || monthInt > 12 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month; must be 1-12",
			Code:  string(domainerror.ErrCodeInvalidInvoiceMonth),
		})
		return uuid.Nil, 0, 0, false
	}

	return cardID, time.Month(monthInt), year, true
}

// handleInvoiceError handles invoice errors and returns appropriate HTTP responses.
func (c *InvoiceController) handleInvoiceError(ctx *gin.Context, err error) {
	var invErr *domainerror.InvoiceError
	if errors.As(err, &invErr) {
		statusCode := c.getStatusCodeForInvoiceError(invErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: invErr.Message,
			Code:  string(invErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForInvoiceError maps invoice error codes to HTTP status codes.
func (c *InvoiceController) getStatusCodeForInvoiceError(code domainerror.InvoiceErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvoiceNotFound,
		domainerror.ErrCodeInvoiceCardNotFound,
		domainerror.ErrCodeInvoiceAccountNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidInvoiceMonth,
		domainerror.ErrCodeInvoiceNotCreditCard:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvoiceAlreadyPaid:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
