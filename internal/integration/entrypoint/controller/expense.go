// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/home-ledger/backend/internal/application/usecase/expense"
	"github.com/home-ledger/backend/internal/domain/entity"
	domainerror "github.com/home-ledger/backend/internal/domain/error"
	"github.com/home-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/home-ledger/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	createUseCase *expense.CreateExpenseUseCase
	listUseCase   *expense.ListExpensesUseCase
	updateUseCase *expense.UpdateExpenseUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *expense.CreateExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
		})
		return
	}

	input := expense.CreateExpenseInput{
		UserID:      userID,
		Description: req.Description,
		Area:        req.Area,
		Category:    req.Category,
		Value:       decimal.NewFromFloat(req.Value),
		Date:        date,
		Status:      entity.ExpenseStatus(req.Status),
		Recurrence:  entity.NoRecurrence(),
	}

	if req.PaymentDate != nil {
		paymentDate, err := time.Parse("2006-01-02", *req.PaymentDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid payment date format. Use YYYY-MM-DD",
			})
			return
		}
		input.PaymentDate = &paymentDate
	}

	if input.CardID, err = parseOptionalUUID(req.CardID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid card ID format",
		})
		return
	}
	if input.AccountID, err = parseOptionalUUID(req.AccountID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	if req.Recurrence != nil {
		recurrence, err := parseRecurrence(req.Recurrence)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: err.Error(),
				Code:  string(domainerror.ErrCodeInvalidRecurrence),
			})
			return
		}
		input.Recurrence = recurrence
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// List handles GET /expenses requests. Recurring expenses are returned
// expanded into their dated instances.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := expense.ListExpensesInput{
		UserID:   userID,
		Area:     ctx.Query("area"),
		Category: ctx.Query("category"),
	}

	if cardIDStr := ctx.Query("cardId"); cardIDStr != "" {
		cardID, err := uuid.Parse(cardIDStr)
		if err == nil {
			input.CardID = &cardID
		}
	}
	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.ExpenseStatus(statusStr)
		input.Status = &status
	}
	if fromStr := ctx.Query("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err == nil {
			input.From = &from
		}
	}
	if toStr := ctx.Query("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err == nil {
			input.To = &to
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve expenses",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Instances))
}

// Update handles PATCH /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := expense.UpdateExpenseInput{
		UserID:      userID,
		ExpenseID:   expenseID,
		Description: req.Description,
		Area:        req.Area,
		Category:    req.Category,
	}

	if req.Value != nil {
		value := decimal.NewFromFloat(*req.Value)
		input.Value = &value
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
			})
			return
		}
		input.Date = &date
	}
	if req.Status != nil {
		status := entity.ExpenseStatus(*req.Status)
		input.Status = &status
	}
	if req.PaymentDate != nil {
		paymentDate, err := time.Parse("2006-01-02", *req.PaymentDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid payment date format. Use YYYY-MM-DD",
			})
			return
		}
		input.PaymentDate = &paymentDate
	}
	if input.CardID, err = parseOptionalUUID(req.CardID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid card ID format",
		})
		return
	}
	if input.AccountID, err = parseOptionalUUID(req.AccountID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}
	if req.Recurrence != nil {
		recurrence, err := parseRecurrence(req.Recurrence)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: err.Error(),
				Code:  string(domainerror.ErrCodeInvalidRecurrence),
			})
			return
		}
		input.Recurrence = &recurrence
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Delete handles DELETE /expenses/:id requests. Deleting a recurring expense
// removes the whole series.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	input := expense.DeleteExpenseInput{
		UserID:    userID,
		ExpenseID: expenseID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseRecurrence converts a recurrence request into the domain variant.
func parseRecurrence(req *dto.RecurrenceRequest) (entity.Recurrence, error) {
	switch entity.RecurrenceType(req.Type) {
	case entity.RecurrenceNone:
		return entity.NoRecurrence(), nil
	case entity.RecurrenceDateRange:
		if req.EndDate == nil {
			return entity.Recurrence{}, errors.New("end_date is required for date_range recurrence")
		}
		endDate, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return entity.Recurrence{}, errors.New("invalid end_date format; use YYYY-MM-DD")
		}
		return entity.DateRangeRecurrence(endDate), nil
	case entity.RecurrenceInstallments:
		if req.Installments == nil {
			return entity.Recurrence{}, errors.New("installments is required for installments recurrence")
		}
		return entity.InstallmentsRecurrence(*req.Installments), nil
	case entity.RecurrenceFrequency:
		if req.FrequencyUnit == nil {
			return entity.Recurrence{}, errors.New("frequency_unit is required for frequency recurrence")
		}
		return entity.FrequencyRecurrence(entity.FrequencyUnit(*req.FrequencyUnit)), nil
	default:
		return entity.Recurrence{}, errors.New("unknown recurrence type")
	}
}

// parseOptionalUUID parses an optional uuid string; nil and empty pass through.
func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// handleExpenseError handles expense errors and returns appropriate HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var expErr *domainerror.ExpenseError
	if errors.As(err, &expErr) {
		statusCode := c.getStatusCodeForExpenseError(expErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: expErr.Message,
			Code:  string(expErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForExpenseError maps expense error codes to HTTP status codes.
func (c *ExpenseController) getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedExpense:
		return http.StatusForbidden
	case domainerror.ErrCodeNegativeExpenseValue,
		domainerror.ErrCodeInvalidExpenseStatus,
		domainerror.ErrCodeInvalidRecurrence,
		domainerror.ErrCodeInstallmentsOutOfRange,
		domainerror.ErrCodeExpenseDescriptionTooLong,
		domainerror.ErrCodeMissingExpenseFields,
		domainerror.ErrCodeExpCardNotFound,
		domainerror.ErrCodeExpAccountNotFound:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
