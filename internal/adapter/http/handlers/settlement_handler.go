package handlers

import (
	"errors"
	"log"
	"net/http"

	request "repairdesk/internal/adapter/http/dto/request"
	response "repairdesk/internal/adapter/http/dto/response"
	"repairdesk/internal/usecase"
	"repairdesk/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSettlementPayload = pkg.NewDomainErrorSimple("INVALID_SETTLEMENT_INPUT", "Invalid settlement payload", http.StatusBadRequest)

// SettlementHandler handles the money-moving endpoints: collect a payment,
// return a job, list receipts.

type SettlementHandler struct {
	usecase usecase.ISettlementUseCase
}

func NewSettlementHandler(uc usecase.ISettlementUseCase) *SettlementHandler {
	return &SettlementHandler{usecase: uc}
}

// CollectPayment settles the balance and moves the job to delivered.
func (h *SettlementHandler) CollectPayment(c *gin.Context) {
	jobID := c.Param("id")
	log.Printf("[settlement][handler] payment start job_id=%s", jobID)

	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettlementPayload.HTTPStatus, errInvalidSettlementPayload.ToHTTPError())
		return
	}

	params, err := payload.ToParams()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Invalid monetary value", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	job, err := h.usecase.CollectPayment(c.Request.Context(), jobID, params)
	if err != nil {
		log.Printf("[settlement][handler] payment failed job_id=%s err=%v", jobID, err)
		appErr := mapSettlementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[settlement][handler] payment success job_id=%s status=%s", jobID, job.Status)

	c.JSON(http.StatusOK, response.FromJob(job))
}

// ReturnOrder closes the job as returned.
func (h *SettlementHandler) ReturnOrder(c *gin.Context) {
	jobID := c.Param("id")

	var payload request.ReturnRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettlementPayload.HTTPStatus, errInvalidSettlementPayload.ToHTTPError())
		return
	}

	params, err := payload.ToParams()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Invalid monetary value", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	job, err := h.usecase.ReturnOrder(c.Request.Context(), jobID, params)
	if err != nil {
		log.Printf("[settlement][handler] return failed job_id=%s err=%v", jobID, err)
		appErr := mapSettlementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// ListReceipts returns the payment receipts recorded for a job.
func (h *SettlementHandler) ListReceipts(c *gin.Context) {
	receipts, err := h.usecase.ListReceiptsByJobID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSettlementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReceipts(receipts))
}

func mapSettlementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_BAD_REQUEST", "Payment provider rejected the request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Online payment is not configured", http.StatusServiceUnavailable)
	default:
		return mapJobError(err)
	}
}
