package handlers

import (
	"log"
	"net/http"

	request "repairdesk/internal/adapter/http/dto/request"
	response "repairdesk/internal/adapter/http/dto/response"
	"repairdesk/internal/usecase"
	"repairdesk/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOutsourcePayload = pkg.NewDomainErrorSimple("INVALID_OUTSOURCE_INPUT", "Invalid outsource payload", http.StatusBadRequest)

// OutsourceHandler handles vendor assignment, receive-back and vendor lookup.

type OutsourceHandler struct {
	usecase usecase.IOutsourceUseCase
}

func NewOutsourceHandler(uc usecase.IOutsourceUseCase) *OutsourceHandler {
	return &OutsourceHandler{usecase: uc}
}

// AssignVendor hands a job to a vendor and moves it to outsourced.
func (h *OutsourceHandler) AssignVendor(c *gin.Context) {
	jobID := c.Param("id")

	var payload request.OutsourceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOutsourcePayload.HTTPStatus, errInvalidOutsourcePayload.ToHTTPError())
		return
	}

	params, err := payload.ToParams()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Invalid monetary value", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	job, err := h.usecase.AssignVendor(c.Request.Context(), jobID, params)
	if err != nil {
		log.Printf("[outsource][handler] assign failed job_id=%s err=%v", jobID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// ReceiveBack takes an outsourced job back from its vendor.
func (h *OutsourceHandler) ReceiveBack(c *gin.Context) {
	jobID := c.Param("id")

	var payload request.ReceiveBackRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOutsourcePayload.HTTPStatus, errInvalidOutsourcePayload.ToHTTPError())
		return
	}

	params, err := payload.ToParams()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Invalid monetary value", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	job, err := h.usecase.ReceiveBack(c.Request.Context(), jobID, params)
	if err != nil {
		log.Printf("[outsource][handler] receive-back failed job_id=%s err=%v", jobID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// GetVendor returns a vendor by name.
func (h *OutsourceHandler) GetVendor(c *gin.Context) {
	vendor, err := h.usecase.GetVendor(c.Request.Context(), c.Param("name"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVendor(vendor))
}
