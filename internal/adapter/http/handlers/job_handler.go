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

var errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)

// JobHandler handles HTTP requests for job intake, edit, lookup and delete.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// CreateJob registers a new service order; the job starts in received.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	params, err := payload.ToParams()
	if err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.CreateJob(c.Request.Context(), params)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJob(job))
}

// GetJob returns a job by id.
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// UpdateJob applies a partial edit; a status change is validated against the
// transition table.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var payload request.UpdateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	params, err := payload.ToParams()
	if err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.UpdateJob(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		log.Printf("[job][handler] update failed job_id=%s err=%v", c.Param("id"), err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// DeleteJob removes a job.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.usecase.DeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// mapJobError translates the shared business-rule error kinds; the other
// handlers fall through to it for everything not specific to them.
func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVendorNotFound):
		return pkg.NewDomainErrorSimple("VENDOR_NOT_FOUND", "Vendor not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Job was modified concurrently, reload and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingRequiredField):
		return pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELD", err.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
