package routes

import (
	"repairdesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs    = "/jobs"
	PathVendors = "/vendors"
)

func addJobRoutes(rg *gin.RouterGroup, jobHandler *handlers.JobHandler, outsourceHandler *handlers.OutsourceHandler, settlementHandler *handlers.SettlementHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("/:id", jobHandler.GetJob)
		jobs.PATCH("/:id", jobHandler.UpdateJob)
		jobs.DELETE("/:id", jobHandler.DeleteJob)

		jobs.POST("/:id/outsource", outsourceHandler.AssignVendor)
		jobs.POST("/:id/receive-back", outsourceHandler.ReceiveBack)

		jobs.POST("/:id/payment", settlementHandler.CollectPayment)
		jobs.POST("/:id/return", settlementHandler.ReturnOrder)
		jobs.GET("/:id/receipts", settlementHandler.ListReceipts)
	}

	vendors := rg.Group(PathVendors)
	{
		vendors.GET("/:name", outsourceHandler.GetVendor)
	}
}
