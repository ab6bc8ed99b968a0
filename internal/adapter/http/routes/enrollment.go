package routes

import (
	"precad_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathIntakes = "/intakes"
)

func addEnrollmentRoutes(rg *gin.RouterGroup, intakeHandler *handlers.IntakeHandler, slotHandler *handlers.SlotHandler) {
	intakes := rg.Group(PathIntakes)
	{
		intakes.POST("", intakeHandler.CreateIntake)
		intakes.GET("/:id", intakeHandler.GetIntake)
		intakes.POST("/:id/process", intakeHandler.ProcessIntake)

		intakes.PUT("/:id/slots/:slot", slotHandler.SelectGroup)
		intakes.DELETE("/:id/slots/:slot", slotHandler.ClearSlot)
		intakes.GET("/:id/slots/:slot/options", slotHandler.ListOptions)
	}

	rg.GET("/gestante-groups", slotHandler.ListGestanteGroups)
}
