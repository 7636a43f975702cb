package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/request_models"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type PlanController struct {
	plannerService services.PlannerServiceInterface
	geocodeService services.GeocodeServiceInterface
}

func NewPlanController(
	plannerService services.PlannerServiceInterface,
	geocodeService services.GeocodeServiceInterface,
) *PlanController {
	return &PlanController{
		plannerService: plannerService,
		geocodeService: geocodeService,
	}
}

func (p *PlanController) GeneratePlanHandler(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := p.plannerService.GeneratePlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Travel plan created successfully")
}

func (p *PlanController) GeocodeHandler(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "destination is required")
		return
	}

	point, err := p.geocodeService.Locate(c.Request.Context(), destination)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, point, "Location resolved")
}
