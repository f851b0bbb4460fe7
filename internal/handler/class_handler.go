package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tutor-classes-api/internal/models"
	"github.com/noah-isme/tutor-classes-api/internal/service"
	appErrors "github.com/noah-isme/tutor-classes-api/pkg/errors"
	"github.com/noah-isme/tutor-classes-api/pkg/response"
)

type classService interface {
	Search(ctx context.Context, req service.SearchClassesRequest) ([]models.ClassListing, error)
	Register(ctx context.Context, req service.CreateClassRequest) error
}

// ClassHandler exposes the class search and registration endpoints.
type ClassHandler struct {
	service classService
}

// NewClassHandler constructs a class handler.
func NewClassHandler(svc classService) *ClassHandler {
	return &ClassHandler{service: svc}
}

// Index godoc
// @Summary Search tutors available for a subject at a weekday and time
// @Tags Classes
// @Produce json
// @Param subject query string true "Subject taught"
// @Param week_day query int true "Weekday, 0 (Sunday) to 6"
// @Param time query string true "Time of day as HH:MM"
// @Success 200 {array} models.ClassListing
// @Failure 400 {object} response.MessageBody
// @Router /classes [get]
func (h *ClassHandler) Index(c *gin.Context) {
	req := service.SearchClassesRequest{
		Subject: c.Query("subject"),
		WeekDay: c.Query("week_day"),
		Time:    c.Query("time"),
	}
	classes, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		response.Message(c, err)
		return
	}
	response.Raw(c, http.StatusOK, classes)
}

// Create godoc
// @Summary Register a tutor with the class they teach and its weekly schedule
// @Tags Classes
// @Accept json
// @Param payload body service.CreateClassRequest true "Registration payload"
// @Success 201
// @Failure 400 {object} response.MessageBody
// @Router /classes [post]
func (h *ClassHandler) Create(c *gin.Context) {
	var req service.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, appErrors.Wrap(err, appErrors.ErrRegistrationFailed.Code, appErrors.ErrRegistrationFailed.Status, appErrors.ErrRegistrationFailed.Message))
		return
	}
	if err := h.service.Register(c.Request.Context(), req); err != nil {
		response.Message(c, err)
		return
	}
	response.Created(c)
}

// RegisterRoutes mounts the class endpoints on rg.
func (h *ClassHandler) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/classes", h.Index)
	rg.POST("/classes", h.Create)
}
