package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"parking-contact/internal/service"
)

type Handler struct {
	registrationService *service.RegistrationService
	adminService        *service.AdminService
	baseURL             string
	log                 zerolog.Logger
}

func NewHandler(
	registrationService *service.RegistrationService,
	adminService *service.AdminService,
	baseURL string,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		registrationService: registrationService,
		adminService:        adminService,
		baseURL:             baseURL,
		log:                 log,
	}
}

func (h *Handler) Register(r *gin.Engine) {
	// Public scan-facing endpoints
	qr := r.Group("/qr")
	{
		qr.GET("/info/:shortId", h.getQRInfo)
		qr.POST("/:shortId/register", h.registerVehicle)
		qr.POST("/:shortId/verify", h.verifyPassword)
		qr.PUT("/:shortId/update", h.updateVehicle)
		qr.DELETE("/:shortId/delete", h.unregisterVehicle)
	}

	admin := r.Group("/admin")
	{
		admin.GET("/stats", h.getStats)
		admin.GET("/qr", h.listQRCodes)
		admin.POST("/qr/generate", h.generateQRCodes)
		admin.DELETE("/qr", h.deleteQRCode)
	}
}

func (h *Handler) getQRInfo(c *gin.Context) {
	shortID := strings.TrimSpace(c.Param("shortId"))

	info, err := h.registrationService.Info(c.Request.Context(), shortID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(info))
}

func (h *Handler) registerVehicle(c *gin.Context) {
	shortID := strings.TrimSpace(c.Param("shortId"))

	var req struct {
		PhoneNumber   string `json:"phoneNumber" binding:"required"`
		VehicleNumber string `json:"vehicleNumber" binding:"required"`
		Password      string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	result, err := h.registrationService.Register(c.Request.Context(), shortID, service.RegisterInput{
		PhoneNumber:   req.PhoneNumber,
		VehicleNumber: req.VehicleNumber,
		Password:      req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(result))
}

func (h *Handler) verifyPassword(c *gin.Context) {
	shortID := strings.TrimSpace(c.Param("shortId"))

	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	result, err := h.registrationService.Verify(c.Request.Context(), shortID, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(result))
}

func (h *Handler) updateVehicle(c *gin.Context) {
	shortID := strings.TrimSpace(c.Param("shortId"))

	var req struct {
		Password      string `json:"password" binding:"required"`
		PhoneNumber   string `json:"phoneNumber"`
		VehicleNumber string `json:"vehicleNumber"`
		NewPassword   string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	err := h.registrationService.Update(c.Request.Context(), shortID, service.UpdateInput{
		Password:      req.Password,
		PhoneNumber:   req.PhoneNumber,
		VehicleNumber: req.VehicleNumber,
		NewPassword:   req.NewPassword,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"message": "vehicle updated"}))
}

func (h *Handler) unregisterVehicle(c *gin.Context) {
	shortID := strings.TrimSpace(c.Param("shortId"))

	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	if err := h.registrationService.Unregister(c.Request.Context(), shortID, req.Password); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"message": "vehicle unregistered"}))
}

func (h *Handler) getStats(c *gin.Context) {
	stats, err := h.adminService.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(stats))
}

func (h *Handler) listQRCodes(c *gin.Context) {
	page := parseIntQuery(c, "page", 1)
	limit := parseIntQuery(c, "limit", 20)

	list, err := h.adminService.List(c.Request.Context(), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(list))
}

func (h *Handler) generateQRCodes(c *gin.Context) {
	var req struct {
		Count int `json:"count" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	codes, err := h.adminService.GenerateBatch(c.Request.Context(), req.Count, h.baseURL)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(gin.H{
		"count":   len(codes),
		"qrCodes": codes,
	}))
}

func (h *Handler) deleteQRCode(c *gin.Context) {
	var req struct {
		ID string `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	if err := h.adminService.Delete(c.Request.Context(), req.ID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"message": "qr code deleted"}))
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrNotRegistered):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrAlreadyRegistered):
		c.JSON(http.StatusConflict, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func successResponse(data interface{}) gin.H {
	return gin.H{
		"data": data,
	}
}

func errorResponse(message string) gin.H {
	return gin.H{
		"error": message,
	}
}
