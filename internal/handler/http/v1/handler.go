package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/nirapotta/sos-backend/internal/config"
	"github.com/nirapotta/sos-backend/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	alertService       service.AlertService
	evidenceService    service.EvidenceService
	recognitionService service.RecognitionService
	logger             *logrus.Logger
	validate           *validator.Validate
	cfg                *config.Config
}

func NewHandler(
	alertService service.AlertService,
	evidenceService service.EvidenceService,
	recognitionService service.RecognitionService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		alertService:       alertService,
		evidenceService:    evidenceService,
		recognitionService: recognitionService,
		logger:             logger,
		validate:           validator.New(),
		cfg:                cfg,
	}
}

// respondServiceError транслирует ошибки сервисного слоя в HTTP-статусы
func (h *Handler) respondServiceError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		log.WithError(err).Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrUnauthorized):
		log.WithError(err).Warn("Unauthorized request")
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, service.ErrAlertNotActive):
		log.WithError(err).Warn("Alert is not active")
		c.JSON(http.StatusConflict, gin.H{"error": "alert is not active"})
	default:
		log.WithError(err).Error("Internal error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Trigger an SOS alert
// @Description Activate an SOS alert: nearby police stations are recorded, emergency contacts get SMS, nearby users get push notifications. Requires API key.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param alert body CreateSOSRequest true "SOS activation request"
// @Success 201 {object} SOSAlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos [post]
func (h *Handler) createSOS(c *gin.Context) {
	var input CreateSOSRequest
	log := h.logger.WithField("method", "createSOS")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := h.alertService.CreateSOSAlert(c.Request.Context(), input.UserID, input.Latitude, input.Longitude, input.TriggerMethod)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAlertResponse(alert))
}

// @Summary Update alert location
// @Description Append a live tracking point to an active alert. Requires API key.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param alertId path string true "Alert ID"
// @Param location body UpdateLocationRequest true "Location update request"
// @Success 200 {object} SOSAlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Alert is not active"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos/{alertId}/location [patch]
func (h *Handler) updateSOSLocation(c *gin.Context) {
	alertID := c.Param("alertId")
	log := h.logger.WithField("method", "updateSOSLocation").WithField("alert_id", alertID)

	var input UpdateLocationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := h.alertService.UpdateSOSLocation(c.Request.Context(), alertID, input.Latitude, input.Longitude, input.AccuracyMeters)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Cancel an SOS alert
// @Description Cancel an active alert. Only the alert owner can cancel. Requires API key.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param alertId path string true "Alert ID"
// @Param request body CancelSOSRequest true "Cancel request"
// @Success 200 {object} SOSAlertResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Requester is not the alert owner"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Alert is not active"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos/{alertId}/cancel [patch]
func (h *Handler) cancelSOS(c *gin.Context) {
	alertID := c.Param("alertId")
	log := h.logger.WithField("method", "cancelSOS").WithField("alert_id", alertID)

	var input CancelSOSRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := h.alertService.CancelSOSAlert(c.Request.Context(), alertID, input.UserID)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Get alert by ID
// @Description Get a single SOS alert with its notification and tracking history. Requires API key.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param alertId path string true "Alert ID"
// @Success 200 {object} SOSAlertResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos/{alertId} [get]
func (h *Handler) getSOS(c *gin.Context) {
	alertID := c.Param("alertId")
	log := h.logger.WithField("method", "getSOS").WithField("alert_id", alertID)

	alert, err := h.alertService.GetSOSAlert(c.Request.Context(), alertID)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary List nearby active alerts
// @Description List active SOS alerts within a radius of a point, closest first. Requires API key.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Param radius query number false "Search radius in meters"
// @Success 200 {array} SOSAlertResponse
// @Failure 400 {object} map[string]string "Invalid coordinates or radius"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos/nearby [get]
func (h *Handler) nearbySOS(c *gin.Context) {
	log := h.logger.WithField("method", "nearbySOS")

	lat, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude"})
		return
	}
	lon, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude"})
		return
	}

	radius := h.cfg.NearbyAlertsRadiusMeters
	if raw := c.Query("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius"})
			return
		}
	}

	alerts, err := h.alertService.GetNearbyAlerts(c.Request.Context(), lat, lon, radius)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Submit video evidence
// @Description Upload a video: evenly spaced frames are scanned against the watch list and a report is emailed to the responsible police station. Requires API key.
// @Tags Evidence
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param user_id formData string true "Submitting user ID"
// @Param latitude formData number true "Latitude"
// @Param longitude formData number true "Longitude"
// @Param video formData file true "Video file"
// @Success 200 {object} EvidenceResponse
// @Failure 400 {object} map[string]string "Missing or invalid form fields"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User or police station not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /evidence/video [post]
func (h *Handler) submitVideoEvidence(c *gin.Context) {
	log := h.logger.WithField("method", "submitVideoEvidence")

	userID := c.PostForm("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	lat, err := strconv.ParseFloat(c.PostForm("latitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude"})
		return
	}
	lon, err := strconv.ParseFloat(c.PostForm("longitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude"})
		return
	}

	file, err := c.FormFile("video")
	if err != nil {
		log.WithError(err).Warn("Video file missing from request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "video file is required"})
		return
	}

	filename := fmt.Sprintf("evidence_%d%s", time.Now().UnixNano(), filepath.Ext(file.Filename))
	videoPath := filepath.Join(h.cfg.UploadsDir, filename)
	if err := c.SaveUploadedFile(file, videoPath); err != nil {
		log.WithError(err).Error("Failed to save uploaded video")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save uploaded video"})
		return
	}

	result, err := h.evidenceService.ProcessVideoEvidence(c.Request.Context(), userID, videoPath, filename, lat, lon)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToEvidenceResponse(result))
}

// @Summary Scan an image for known faces
// @Description Detect all faces in an image and classify each against the watch list. Requires API key.
// @Tags Recognition
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param image formData file true "Image file"
// @Success 200 {object} ImageScanResponse
// @Failure 400 {object} map[string]string "Image file missing or unreadable"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /recognition/image [post]
func (h *Handler) scanImage(c *gin.Context) {
	log := h.logger.WithField("method", "scanImage")

	file, err := c.FormFile("image")
	if err != nil {
		log.WithError(err).Warn("Image file missing from request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	src, err := file.Open()
	if err != nil {
		log.WithError(err).Error("Failed to open uploaded image")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read uploaded image"})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		log.WithError(err).Error("Failed to read uploaded image")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read uploaded image"})
		return
	}

	result, err := h.recognitionService.ScanImage(data)
	if err != nil {
		log.WithError(err).Error("Image scan failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "image scan failed"})
		return
	}
	c.JSON(http.StatusOK, ScanResultToResponse(result))
}

// @Summary Reload the face watch list
// @Description Rebuild the watch list from the dataset directory. Requires API key.
// @Tags Recognition
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ReloadWatchlistResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /recognition/reload [post]
func (h *Handler) reloadWatchlist(c *gin.Context) {
	log := h.logger.WithField("method", "reloadWatchlist")

	count := h.recognitionService.ReloadWatchlist()
	log.WithField("sample_count", count).Info("Watchlist reloaded")
	c.JSON(http.StatusOK, ReloadWatchlistResponse{SampleCount: count})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
