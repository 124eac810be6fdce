package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/gym_checkin_system/internal/config"
	"github.com/shenikar/gym_checkin_system/internal/geo"
	"github.com/shenikar/gym_checkin_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	checkInService  service.CheckInService
	gymService      service.GymService
	registerService service.RegisterService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(checkInService service.CheckInService, gymService service.GymService, registerService service.RegisterService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		checkInService:  checkInService,
		gymService:      gymService,
		registerService: registerService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// respondServiceError переводит доменные ошибки сервиса в HTTP ответ
func respondServiceError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrResourceNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrMaxDistance):
		log.WithError(err).Warn("Check-in rejected")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrMaxNumberOfCheckIns), errors.Is(err, service.ErrUserAlreadyExists):
		log.WithError(err).Warn("Conflict")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrLateCheckInValidation):
		log.WithError(err).Warn("Validation rejected")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindAndValidate читает JSON тело и валидирует его; при ошибке пишет 400
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Register a new user
// @Description Register a user with a unique e-mail.
// @Tags Users
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "User registration request"
// @Success 201 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "E-mail already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "register")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	user, err := h.registerService.Register(c.Request.Context(), DTOToRegisterInput(input))
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToUserResponse(user))
}

// @Summary Create a new gym
// @Description Create a new gym. Requires API key.
// @Tags Gyms
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param gym body CreateGymRequest true "Gym creation request"
// @Success 201 {object} GymResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /gyms [post]
func (h *Handler) createGym(c *gin.Context) {
	var input CreateGymRequest
	log := h.logger.WithField("method", "createGym")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	gym, err := h.gymService.CreateGym(c.Request.Context(), DTOToCreateGymInput(input))
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToGymResponse(gym))
}

// @Summary Get gym by ID
// @Tags Gyms
// @Produce json
// @Param id path string true "Gym ID"
// @Success 200 {object} GymResponse
// @Failure 400 {object} map[string]string "Invalid gym ID"
// @Failure 404 {object} map[string]string "Gym not found"
// @Router /gyms/{id} [get]
func (h *Handler) getGym(c *gin.Context) {
	id, ok := parseIDParam(c, "gym")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getGym").WithField("id", id)

	gym, err := h.gymService.GetGym(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToGymResponse(gym))
}

// @Summary Search gyms by title
// @Tags Gyms
// @Produce json
// @Param q query string false "Title search query"
// @Param page query int false "Page number" default(1)
// @Success 200 {array} GymResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /gyms/search [get]
func (h *Handler) searchGyms(c *gin.Context) {
	log := h.logger.WithField("method", "searchGyms")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	gyms, err := h.gymService.SearchGyms(c.Request.Context(), c.Query("q"), page)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToGymResponses(gyms))
}

// @Summary Fetch gyms near a point
// @Description Fetch gyms within 10 km of the given coordinates.
// @Tags Gyms
// @Produce json
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Success 200 {array} GymResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /gyms/nearby [get]
func (h *Handler) nearbyGyms(c *gin.Context) {
	log := h.logger.WithField("method", "nearbyGyms")

	lat, latErr := strconv.ParseFloat(c.Query("latitude"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("longitude"), 64)
	if latErr != nil || lonErr != nil ||
		h.validate.Var(lat, "latitude") != nil || h.validate.Var(lon, "longitude") != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
		return
	}

	gyms, err := h.gymService.FetchNearbyGyms(c.Request.Context(), geo.Coordinate{Latitude: lat, Longitude: lon})
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToGymResponses(gyms))
}

// @Summary Check in to a gym
// @Description Check in a user who is within 100 meters of the gym, at most once per calendar day.
// @Tags Check-ins
// @Accept json
// @Produce json
// @Param id path string true "Gym ID"
// @Param check_in body CheckInRequest true "Check-in request"
// @Success 201 {object} CheckInResponse
// @Failure 400 {object} map[string]string "Invalid request or user too far from gym"
// @Failure 404 {object} map[string]string "Gym not found"
// @Failure 409 {object} map[string]string "Already checked in today"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /gyms/{id}/check-ins [post]
func (h *Handler) checkIn(c *gin.Context) {
	gymID, ok := parseIDParam(c, "gym")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "checkIn").WithField("gym_id", gymID)

	var input CheckInRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	checkIn, err := h.checkInService.CheckIn(c.Request.Context(), service.CheckInInput{
		GymID:         gymID,
		UserID:        uuid.MustParse(input.UserID),
		UserLatitude:  *input.Latitude,
		UserLongitude: *input.Longitude,
	})
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToCheckInResponse(checkIn))
}

// @Summary Validate a check-in
// @Description Validate a check-in within 20 minutes of its creation. Requires API key.
// @Tags Check-ins
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Check-in ID"
// @Success 200 {object} CheckInResponse
// @Failure 400 {object} map[string]string "Invalid check-in ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Check-in not found"
// @Failure 422 {object} map[string]string "Validation window expired"
// @Router /check-ins/{id}/validate [patch]
func (h *Handler) validateCheckIn(c *gin.Context) {
	id, ok := parseIDParam(c, "check-in")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "validateCheckIn").WithField("id", id)

	checkIn, err := h.checkInService.Validate(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToCheckInResponse(checkIn))
}

// @Summary Get user check-in history
// @Tags Check-ins
// @Produce json
// @Param id path string true "User ID"
// @Param page query int false "Page number" default(1)
// @Success 200 {array} CheckInResponse
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{id}/check-ins/history [get]
func (h *Handler) checkInHistory(c *gin.Context) {
	userID, ok := parseIDParam(c, "user")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "checkInHistory").WithField("user_id", userID)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	checkIns, err := h.checkInService.History(c.Request.Context(), userID, page)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToCheckInResponses(checkIns))
}

// @Summary Get user check-in metrics
// @Tags Check-ins
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} MetricsResponse
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{id}/check-ins/metrics [get]
func (h *Handler) checkInMetrics(c *gin.Context) {
	userID, ok := parseIDParam(c, "user")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "checkInMetrics").WithField("user_id", userID)

	count, err := h.checkInService.Metrics(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, MetricsResponse{CheckInsCount: count})
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
