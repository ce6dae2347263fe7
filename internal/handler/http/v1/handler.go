package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/wcmap/toilet-map/internal/auth"
	"github.com/wcmap/toilet-map/internal/config"
	"github.com/wcmap/toilet-map/internal/models"
	"github.com/wcmap/toilet-map/internal/service"
)

type Handler struct {
	toiletService service.ToiletService
	authService   auth.Service
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(toiletService service.ToiletService, authService auth.Service, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		toiletService: toiletService,
		authService:   authService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// @Summary List toilets, optionally filtered by proximity
// @Description List toilets visible to the caller. With lat/lon the result is filtered by radius (km) and sorted by distance. Pending records are visible only with an admin session.
// @Tags Toilets
// @Accept json
// @Produce json
// @Param lat query number false "Latitude of the query point"
// @Param lon query number false "Longitude of the query point"
// @Param radius query number false "Radius in kilometers" default(50)
// @Success 200 {array} ToiletResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /toilets [get]
func (h *Handler) listToilets(c *gin.Context) {
	log := h.logger.WithField("method", "listToilets")

	query := models.NearbyQuery{}
	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr != "" && lonStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lat parameter"})
			return
		}
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lon parameter"})
			return
		}
		query.Latitude = &lat
		query.Longitude = &lon
	}
	if radiusStr := c.Query("radius"); radiusStr != "" {
		radius, err := strconv.ParseFloat(radiusStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius parameter"})
			return
		}
		query.RadiusKm = &radius
	}

	toilets, err := h.toiletService.ListToilets(c.Request.Context(), sessionFromContext(c), query)
	if err != nil {
		log.WithError(err).Error("Failed to list toilets from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToToiletResponses(toilets))
}

// @Summary Get toilet by ID
// @Description Get a single toilet by its ID. Pending records are returned only with an admin session.
// @Tags Toilets
// @Accept json
// @Produce json
// @Param id path string true "Toilet ID"
// @Success 200 {object} ToiletResponse
// @Failure 400 {object} map[string]string "Invalid toilet ID"
// @Failure 404 {object} map[string]string "Toilet not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /toilets/{id} [get]
func (h *Handler) getToilet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid toilet ID"})
		return
	}
	log := h.logger.WithField("method", "getToilet").WithField("id", id)

	toilet, err := h.toiletService.GetToilet(c.Request.Context(), sessionFromContext(c), id)
	if err != nil {
		if errors.Is(err, service.ErrToiletNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "toilet not found"})
			return
		}
		log.WithError(err).Error("Failed to get toilet from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToToiletResponse(toilet))
}

// @Summary Submit a new toilet
// @Description Submit a new toilet record. The record is created unapproved and becomes publicly visible only after moderation.
// @Tags Toilets
// @Accept json
// @Produce json
// @Param toilet body CreateToiletRequest true "Toilet submission"
// @Success 201 {object} ToiletResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /toilets [post]
func (h *Handler) createToilet(c *gin.Context) {
	var input CreateToiletRequest
	log := h.logger.WithField("method", "createToilet")

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

	model := CreateDTOToToiletModel(input)
	if err := h.toiletService.CreateToilet(c.Request.Context(), sessionFromContext(c), model); err != nil {
		log.WithError(err).Error("Failed to create toilet in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToToiletResponse(model))
}

// @Summary Update a toilet
// @Description Apply a partial update to a toilet, including the isApproved moderation flag. Requires an admin session.
// @Tags Toilets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Toilet ID"
// @Param toilet body UpdateToiletRequest true "Partial update"
// @Success 200 {object} ToiletResponse
// @Failure 400 {object} map[string]string "Invalid toilet ID or request body"
// @Failure 403 {object} map[string]string "Admin session required"
// @Failure 404 {object} map[string]string "Toilet not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /toilets/{id} [patch]
func (h *Handler) updateToilet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid toilet ID"})
		return
	}
	log := h.logger.WithField("method", "updateToilet").WithField("id", id)

	var input UpdateToiletRequest
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

	toilet, err := h.toiletService.UpdateToilet(c.Request.Context(), sessionFromContext(c), id, UpdateDTOToToiletUpdate(input))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrToiletNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "toilet not found"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "admin session required"})
		case errors.Is(err, service.ErrEmptyUpdate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "update contains no fields"})
		default:
			log.WithError(err).Error("Failed to update toilet in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, ModelToToiletResponse(toilet))
}

// @Summary Delete a toilet
// @Description Permanently delete a toilet record. Requires an admin session.
// @Tags Toilets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Toilet ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid toilet ID"
// @Failure 403 {object} map[string]string "Admin session required"
// @Failure 404 {object} map[string]string "Toilet not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /toilets/{id} [delete]
func (h *Handler) deleteToilet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid toilet ID"})
		return
	}
	log := h.logger.WithField("method", "deleteToilet").WithField("id", id)

	if err := h.toiletService.DeleteToilet(c.Request.Context(), sessionFromContext(c), id); err != nil {
		switch {
		case errors.Is(err, service.ErrToiletNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "toilet not found"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "admin session required"})
		default:
			log.WithError(err).Error("Failed to delete toilet in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Admin login
// @Description Authenticate the administrator and obtain a session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Admin credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

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

	sess, err := h.authService.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		log.WithError(err).Error("Failed to login")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: sess.Token})
}

// @Summary Admin logout
// @Description Revoke the current admin session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Admin session required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	log := h.logger.WithField("method", "logout")

	sess := sessionFromContext(c)
	if err := h.authService.Logout(c.Request.Context(), sess.Token); err != nil {
		log.WithError(err).Error("Failed to logout")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
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
