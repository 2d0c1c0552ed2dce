package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	roomRepoPkg "roomly/database/repository/room"
	"roomly/models"
	bookingSvc "roomly/services/booking"
	"roomly/utils"
)

// RoomHandler serves the room catalog and availability search.
type RoomHandler struct {
	Rooms        roomRepoPkg.RoomRepository
	Availability bookingSvc.AvailabilityEngine
}

// NewRoomHandler constructs a RoomHandler.
func NewRoomHandler(rooms roomRepoPkg.RoomRepository, availability bookingSvc.AvailabilityEngine) *RoomHandler {
	return &RoomHandler{Rooms: rooms, Availability: availability}
}

// ListRoomsHandler handles GET /api/rooms?site=. The catalog is immutable
// after seeding, so responses are cached in Redis.
func (h *RoomHandler) ListRoomsHandler(c *gin.Context) {
	logger := getLogger(c)

	var site models.Site
	if raw := c.Query("site"); raw != "" {
		normalized, ok := models.NormalizeSite(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown site: " + raw})
			return
		}
		site = normalized
	}

	cacheKey := "rooms:list:" + string(site)
	ctx := context.Background()
	cache := utils.GetCacheClient()
	if cached, err := cache.Get(ctx, cacheKey).Result(); err == nil {
		var rooms []models.Room
		if err := json.Unmarshal([]byte(cached), &rooms); err == nil {
			c.JSON(http.StatusOK, gin.H{"rooms": rooms})
			return
		}
	}

	rooms, err := h.Rooms.List(site)
	if err != nil {
		logger.Error("Failed to list rooms", zap.String("site", string(site)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if data, err := json.Marshal(rooms); err == nil {
		if err := cache.Set(ctx, cacheKey, data, utils.RoomCacheTTL()).Err(); err != nil {
			logger.Warn("Failed to cache room list", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// FindAvailableHandler handles GET /api/rooms/available.
// Query: date=YYYY-MM-DD, start=HH:MM, end=HH:MM, site=, capacity=.
func (h *RoomHandler) FindAvailableHandler(c *gin.Context) {
	logger := getLogger(c)

	date := c.Query("date")
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing date, expected YYYY-MM-DD"})
		return
	}
	start, err := models.ParseClock(c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start: " + err.Error()})
		return
	}
	end, err := models.ParseClock(c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end: " + err.Error()})
		return
	}

	site, ok := models.NormalizeSite(c.Query("site"))
	if !ok {
		c.JSON(http.StatusOK, gin.H{"rooms": []models.Room{}})
		return
	}

	capacity := 1
	if raw := c.Query("capacity"); raw != "" {
		capacity, err = strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid capacity: " + raw})
			return
		}
	}

	rooms, err := h.Availability.FindAvailable(date, start, end, site, capacity)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}
