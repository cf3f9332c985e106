package handlers

import (
	"context"
	"net/http"
	"strconv"

	"trainer-service/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	Service *service.StatsService
}

func NewStatsHandler(s *service.StatsService) *StatsHandler {
	return &StatsHandler{Service: s}
}

func (h *StatsHandler) GetWeakTopics(c *gin.Context) {
	userID := c.Param("id")
	limit := 5
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	topics, err := h.Service.GetWeakTopics(context.Background(), userID, limit)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, topics)
}

func (h *StatsHandler) GetTopicWeights(c *gin.Context) {
	userID := c.Param("id")
	weights, err := h.Service.GetTopicWeights(context.Background(), userID)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, weights)
}

func (h *StatsHandler) GetTopicAnalytics(c *gin.Context) {
	userID := c.Param("id")
	analytics, err := h.Service.GetTopicAnalytics(context.Background(), userID)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, analytics)
}

func (h *StatsHandler) GetTrends(c *gin.Context) {
	userID := c.Param("id")
	days := 30
	if raw := c.Query("days"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			days = n
		}
	}
	trends, err := h.Service.GetTrends(context.Background(), userID, days)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, trends)
}
