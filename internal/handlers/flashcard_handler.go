package handlers

import (
	"context"
	"net/http"
	"strconv"

	"trainer-service/internal/service"

	"github.com/gin-gonic/gin"
)

type FlashcardHandler struct {
	Service *service.FlashcardService
}

func NewFlashcardHandler(s *service.FlashcardService) *FlashcardHandler {
	return &FlashcardHandler{Service: s}
}

func (h *FlashcardHandler) GetDue(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	subject := c.Query("subject")
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	due, err := h.Service.GetDue(context.Background(), userID, subject, limit)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, due)
}

type reviewRequest struct {
	UserID    string  `json:"user_id"`
	CardID    string  `json:"card_id"`
	Correct   bool    `json:"correct"`
	TimeTaken float64 `json:"time_taken_seconds"`
}

func (h *FlashcardHandler) SubmitReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.UserID == "" || req.CardID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and card_id are required"})
		return
	}
	state, err := h.Service.SubmitReview(context.Background(), req.UserID, req.CardID, req.Correct, req.TimeTaken)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *FlashcardHandler) GetLeeches(c *gin.Context) {
	userID := c.Param("id")
	minWrong := 0
	if raw := c.Query("min_wrong"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			minWrong = n
		}
	}
	leeches, err := h.Service.GetLeeches(context.Background(), userID, minWrong)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, leeches)
}
