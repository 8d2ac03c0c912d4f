package controllers

import (
	"errors"
	"net/http"

	"github.com/ancientastronautunearthed/fiber-app/services"

	"github.com/gin-gonic/gin"
)

type RiddleController struct {
	Svc *services.RiddleService
}

func NewRiddleController(svc *services.RiddleService) *RiddleController {
	return &RiddleController{Svc: svc}
}

// Today serves the current riddle. The correct answer and explanation stay
// server-side until the user has answered.
func (h *RiddleController) Today(c *gin.Context) {
	riddle, err := h.Svc.TodaysRiddle(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch today's riddle"})
		return
	}
	c.JSON(http.StatusOK, riddle)
}

type answerInput struct {
	RiddleID uint `json:"riddleId" binding:"required"`
	Answer   *int `json:"answer" binding:"required,min=0,max=3"`
}

func (h *RiddleController) SubmitAnswer(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input answerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Svc.SubmitAnswer(c.Request.Context(), userID, input.RiddleID, *input.Answer)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyAnswered):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Already answered this riddle"})
		case errors.Is(err, services.ErrInvalidRiddle):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid riddle"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit riddle answer"})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}
