package controllers

import (
	"net/http"

	"github.com/ancientastronautunearthed/fiber-app/services"

	"github.com/gin-gonic/gin"
)

// LogController serves the six wellness log types.
type LogController struct {
	Svc *services.LogService
}

func NewLogController(svc *services.LogService) *LogController {
	return &LogController{Svc: svc}
}

func (h *LogController) CreateFoodLog(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.FoodLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := h.Svc.CreateFoodLog(c.Request.Context(), userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create food log"})
		return
	}
	c.JSON(http.StatusCreated, log)
}

func (h *LogController) ListFoodLogs(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	logs, err := h.Svc.ListFoodLogs(userID, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch food logs"})
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *LogController) CreateSymptomLog(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.SymptomLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, insight, err := h.Svc.CreateSymptomLog(c.Request.Context(), userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create symptom log"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"log": log, "insight": insight})
}

func (h *LogController) ListSymptomLogs(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	logs, err := h.Svc.ListSymptomLogs(userID, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch symptom logs"})
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *LogController) CreateSleepLog(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.SleepLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := h.Svc.CreateSleepLog(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create sleep log"})
		return
	}
	c.JSON(http.StatusCreated, log)
}

func (h *LogController) ListSleepLogs(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	logs, err := h.Svc.ListSleepLogs(userID, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch sleep logs"})
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *LogController) CreateSunExposureLog(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.SunExposureLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := h.Svc.CreateSunExposureLog(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create sun exposure log"})
		return
	}
	c.JSON(http.StatusCreated, log)
}

func (h *LogController) ListSunExposureLogs(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	logs, err := h.Svc.ListSunExposureLogs(userID, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch sun exposure logs"})
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *LogController) CreateSupplementLog(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.RegimenLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := h.Svc.CreateSupplementLog(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create supplement log"})
		return
	}
	c.JSON(http.StatusCreated, log)
}

func (h *LogController) ListSupplementLogs(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	logs, err := h.Svc.ListSupplementLogs(userID, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch supplement logs"})
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *LogController) CreateMedicationLog(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.RegimenLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := h.Svc.CreateMedicationLog(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create medication log"})
		return
	}
	c.JSON(http.StatusCreated, log)
}

func (h *LogController) ListMedicationLogs(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	logs, err := h.Svc.ListMedicationLogs(userID, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch medication logs"})
		return
	}
	c.JSON(http.StatusOK, logs)
}
