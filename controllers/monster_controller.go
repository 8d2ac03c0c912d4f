package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ancientastronautunearthed/fiber-app/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MonsterController struct {
	Svc *services.MonsterService
}

func NewMonsterController(svc *services.MonsterService) *MonsterController {
	return &MonsterController{Svc: svc}
}

type createMonsterInput struct {
	DescriptiveWords []string `json:"descriptiveWords" binding:"required"`
}

// ValidateDescriptiveWords enforces the exactly-five-non-empty-words rule
// before any AI call is made.
func ValidateDescriptiveWords(words []string) error {
	if len(words) != 5 {
		return errors.New("must provide exactly 5 descriptive words")
	}
	for _, w := range words {
		if strings.TrimSpace(w) == "" {
			return errors.New("descriptive words must be non-empty")
		}
	}
	return nil
}

func (h *MonsterController) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input createMonsterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := ValidateDescriptiveWords(input.DescriptiveWords); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	monster, err := h.Svc.Create(c.Request.Context(), userID, input.DescriptiveWords)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create monster"})
		return
	}
	c.JSON(http.StatusCreated, monster)
}

func (h *MonsterController) Active(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	monster, err := h.Svc.Active(userID)
	if err != nil {
		if errors.Is(err, services.ErrNoActiveMonster) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active monster"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch active monster"})
		return
	}
	c.JSON(http.StatusOK, monster)
}

type setHealthInput struct {
	Health *int `json:"health" binding:"required"`
}

func (h *MonsterController) SetHealth(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	monsterID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid monster id"})
		return
	}

	var input setHealthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Svc.SetHealth(uint(monsterID), userID, *input.Health); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "monster not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update monster health"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *MonsterController) Tomb(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	monsterID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid monster id"})
		return
	}

	if err := h.Svc.Tomb(uint(monsterID), userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "monster not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retire monster"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
