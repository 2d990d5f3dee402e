package controllers

import (
	"net/http"
	"reservapro-backend/config"
	"reservapro-backend/models"
	"reservapro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

type UpdateConfigInput struct {
	Key         string `json:"key" binding:"required"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

type configEntry struct {
	Value       string `json:"value"`
	Description string `json:"description"`
}

// GetConfig returns the whole configuration as a key-value object
func GetConfig(c *gin.Context) {
	var configs []models.SystemConfig
	if err := config.DB.Order("key asc").Find(&configs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve configuration")
		return
	}

	configObject := make(map[string]configEntry, len(configs))
	for _, entry := range configs {
		configObject[entry.Key] = configEntry{
			Value:       entry.Value,
			Description: entry.Description,
		}
	}

	c.JSON(http.StatusOK, gin.H{"config": configObject})
}

// UpdateConfig upserts one configuration key
func UpdateConfig(c *gin.Context) {
	var input UpdateConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	entry := models.SystemConfig{
		Key:         input.Key,
		Value:       input.Value,
		Description: input.Description,
	}

	err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update configuration")
		return
	}

	c.JSON(http.StatusOK, gin.H{"config": entry})
}
