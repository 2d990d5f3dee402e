package controllers

import (
	"errors"
	"net/http"
	"reservapro-backend/config"
	"reservapro-backend/models"
	"reservapro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateUserInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role"`
}

type UpdateUserInput struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"isActive"`
}

func userResponse(user models.User) gin.H {
	return gin.H{
		"id":        user.ID,
		"username":  user.Username,
		"name":      user.Name,
		"email":     user.Email,
		"role":      user.Role,
		"isActive":  user.IsActive,
		"createdAt": user.CreatedAt,
		"updatedAt": user.UpdatedAt,
	}
}

// GetUsers lists all admin users, newest first, without password hashes
func GetUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("created_at desc").Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}

	response := make([]gin.H, 0, len(users))
	for _, user := range users {
		response = append(response, userResponse(user))
	}

	c.JSON(http.StatusOK, gin.H{"users": response})
}

// CreateUser adds a new admin user
func CreateUser(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var existing models.User
	result := config.DB.Where("username = ? OR email = ?", input.Username, input.Email).First(&existing)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Username or email already exists")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	role := input.Role
	if role == "" {
		role = "admin"
	}

	user := models.User{
		Username: input.Username,
		Password: input.Password, // Hashed in BeforeCreate hook
		Name:     input.Name,
		Email:    input.Email,
		Role:     role,
		IsActive: true,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": userResponse(user)})
}

// UpdateUser applies a partial edit to an admin user
func UpdateUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.Password != nil {
		hashed, err := utils.HashPassword(*input.Password)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to hash password")
			return
		}
		user.Password = hashed
	}

	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userResponse(user)})
}

// DeleteUser removes an admin user
func DeleteUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	currentID, _ := c.Get("userId")
	if id, ok := currentID.(string); ok && id == userID.String() {
		utils.RespondWithError(c, http.StatusBadRequest, "Cannot delete your own account")
		return
	}

	result := config.DB.Where("id = ?", userID).Delete(&models.User{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
