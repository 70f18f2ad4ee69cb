package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"casino-backend/models"
	"casino-backend/utils/logger"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// RegisterUser handles POST /api/users
func (uc *UserController) RegisterUser(c *gin.Context) {
	var req struct {
		Username string  `json:"username" binding:"required"`
		Balance  float64 `json:"balance"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}
	if req.Balance < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "balance cannot be negative"})
		return
	}

	user := models.User{Username: req.Username, Balance: req.Balance}
	if err := uc.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
			return
		}
		logger.Errorf("create user %s: %v", req.Username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user"})
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GetUser handles GET /api/users/:username
func (uc *UserController) GetUser(c *gin.Context) {
	var user models.User
	if err := uc.DB.Where("username = ?", c.Param("username")).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		logger.Errorf("fetch user %s: %v", c.Param("username"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch user"})
		return
	}
	c.JSON(http.StatusOK, user)
}
