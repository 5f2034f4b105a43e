package controllers

import (
	"errors"
	"net/http"

	"github.com/sandro1422/workout-api/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{svc: svc}
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (ctl *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	// Field presence is reported one field at a time, username first.
	if input.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username is required"})
		return
	}
	if input.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}
	if input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Password is required"})
		return
	}

	if err := ctl.svc.Register(input.Username, input.Email, input.Password); err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			c.JSON(http.StatusConflict, gin.H{"message": "Username already exists"})
		case errors.Is(err, services.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"message": "Email already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register user", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

func (ctl *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	token, err := ctl.svc.Login(input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidUsername):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username"})
		case errors.Is(err, services.ErrInvalidPassword):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid password"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to log in", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token})
}

func (ctl *AuthController) Profile(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	user, err := ctl.svc.GetProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load profile", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logged_in_username": user.Username})
}
