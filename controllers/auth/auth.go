package authControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecomdemo/storefront-api/services"
)

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/register
func Register(creds *services.CredentialService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email or password"})
			return
		}

		result, err := creds.Register(input.Name, input.Email, input.Password)
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email or password"})
		case errors.Is(err, services.ErrDuplicateUser):
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		default:
			c.JSON(http.StatusOK, result)
		}
	}
}

// POST /api/auth/login
func Login(creds *services.CredentialService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
			return
		}

		result, err := creds.Login(input.Email, input.Password)
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		default:
			c.JSON(http.StatusOK, result)
		}
	}
}
