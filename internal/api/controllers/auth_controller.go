package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthController holds the placeholder auth routes. No authentication logic
// exists yet; the client only needs the endpoints to answer.
type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

func (a *AuthController) Login(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Login route (not yet implemented)"})
}

func (a *AuthController) Register(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Register route (not yet implemented)"})
}
