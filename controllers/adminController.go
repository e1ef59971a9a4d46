package controllers

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"quickbite-pos/apperr"
	"quickbite-pos/helpers"
)

// adminHash holds the bcrypt hash of the shared admin secret. The plain
// secret is never kept in memory past startup.
var adminHash = hashAdminPassword()

func hashAdminPassword() string {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin"
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		log.Panic(err)
	}
	return string(bytes)
}

type adminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// AdminLogin checks the shared secret and issues the session token that
// unlocks history reads and export. A mismatch changes no state.
func AdminLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req adminLoginRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(adminHash), []byte(req.Password)); err != nil {
			respondError(c, apperr.ErrAdminAuth)
			return
		}
		token, err := helpers.GenerateAdminToken()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token was not generated"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
