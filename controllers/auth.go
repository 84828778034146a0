// controllers/auth.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"aircond-backend/config"
	"aircond-backend/models"
	"aircond-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthController holds the injected session store.
type AuthController struct {
	Store *utils.SessionStore
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login validates the credentials and establishes a server-side session.
// Unknown username and wrong password produce the same generic error.
func (a *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	username := strings.TrimSpace(input.Username)

	var user models.User
	if err := config.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.PasswordHash) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	sess := a.Store.Create(user.ID)
	maxAge := int(a.Store.TTL().Seconds())

	c.SetCookie(
		utils.SessionCookie,
		sess.ID,
		maxAge,
		"/",
		"",
		false,
		true,
	)

	c.JSON(http.StatusOK, gin.H{"success": true, "redirect": "/dashboard"})
}

// Logout destroys the session immediately and sends the browser back to
// the login page.
func (a *AuthController) Logout(c *gin.Context) {
	if id, err := c.Cookie(utils.SessionCookie); err == nil {
		a.Store.Destroy(id)
	}

	c.SetCookie(utils.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

// Home routes the bare origin to the dashboard or the login page.
func (a *AuthController) Home(c *gin.Context) {
	if id, err := c.Cookie(utils.SessionCookie); err == nil {
		if _, ok := a.Store.Get(id); ok {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
	}
	c.Redirect(http.StatusFound, "/login")
}
