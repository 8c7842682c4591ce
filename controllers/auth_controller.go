package controllers

import (
	"errors"
	"net/http"
	"time"

	"caltrack/middlewares"
	"caltrack/services"
	"caltrack/utils"

	"github.com/gin-gonic/gin"
)

// Session lifetimes. "Remember me" only stretches the cookie and token
// expiry; the auth state machine is unchanged.
const (
	sessionTTL  = 24 * time.Hour
	rememberTTL = 30 * 24 * time.Hour
)

type AuthController struct {
	Auth   *services.AuthService
	Secret []byte
}

func NewAuthController(auth *services.AuthService, secret []byte) *AuthController {
	return &AuthController{Auth: auth, Secret: secret}
}

type RegisterInput struct {
	Username        string `json:"username" form:"username" binding:"required"`
	Email           string `json:"email" form:"email" binding:"required,email"`
	Password        string `json:"password" form:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" binding:"required"`
}

// Register creates the account but does not log the caller in; the reference
// flow sends new users to the login page.
func (a *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Password != input.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords must match"})
		return
	}

	user, err := a.Auth.Register(input.Username, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) || errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "registration successful", "id": user.ID})
}

type LoginInput struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
	Remember bool   `json:"remember" form:"remember"`
}

func (a *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := a.Auth.Authenticate(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	ttl := sessionTTL
	maxAge := 0 // session cookie: expires with the browser
	if input.Remember {
		ttl = rememberTTL
		maxAge = int(rememberTTL / time.Second)
	}

	token, err := utils.GenerateSessionToken(user.ID, ttl, a.Secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create session"})
		return
	}

	c.SetCookie(middlewares.SessionCookie, token, maxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged in"})
}

// Logout clears the cookie and goes home. Calling it while already anonymous
// is a no-op, not an error.
func (a *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// Index routes the browser: authenticated users land on the dashboard,
// everyone else on the login page.
func (a *AuthController) Index(c *gin.Context) {
	if token, err := c.Cookie(middlewares.SessionCookie); err == nil {
		if _, err := utils.ParseSessionToken(token, a.Secret); err == nil {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
	}
	c.Redirect(http.StatusFound, "/login")
}

// LoginPage stands in for the rendered form; templating is out of scope.
func (a *AuthController) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "log in via POST /login"})
}
