package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Gowthamdvr/care-connect/apperror"
	"github.com/Gowthamdvr/care-connect/authentication"
	"github.com/Gowthamdvr/care-connect/models"
	"github.com/Gowthamdvr/care-connect/repository"
)

// AuthController serves registration and login.
type AuthController struct {
	Users  repository.UserRepository
	Tokens *authentication.TokenService
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

// Register creates a patient account and issues a session token. Role is
// always forced to patient here; doctors are created by admins.
func (ctl *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if _, err := ctl.Users.GetByEmail(ctx, req.Email); err == nil {
		respondError(c, apperror.New(apperror.KindDuplicateEmail, "email already registered"))
		return
	} else if !apperror.Is(err, apperror.KindNotFound) {
		respondError(c, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RolePatient,
		Phone:        req.Phone,
		CreatedAt:    time.Now(),
	}
	if err := ctl.Users.Create(ctx, &user); err != nil {
		respondError(c, err)
		return
	}

	token, err := ctl.Tokens.Issue(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates by email and password. Unknown email and wrong
// password produce the same response so neither can be probed.
func (ctl *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctl.Users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			respondError(c, apperror.New(apperror.KindInvalidCredentials, "invalid credentials"))
			return
		}
		respondError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respondError(c, apperror.New(apperror.KindInvalidCredentials, "invalid credentials"))
		return
	}

	token, err := ctl.Tokens.Issue(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// respondError maps a classified error to its HTTP status. The kind travels
// in the body so clients can branch on it without parsing messages.
func respondError(c *gin.Context, err error) {
	c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error(), "kind": apperror.KindOf(err)})
}

// respondForbidden is the uniform denial for a failed access check.
func respondForbidden(c *gin.Context) {
	respondError(c, apperror.New(apperror.KindForbidden, "forbidden"))
}

// respondUnauthenticated rejects a request whose identity never made it into
// the context.
func respondUnauthenticated(c *gin.Context) {
	respondError(c, apperror.New(apperror.KindUnauthenticated, "not authenticated"))
}
