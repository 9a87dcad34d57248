package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Gowthamdvr/care-connect/access"
	"github.com/Gowthamdvr/care-connect/authentication"
	"github.com/Gowthamdvr/care-connect/configuration"
	"github.com/Gowthamdvr/care-connect/repository"
)

// UserController serves account listing, updates and deletion. Doctor
// accounts are reachable through this path too, so mutations here must drop
// the directory cache just like the doctor handlers do.
type UserController struct {
	Users repository.UserRepository
	Cache *configuration.Cache
}

// List returns every account, admin only. Password hashes are never
// serialized.
func (ctl *UserController) List(c *gin.Context) {
	actorID, role, ok := authentication.CurrentActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	// Reading the whole collection means reading accounts the actor does not
	// own, so only an admin passes the check.
	if !access.CanAccess(role, actorID, access.ResourceAccount, "", access.OpRead) {
		respondForbidden(c)
		return
	}

	users, err := ctl.Users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

type updateAccountRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Update patches name, phone and password on an account. Email and role are
// immutable through this path. An empty password keeps the current hash.
func (ctl *UserController) Update(c *gin.Context) {
	actorID, role, ok := authentication.CurrentActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	id := c.Param("id")
	if !access.CanAccess(role, actorID, access.ResourceAccount, id, access.OpUpdate) {
		respondForbidden(c)
		return
	}

	var req updateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	user, err := ctl.Users.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
			return
		}
		user.PasswordHash = string(hash)
	}

	if err := ctl.Users.Update(ctx, user); err != nil {
		respondError(c, err)
		return
	}

	if user.IsDoctor() {
		ctl.Cache.Invalidate(ctx, doctorCacheKey)
	}
	c.JSON(http.StatusOK, user)
}

// Delete removes an account, admin only. Deleting an unknown id succeeds.
func (ctl *UserController) Delete(c *gin.Context) {
	actorID, role, ok := authentication.CurrentActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	id := c.Param("id")
	if !access.CanAccess(role, actorID, access.ResourceAccount, id, access.OpDelete) {
		respondForbidden(c)
		return
	}

	// Look up the role before the row disappears; deleting a doctor must
	// drop the directory cache. Unknown ids keep the delete idempotent.
	ctx := c.Request.Context()
	user, err := ctl.Users.GetByID(ctx, id)
	wasDoctor := err == nil && user.IsDoctor()

	if err := ctl.Users.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	if wasDoctor {
		ctl.Cache.Invalidate(ctx, doctorCacheKey)
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
