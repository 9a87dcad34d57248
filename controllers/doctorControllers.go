package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Gowthamdvr/care-connect/access"
	"github.com/Gowthamdvr/care-connect/apperror"
	"github.com/Gowthamdvr/care-connect/authentication"
	"github.com/Gowthamdvr/care-connect/configuration"
	"github.com/Gowthamdvr/care-connect/models"
	"github.com/Gowthamdvr/care-connect/repository"
)

// defaultDoctorPassword is hashed and stored when an admin creates a doctor
// without supplying one. Known weak default; a real deployment should force
// a reset on first login.
const defaultDoctorPassword = "password"

const doctorCacheKey = "doctors:all"

// DoctorController serves the doctor directory.
type DoctorController struct {
	Users repository.UserRepository
	Cache *configuration.Cache
}

// List returns every doctor profile. Public: patients browse the directory
// before logging in. Served from cache when a snapshot is present.
func (ctl *DoctorController) List(c *gin.Context) {
	ctx := c.Request.Context()

	if data, ok := ctl.Cache.Get(ctx, doctorCacheKey); ok {
		c.Data(http.StatusOK, "application/json", data)
		return
	}

	doctors, err := ctl.Users.ListByRole(ctx, models.RoleDoctor)
	if err != nil {
		respondError(c, err)
		return
	}

	if data, err := json.Marshal(doctors); err == nil {
		ctl.Cache.Set(ctx, doctorCacheKey, data)
	}
	c.JSON(http.StatusOK, doctors)
}

type doctorRequest struct {
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Password           string   `json:"password"`
	Phone              string   `json:"phone"`
	Specialization     string   `json:"specialization"`
	Experience         *int     `json:"experience"`
	AvailableDays      []string `json:"availableDays"`
	AvailableTimeStart string   `json:"availableTimeStart"`
	AvailableTimeEnd   string   `json:"availableTimeEnd"`
}

// Create adds a doctor account, admin only. The same duplicate-email rule as
// registration applies; a missing password falls back to the known default.
func (ctl *DoctorController) Create(c *gin.Context) {
	actorID, role, ok := authentication.CurrentActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	if !access.CanAccess(role, actorID, access.ResourceDoctor, "", access.OpCreate) {
		respondForbidden(c)
		return
	}

	var req doctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and email are required"})
		return
	}

	days, err := models.CanonicalWeekdays(req.AvailableDays)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateTimeWindow(req.AvailableTimeStart, req.AvailableTimeEnd); err != nil {
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

	password := req.Password
	if password == "" {
		password = defaultDoctorPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	experience := 0
	if req.Experience != nil {
		experience = *req.Experience
	}
	if experience < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "experience must be non-negative"})
		return
	}

	doctor := models.User{
		ID:                 uuid.NewString(),
		Name:               req.Name,
		Email:              req.Email,
		PasswordHash:       string(hash),
		Role:               models.RoleDoctor,
		Phone:              req.Phone,
		CreatedAt:          time.Now(),
		Specialization:     req.Specialization,
		Experience:         experience,
		AvailableDays:      days,
		AvailableTimeStart: req.AvailableTimeStart,
		AvailableTimeEnd:   req.AvailableTimeEnd,
	}
	if err := ctl.Users.Create(ctx, &doctor); err != nil {
		respondError(c, err)
		return
	}

	ctl.Cache.Invalidate(ctx, doctorCacheKey)
	c.JSON(http.StatusOK, doctor)
}

// Update merges the provided fields over a doctor profile. Admins may update
// any doctor; a doctor may update only their own profile. The weekday set is
// re-canonicalized on every write.
func (ctl *DoctorController) Update(c *gin.Context) {
	actorID, role, ok := authentication.CurrentActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	id := c.Param("id")
	if !access.CanAccess(role, actorID, access.ResourceDoctor, id, access.OpUpdate) {
		respondForbidden(c)
		return
	}

	var req doctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	doctor, err := ctl.Users.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !doctor.IsDoctor() {
		c.JSON(http.StatusNotFound, gin.H{"error": "doctor not found"})
		return
	}

	if req.Name != "" {
		doctor.Name = req.Name
	}
	if req.Phone != "" {
		doctor.Phone = req.Phone
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
			return
		}
		doctor.PasswordHash = string(hash)
	}
	if req.Specialization != "" {
		doctor.Specialization = req.Specialization
	}
	if req.Experience != nil {
		if *req.Experience < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "experience must be non-negative"})
			return
		}
		doctor.Experience = *req.Experience
	}
	if req.AvailableDays != nil {
		days, err := models.CanonicalWeekdays(req.AvailableDays)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		doctor.AvailableDays = days
	}
	if req.AvailableTimeStart != "" {
		doctor.AvailableTimeStart = req.AvailableTimeStart
	}
	if req.AvailableTimeEnd != "" {
		doctor.AvailableTimeEnd = req.AvailableTimeEnd
	}
	if err := validateTimeWindow(doctor.AvailableTimeStart, doctor.AvailableTimeEnd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.Users.Update(ctx, doctor); err != nil {
		respondError(c, err)
		return
	}

	ctl.Cache.Invalidate(ctx, doctorCacheKey)
	c.JSON(http.StatusOK, doctor)
}

// Delete removes a doctor account, admin only. Idempotent.
func (ctl *DoctorController) Delete(c *gin.Context) {
	actorID, role, ok := authentication.CurrentActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	id := c.Param("id")
	if !access.CanAccess(role, actorID, access.ResourceDoctor, id, access.OpDelete) {
		respondForbidden(c)
		return
	}

	ctx := c.Request.Context()
	if err := ctl.Users.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	ctl.Cache.Invalidate(ctx, doctorCacheKey)
	c.JSON(http.StatusOK, gin.H{"message": "doctor deleted"})
}

// validateTimeWindow checks the wall-clock availability window. Both ends
// empty is allowed; a lone end or an inverted window is not.
func validateTimeWindow(start, end string) error {
	if start == "" && end == "" {
		return nil
	}
	s, err := time.Parse("15:04", start)
	if err != nil {
		return apperror.New(apperror.KindValidation, "invalid availableTimeStart, want HH:MM")
	}
	e, err := time.Parse("15:04", end)
	if err != nil {
		return apperror.New(apperror.KindValidation, "invalid availableTimeEnd, want HH:MM")
	}
	if s.After(e) {
		return apperror.New(apperror.KindValidation, "availableTimeStart must not be after availableTimeEnd")
	}
	return nil
}
