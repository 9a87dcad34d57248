package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Gowthamdvr/care-connect/access"
	"github.com/Gowthamdvr/care-connect/apperror"
	"github.com/Gowthamdvr/care-connect/authentication"
	"github.com/Gowthamdvr/care-connect/models"
	"github.com/Gowthamdvr/care-connect/repository"
)

// AppointmentController serves booking and the status lifecycle.
type AppointmentController struct {
	Appointments repository.AppointmentRepository
	Users        repository.UserRepository
	Notifier     *Notifier
}

// List returns the appointments the caller may see: patients their own,
// doctors theirs, admins everything. Most recent first.
func (ctl *AppointmentController) List(c *gin.Context) {
	actorID, role, ok := authentication.CurrentActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	ctx := c.Request.Context()
	var (
		apts []models.Appointment
		err  error
	)
	switch role {
	case models.RolePatient:
		apts, err = ctl.Appointments.ListByPatient(ctx, actorID)
	case models.RoleDoctor:
		apts, err = ctl.Appointments.ListByDoctor(ctx, actorID)
	case models.RoleAdmin:
		apts, err = ctl.Appointments.ListAll(ctx)
	default:
		respondForbidden(c)
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apts)
}

type bookRequest struct {
	DoctorID string `json:"doctorId" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Reason   string `json:"reason"`
}

// Book creates a pending appointment for the calling patient. The date and
// time strings are stored verbatim; availability is metadata only and is
// deliberately not checked here.
func (ctl *AppointmentController) Book(c *gin.Context) {
	actorID, role, ok := authentication.CurrentActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	if !access.CanAccess(role, actorID, access.ResourceAppointment, actorID, access.OpCreate) {
		respondForbidden(c)
		return
	}

	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	patient, err := ctl.Users.GetByID(ctx, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	doctor, err := ctl.Users.GetByID(ctx, req.DoctorID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !doctor.IsDoctor() {
		c.JSON(http.StatusNotFound, gin.H{"error": "doctor not found"})
		return
	}

	apt := models.Appointment{
		ID:          uuid.NewString(),
		PatientID:   patient.ID,
		PatientName: patient.Name,
		DoctorID:    doctor.ID,
		DoctorName:  doctor.Name,
		Date:        req.Date,
		Time:        req.Time,
		Reason:      req.Reason,
		Status:      models.StatusPending,
		CreatedAt:   time.Now(),
	}
	if err := ctl.Appointments.Create(ctx, &apt); err != nil {
		respondError(c, err)
		return
	}

	ctl.Notifier.Send(patient.Email, "Appointment requested",
		fmt.Sprintf("Your appointment with %s on %s at %s is pending confirmation.",
			doctor.Name, apt.Date, apt.Time))

	c.JSON(http.StatusOK, apt)
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetStatus transitions an appointment along the lifecycle. The caller must
// be allowed to act on this appointment at all before the transition's own
// legality is considered.
func (ctl *AppointmentController) SetStatus(c *gin.Context) {
	actorID, role, ok := authentication.CurrentActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	next, ok := models.ParseAppointmentStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status: " + req.Status})
		return
	}

	ctx := c.Request.Context()
	apt, err := ctl.Appointments.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if !access.CanAccess(role, actorID, access.ResourceAppointment, apt.DoctorID, access.OpTransition) {
		respondForbidden(c)
		return
	}

	if !apt.Status.CanTransition(next) {
		respondError(c, apperror.New(apperror.KindIllegalTransition,
			fmt.Sprintf("illegal transition %s -> %s", apt.Status, next)))
		return
	}

	apt.Status = next
	if err := ctl.Appointments.Update(ctx, apt); err != nil {
		respondError(c, err)
		return
	}

	if patient, err := ctl.Users.GetByID(ctx, apt.PatientID); err == nil {
		ctl.Notifier.Send(patient.Email, "Appointment "+string(next),
			fmt.Sprintf("Your appointment with %s on %s at %s is now %s.",
				apt.DoctorName, apt.Date, apt.Time, next))
	}

	c.JSON(http.StatusOK, apt)
}
