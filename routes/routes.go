package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gowthamdvr/care-connect/authentication"
	"github.com/Gowthamdvr/care-connect/controllers"
)

// Controllers bundles the handlers the router mounts.
type Controllers struct {
	Auth         *controllers.AuthController
	Users        *controllers.UserController
	Doctors      *controllers.DoctorController
	Appointments *controllers.AppointmentController
	Reports      *controllers.ReportController
}

// Setup builds the gin engine. Login, registration, the doctor directory and
// the health probe are open; everything else sits behind the bearer-token
// middleware.
func Setup(ctl Controllers, tokens *authentication.TokenService, ping func() error) *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")

	api.POST("/auth/register", ctl.Auth.Register)
	api.POST("/auth/login", ctl.Auth.Login)
	api.GET("/doctors", ctl.Doctors.List)
	api.GET("/health", func(c *gin.Context) {
		if err := ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	secured := api.Group("")
	secured.Use(authentication.RequireAuth(tokens))
	{
		secured.GET("/users", ctl.Users.List)
		secured.PUT("/users/:id", ctl.Users.Update)
		secured.DELETE("/users/:id", ctl.Users.Delete)

		secured.POST("/doctors", ctl.Doctors.Create)
		secured.PUT("/doctors/:id", ctl.Doctors.Update)
		secured.DELETE("/doctors/:id", ctl.Doctors.Delete)

		secured.GET("/appointments", ctl.Appointments.List)
		secured.POST("/appointments", ctl.Appointments.Book)
		secured.PATCH("/appointments/:id/status", ctl.Appointments.SetStatus)

		secured.GET("/reports/appointments", ctl.Reports.Appointments)
	}

	return r
}
