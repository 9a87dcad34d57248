package controllers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"

	"github.com/Gowthamdvr/care-connect/access"
	"github.com/Gowthamdvr/care-connect/authentication"
	"github.com/Gowthamdvr/care-connect/models"
	"github.com/Gowthamdvr/care-connect/repository"
)

// ReportController renders the admin appointment report.
type ReportController struct {
	AppointmentRepo repository.AppointmentRepository
}

// Appointments exports every appointment as a PDF table, admin only. Rows
// come from the ledger listing verbatim; the report applies no business
// rules of its own.
func (ctl *ReportController) Appointments(c *gin.Context) {
	actorID, role, ok := authentication.CurrentActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	if !access.CanAccess(role, actorID, access.ResourceAppointment, "", access.OpRead) {
		respondForbidden(c)
		return
	}

	apts, err := ctl.AppointmentRepo.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	pdf, err := renderAppointmentReport(apts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render report"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="appointments.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func renderAppointmentReport(apts []models.Appointment) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Appointment Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 6, "Generated "+time.Now().Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	headers := []string{"Patient", "Doctor", "Date", "Time", "Reason", "Status", "Created"}
	widths := []float64{45, 45, 28, 20, 70, 25, 40}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, apt := range apts {
		cols := []string{
			apt.PatientName,
			apt.DoctorName,
			apt.Date,
			apt.Time,
			apt.Reason,
			string(apt.Status),
			apt.CreatedAt.Format("2006-01-02 15:04"),
		}
		for i, col := range cols {
			pdf.CellFormat(widths[i], 7, col, "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
