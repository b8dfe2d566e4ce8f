package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mindspace/models"
	"mindspace/services/booking"
	"mindspace/utils"
)

// BookingHandler exposes the booking flow and the appointment list over HTTP.
type BookingHandler struct {
	Service booking.SessionService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.SessionService, logger *zap.Logger) *BookingHandler {
	if logger == nil {
		logger = utils.GetLogger()
	}
	return &BookingHandler{Service: svc, Logger: logger}
}

// sessionResponse is the session payload every booking endpoint returns, so
// the caller always renders from the same shape.
type sessionResponse struct {
	SessionID    string                  `json:"sessionID"`
	Specialists  []models.Specialist     `json:"specialists"`
	OfferedDates []string                `json:"offeredDates"`
	Selection    models.BookingSelection `json:"selection"`
	State        models.BookingState     `json:"state"`
	DemoRoster   bool                    `json:"demoRoster"`
}

func toSessionResponse(s *models.BookingSession) sessionResponse {
	return sessionResponse{
		SessionID:    s.SessionID,
		Specialists:  s.Specialists,
		OfferedDates: s.OfferedDates,
		Selection:    s.Selection,
		State:        s.Selection.State(),
		DemoRoster:   s.DemoRoster,
	}
}

// InitiateSession starts a booking session with the roster and offered dates.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	session, err := h.Service.InitiateSession(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSessionResponse(session))
}

// GetSession returns the current selection state of a session.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(session))
}

// SelectSpecialist records the specialist choice.
func (h *BookingHandler) SelectSpecialist(c *gin.Context) {
	var input struct {
		SpecialistID int `json:"specialistId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.SelectSpecialist(c.Request.Context(), c.Param("sessionID"), input.SpecialistID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(session))
}

// SelectDate records the date choice.
func (h *BookingHandler) SelectDate(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.SelectDate(c.Request.Context(), c.Param("sessionID"), input.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(session))
}

// SelectTime records the time-slot choice.
func (h *BookingHandler) SelectTime(c *gin.Context) {
	var input struct {
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.SelectTime(c.Request.Context(), c.Param("sessionID"), input.Time)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(session))
}

// SelectCounselingType records the counseling-type choice.
func (h *BookingHandler) SelectCounselingType(c *gin.Context) {
	var input struct {
		CounselingType string `json:"counselingType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.SelectCounselingType(c.Request.Context(), c.Param("sessionID"), input.CounselingType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(session))
}

// ConfirmBooking submits the completed selection with the intake form.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var intake booking.PatientIntake
	if err := c.ShouldBindJSON(&intake); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid intake form", err.Error())
		return
	}

	result, err := h.Service.ConfirmBooking(c.Request.Context(), c.Param("sessionID"), intake)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"appointment":  result.Appointment,
		"appointments": result.Appointments,
	})
}

// GetSpecialists returns the roster, optionally narrowed by specialty.
func (h *BookingHandler) GetSpecialists(c *gin.Context) {
	specialists, err := h.Service.Specialists(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if specialty := strings.TrimSpace(c.Query("specialty")); specialty != "" {
		filtered := make([]models.Specialist, 0, len(specialists))
		for _, s := range specialists {
			if strings.EqualFold(s.Specialty, specialty) {
				filtered = append(filtered, s)
			}
		}
		specialists = filtered
	}

	c.JSON(http.StatusOK, gin.H{"specialists": specialists})
}

// GetAppointments lists appointments, optionally filtered by status.
func (h *BookingHandler) GetAppointments(c *gin.Context) {
	views, err := h.Service.Appointments(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": views})
}

// CancelAppointment cancels one appointment and returns the refreshed list.
func (h *BookingHandler) CancelAppointment(c *gin.Context) {
	views, err := h.Service.CancelAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "appointments": views})
}
