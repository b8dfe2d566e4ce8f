package booking

import (
	"strconv"

	"mindspace/models"
)

// Fixed fee schedule, in rupees. The platform owns real payment processing;
// the client only quotes these amounts on the confirmation screen and in the
// booking payload.
const (
	ConsultationFee = 1500
	PlatformFee     = 0
	TotalAmount     = ConsultationFee + PlatformFee
)

// buildBookingRequest merges a complete selection with the intake form,
// derived specialist fields and the fee schedule.
func buildBookingRequest(sel models.BookingSelection, intake PatientIntake) models.BookingRequest {
	return models.BookingRequest{
		PatientName:         intake.Name,
		PatientEmail:        intake.Email,
		PatientPhone:        intake.Phone,
		Concerns:            intake.Concerns,
		SpecialistID:        strconv.Itoa(sel.Specialist.ID),
		SpecialistName:      sel.Specialist.Name,
		SpecialistRole:      sel.Specialist.Role,
		SpecialistSpecialty: sel.Specialist.Specialty,
		AppointmentDate:     sel.Date,
		AppointmentTime:     sel.Time,
		CounselingType:      string(sel.CounselingType),
		ConsultationFee:     ConsultationFee,
		PlatformFee:         PlatformFee,
		TotalAmount:         TotalAmount,
	}
}
