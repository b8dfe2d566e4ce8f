package models

import "fmt"

// CounselingType is the closed set of session delivery modes.
type CounselingType string

const (
	CounselingVideoCall CounselingType = "video-call"
	CounselingPhoneCall CounselingType = "phone-call"
	CounselingInOffice  CounselingType = "in-office"
)

// ParseCounselingType validates a wire value against the closed set.
func ParseCounselingType(s string) (CounselingType, error) {
	switch CounselingType(s) {
	case CounselingVideoCall, CounselingPhoneCall, CounselingInOffice:
		return CounselingType(s), nil
	}
	return "", fmt.Errorf("unknown counseling type %q", s)
}

// Label returns the display name for a counseling type.
func (t CounselingType) Label() string {
	switch t {
	case CounselingVideoCall:
		return "Video Call"
	case CounselingPhoneCall:
		return "Phone Call"
	case CounselingInOffice:
		return "In-Office"
	}
	return string(t)
}

// AppointmentStatus is the backend-owned appointment lifecycle state.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ParseAppointmentStatus validates a wire value against the closed set.
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return AppointmentStatus(s), nil
	}
	return "", fmt.Errorf("unknown appointment status %q", s)
}

// Appointment is the client's read-only projection of a booked appointment.
// The lifecycle (pending -> confirmed -> completed/cancelled) is driven
// entirely by the platform; the client only displays the latest snapshot
// and requests transitions.
type Appointment struct {
	ID              string            `json:"_id"`
	SpecialistName  string            `json:"specialistName"`
	SpecialistRole  string            `json:"specialistRole"`
	AppointmentDate string            `json:"appointmentDate"` // "YYYY-MM-DD"
	AppointmentTime string            `json:"appointmentTime"` // slot label
	CounselingType  CounselingType    `json:"counselingType"`
	Status          AppointmentStatus `json:"status"`
	TotalAmount     int               `json:"totalAmount"`
	MeetingLink     string            `json:"meetingLink,omitempty"`
	MeetingID       string            `json:"meetingId,omitempty"`
}

// BookingRequest is the payload submitted to the platform booking endpoint.
// It merges the session selection with derived specialist fields and the
// fixed fee schedule.
type BookingRequest struct {
	PatientName         string `json:"patientName"`
	PatientEmail        string `json:"patientEmail"`
	PatientPhone        string `json:"patientPhone"`
	Concerns            string `json:"concerns,omitempty"`
	SpecialistID        string `json:"specialistId"`
	SpecialistName      string `json:"specialistName"`
	SpecialistRole      string `json:"specialistRole"`
	SpecialistSpecialty string `json:"specialistSpecialty"`
	AppointmentDate     string `json:"appointmentDate"`
	AppointmentTime     string `json:"appointmentTime"`
	CounselingType      string `json:"counselingType"`
	ConsultationFee     int    `json:"consultationFee"`
	PlatformFee         int    `json:"platformFee"`
	TotalAmount         int    `json:"totalAmount"`
}
