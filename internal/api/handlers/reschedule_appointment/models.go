package reschedule_appointment

// RescheduleAppointmentRequest HTTP request model
type RescheduleAppointmentRequest struct {
	NewStart string `json:"newStart"` // RFC 3339
}
