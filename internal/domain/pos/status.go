package pos

// Appointment and payment statuses are free text. These are the values the
// application writes itself.
const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"

	PaymentPaid = "paid"
)
