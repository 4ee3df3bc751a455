package booking

// Business error codes surfaced to HTTP callers.
const (
	CodeInvalidDate    = "invalid_date"
	CodePastDate       = "past_date"
	CodeSlotNotOffered = "slot_not_offered"
	CodeSlotTaken      = "slot_taken"

	CodeMissingName    = "missing_customer_name"
	CodeMissingContact = "missing_contact"
	CodeInvalidEmail   = "invalid_email"
	CodeEmailDomain    = "invalid_email_domain"

	CodeBookingNotFound = "booking_not_found"
	CodeInvalidState    = "invalid_state"
	CodeAlreadyPaid     = "already_paid"
)
