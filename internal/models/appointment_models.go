package models

import "time"

// AppointmentDateLayout is the wire format of the booking form's date field.
const AppointmentDateLayout = "2006-01-02"

// Appointment is a single booking request submitted through the public form.
type Appointment struct {
	ID       int64     `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	Email    string    `json:"email" db:"email"`
	Phone    string    `json:"phone" db:"phone"`
	Category string    `json:"category" db:"category"`
	Date     time.Time `json:"date" db:"date"` // midnight of the booked day
	Time     string    `json:"time" db:"time"` // free text, not validated
}

// DateString renders Date in the form's layout.
func (a Appointment) DateString() string {
	return a.Date.Format(AppointmentDateLayout)
}
