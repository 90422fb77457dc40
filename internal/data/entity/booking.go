package entity

// BookingPayload is the body of POST /payment. Built once per submission.
type BookingPayload struct {
	ScheduleID string   `json:"schedule_id"`
	Seats      []string `json:"seats"`
	UserID     string   `json:"user_id"`
	Amount     int64    `json:"amount"`
}
