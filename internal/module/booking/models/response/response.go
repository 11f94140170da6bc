package response

import "time"

type Booking struct {
	ID             int64     `json:"id"`
	PackageID      string    `json:"packageId"`
	PackageName    string    `json:"packageName,omitempty"`
	ScheduleID     int64     `json:"scheduleId"`
	StartDate      string    `json:"startDate"`
	EndDate        string    `json:"endDate"`
	Name           string    `json:"name"`
	NumberOfPeople int       `json:"numberOfPeople"`
	Mobile         string    `json:"mobile"`
	Email          string    `json:"email"`
	UserID         *string   `json:"userId"`
	UserName       string    `json:"userName,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
