package request

type PurchasePackage struct {
	PackageID      string `json:"packageId" validate:"required"`
	StartDate      string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate        string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Name           string `json:"name" validate:"required,max=255"`
	NumberOfPeople int    `json:"numberOfPeople" validate:"required,gte=1"`
	Mobile         string `json:"mobile" validate:"required,max=32"`
	Email          string `json:"email" validate:"required,email"`
}

// PackageBooked is published on the package_booked topic after a purchase commits.
type PackageBooked struct {
	BookingID      int64  `json:"booking_id"`
	PackageID      string `json:"package_id"`
	ScheduleID     int64  `json:"schedule_id"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	NumberOfPeople int    `json:"number_of_people"`
	Email          string `json:"email"`
	UserID         string `json:"user_id,omitempty"`
}
