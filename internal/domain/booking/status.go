package booking

type Status string

const (
	StatusBooked     Status = "Booked"
	StatusCheckedOut Status = "CheckedOut"
	StatusCancelled  Status = "Cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusBooked, StatusCheckedOut, StatusCancelled:
		return true
	default:
		return false
	}
}
