package availability

import "time"

type DayStatus string

const (
	StatusAvailable DayStatus = "available"
	StatusLimited   DayStatus = "limited"
	StatusFinished  DayStatus = "finished"
)

// DefaultStatus is assumed for any date with no persisted record.
const DefaultStatus = StatusAvailable

// Valid reports whether s is one of the three persisted statuses.
func (s DayStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusLimited, StatusFinished:
		return true
	}
	return false
}

type DayRecord struct {
	Date      time.Time `json:"date" db:"date"`
	Status    DayStatus `json:"status" db:"status"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type MonthResponse struct {
	Days map[string]DayStatus `json:"days"`
}

type UpdateDayRequest struct {
	Date     string    `json:"date"`
	Status   DayStatus `json:"status"`
	Password string    `json:"password"`
}

type AdminLoginRequest struct {
	Password string `json:"password"`
}
