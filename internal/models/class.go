package models

// Tutor is the profile of a person offering lessons. Stored in the users table.
type Tutor struct {
	ID       string `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Avatar   string `db:"avatar" json:"avatar"`
	Whatsapp string `db:"whatsapp" json:"whatsapp"`
	Bio      string `db:"bio" json:"bio"`
}

// Class is one subject offering by one tutor.
type Class struct {
	ID      string  `db:"id" json:"id"`
	Subject string  `db:"subject" json:"subject"`
	Cost    float64 `db:"cost" json:"cost"`
	UserID  string  `db:"user_id" json:"user_id"`
}

// ClassSchedule is a recurring weekly availability window of a class.
// From and To are minutes since midnight; the window is [From, To).
type ClassSchedule struct {
	ID      string `db:"id" json:"id"`
	ClassID string `db:"class_id" json:"class_id"`
	WeekDay int    `db:"week_day" json:"week_day"`
	From    int    `db:"from" json:"from"`
	To      int    `db:"to" json:"to"`
}

// ScheduleItem is a weekly window as submitted by clients, with "HH:MM" bounds.
type ScheduleItem struct {
	WeekDay int    `json:"week_day"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// ClassRegistration groups everything persisted by a single tutor registration.
type ClassRegistration struct {
	Tutor    Tutor
	Subject  string
	Cost     float64
	Schedule []ScheduleItem
}

// ClassSearchFilter holds the already-parsed availability search criteria.
type ClassSearchFilter struct {
	Subject string
	WeekDay int
	Minutes int
}

// ClassListing is a class joined with the tutor that teaches it.
type ClassListing struct {
	ID       string  `db:"id" json:"id"`
	Subject  string  `db:"subject" json:"subject"`
	Cost     float64 `db:"cost" json:"cost"`
	UserID   string  `db:"user_id" json:"user_id"`
	Name     string  `db:"name" json:"name"`
	Avatar   string  `db:"avatar" json:"avatar"`
	Whatsapp string  `db:"whatsapp" json:"whatsapp"`
	Bio      string  `db:"bio" json:"bio"`
}
