package domain

type UserProfile struct {
	ID                 string
	Name               string
	School             string
	DefaultSessionMin  int
	DefaultHoursPerDay float64
}
