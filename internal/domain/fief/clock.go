package fief

import "fmt"

const (
	DaysPerYear   = 360
	DaysPerSeason = 90
	StartTreasury = 1000
)

var Seasons = [4]string{"Spring", "Summer", "Autumn", "Winter"}

// Clock tracks calendar time and the treasury for one fiefdom.
type Clock struct {
	OwnerID  string            `json:"owner_id"`
	Day      int               `json:"day"`
	Year     int               `json:"year"`
	Treasury int64             `json:"treasury"`
	Settings map[string]string `json:"settings,omitempty"`
	Version  int64             `json:"version"`
}

func NewClock(ownerID string) Clock {
	return Clock{
		OwnerID:  ownerID,
		Day:      1,
		Year:     1,
		Treasury: StartTreasury,
	}
}

// Advance moves the clock one day forward and reports calendar events.
func (c *Clock) Advance() []Event {
	var events []Event

	c.Day++
	if c.Day > DaysPerYear {
		c.Day = 1
		c.Year++
		events = append(events, NewEvent(*c, "year_change",
			fmt.Sprintf("A new year begins! Welcome to Year %d.", c.Year)))
	}

	if c.DayInSeason() == 1 {
		events = append(events, NewEvent(*c, "season_change",
			fmt.Sprintf("%s has arrived.", c.Season())))
	}

	return events
}

func (c Clock) SeasonIndex() int {
	return (c.Day - 1) / DaysPerSeason
}

func (c Clock) Season() string {
	return Seasons[c.SeasonIndex()]
}

func (c Clock) DayInSeason() int {
	return ((c.Day - 1) % DaysPerSeason) + 1
}

func (c Clock) TotalDays() int {
	return (c.Year-1)*DaysPerYear + c.Day
}

func (c *Clock) AddTreasury(amount int64) {
	c.Treasury += amount
}

// SubtractTreasury debits the treasury. It refuses to overdraw: on
// insufficient funds nothing changes and false is returned.
func (c *Clock) SubtractTreasury(amount int64) bool {
	if c.Treasury < amount {
		return false
	}
	c.Treasury -= amount
	return true
}
