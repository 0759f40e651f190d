package monitor

import "time"

type Status struct {
	Users         int       `json:"users"`
	Projects      int       `json:"projects"`
	Tasks         int       `json:"tasks"`
	Notifications int       `json:"notifications"`
	Journal       bool      `json:"journal"`
	JournalSize   int       `json:"journal_size"`
	LastCheck     time.Time `json:"last_check"`
}
