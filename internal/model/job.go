package model

import "fmt"

// Job identifies one of the three tracked jobs.
type Job int

const (
	Bus Job = iota
	HomeDepot
	Delivery
)

// Jobs lists every job in the order reports and tables expect.
var Jobs = [3]Job{Bus, HomeDepot, Delivery}

// ParseJob maps a CLI argument to a Job.
func ParseJob(s string) (Job, error) {
	switch s {
	case "bus":
		return Bus, nil
	case "hd":
		return HomeDepot, nil
	case "delivery":
		return Delivery, nil
	}
	return 0, fmt.Errorf("unknown job %q: must be one of: bus, hd, delivery", s)
}

func (j Job) String() string {
	switch j {
	case Bus:
		return "bus"
	case HomeDepot:
		return "hd"
	case Delivery:
		return "delivery"
	}
	return fmt.Sprintf("Job(%d)", int(j))
}

// Label returns the human-facing job name used in notifications.
func (j Job) Label() string {
	switch j {
	case Bus:
		return "Bus"
	case HomeDepot:
		return "HD"
	case Delivery:
		return "Delivery"
	}
	return j.String()
}

// Table returns the storage table holding this job's shifts.
func (j Job) Table() string {
	switch j {
	case Bus:
		return "bus_hours"
	case HomeDepot:
		return "HD_hours"
	case Delivery:
		return "delivery_hours"
	}
	return ""
}

// Driving reports whether hours for this job count toward the driving
// total. Bus and delivery are behind-the-wheel jobs; HD is not.
func (j Job) Driving() bool {
	return j == Bus || j == Delivery
}
