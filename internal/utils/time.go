package util

import (
	"time"
)

const displayLayout = "Jan 2, 2006 15:04 MST"

var saoPauloLocation *time.Location

func init() {
	var err error
	saoPauloLocation, err = time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		saoPauloLocation = time.FixedZone("BRT", -3*60*60)
	}
}

// LoadLocation resolves name, falling back to America/Sao_Paulo when it is empty or
// unknown to the host's zoneinfo.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return saoPauloLocation
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return saoPauloLocation
	}
	return loc
}

func FormatLocal(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = saoPauloLocation
	}
	return t.In(loc).Format(displayLayout)
}
