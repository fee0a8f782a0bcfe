package chrono

import (
	"time"
	_ "time/tzdata"
)

var copenhagen *time.Location

func init() {
	var err error
	copenhagen, err = time.LoadLocation("Europe/Copenhagen")
	if err != nil {
		panic(err)
	}
}

// Copenhagen returns a [*time.Location] for Europe/Copenhagen, the timezone every
// timestamp printed by lectio is in.
func Copenhagen() *time.Location {
	return copenhagen
}

// TimeAPI is the interface that anything depending on the system clock should use.
//
// note: fault injection point
type TimeAPI interface {
	// Now returns the current time in Location().
	Now() time.Time
	// Location returns the timezone naive timestamps should be interpreted in.
	Location() *time.Location
}

// StandardTime is the standard implementation of TimeAPI using the standard library.
type StandardTime struct{}

// NewStandardTime is the constructor of StandardTime.
func NewStandardTime() StandardTime {
	return StandardTime{}
}

func (StandardTime) Now() time.Time {
	return time.Now().In(copenhagen)
}

func (StandardTime) Location() *time.Location {
	return copenhagen
}

// FixedTime is a TimeAPI that always returns the same instant, the location of
// `At` is used as Location().
type FixedTime struct {
	At time.Time
}

func (f FixedTime) Now() time.Time {
	return f.At
}

func (f FixedTime) Location() *time.Location {
	return f.At.Location()
}
