package model

import (
	"darshan/shared/model"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "museums"
	EntityName = "museum"

	FieldID               = "id"
	FieldName             = "name"
	FieldLocation         = "location"
	FieldIndianAdultFee   = "indian_adult_fee"
	FieldIndianChildFee   = "indian_child_fee"
	FieldInternationalFee = "international_fee"
	FieldCameraFee        = "camera_fee"
	FieldFreeForStudents  = "free_for_students"
	FieldTimings          = "timings"
	FieldClosedOn         = "closed_on"
)

type Museum struct {
	ID               string          `db:"id"`
	Name             string          `db:"name"`
	Location         string          `db:"location"`
	IndianAdultFee   decimal.Decimal `db:"indian_adult_fee"`
	IndianChildFee   decimal.Decimal `db:"indian_child_fee"`
	InternationalFee decimal.Decimal `db:"international_fee"`
	CameraFee        decimal.Decimal `db:"camera_fee"`
	FreeForStudents  bool            `db:"free_for_students"`
	Timings          string          `db:"timings"`
	ClosedOn         string          `db:"closed_on"`
	model.Metadata
}

var weekdayWords = map[string][]time.Weekday{
	"sun": {time.Sunday}, "sunday": {time.Sunday}, "sundays": {time.Sunday},
	"mon": {time.Monday}, "monday": {time.Monday}, "mondays": {time.Monday},
	"tue": {time.Tuesday}, "tues": {time.Tuesday}, "tuesday": {time.Tuesday}, "tuesdays": {time.Tuesday},
	"wed": {time.Wednesday}, "wednesday": {time.Wednesday}, "wednesdays": {time.Wednesday},
	"thu": {time.Thursday}, "thur": {time.Thursday}, "thurs": {time.Thursday}, "thursday": {time.Thursday}, "thursdays": {time.Thursday},
	"fri": {time.Friday}, "friday": {time.Friday}, "fridays": {time.Friday},
	"sat": {time.Saturday}, "saturday": {time.Saturday}, "saturdays": {time.Saturday},
	"weekend": {time.Saturday, time.Sunday}, "weekends": {time.Saturday, time.Sunday},
}

// ClosedWeekdays extracts the weekdays named in the free-text closed_on field,
// e.g. "Mondays and national holidays" or "Sat, Sun". Words that are not
// weekdays (holidays, "none", dates) are ignored.
func (m Museum) ClosedWeekdays() []time.Weekday {
	words := strings.FieldsFunc(strings.ToLower(m.ClosedOn), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	seen := map[time.Weekday]bool{}
	days := []time.Weekday{}

	for _, word := range words {
		for _, day := range weekdayWords[word] {
			if !seen[day] {
				seen[day] = true
				days = append(days, day)
			}
		}
	}

	return days
}

func (m Museum) IsClosedOn(date time.Time) bool {
	for _, day := range m.ClosedWeekdays() {
		if day == date.Weekday() {
			return true
		}
	}

	return false
}
