package models

import (
	"fmt"
	"time"
)

const WeeksPerTerm = 20

// WeekRecord is one week of a student's attendance sheet.
type WeekRecord struct {
	Week                 int        `bson:"week" json:"week"`
	Attended             bool       `bson:"attended" json:"attended"`
	LastAttendance       *time.Time `bson:"lastAttendance" json:"lastAttendance"`
	LastAttendanceCenter *string    `bson:"lastAttendanceCenter" json:"lastAttendanceCenter"`
	HWDone               bool       `bson:"hwDone" json:"hwDone"`
	PaidSession          bool       `bson:"paidSession" json:"paidSession"`
	QuizDegree           *float64   `bson:"quizDegree" json:"quizDegree"`
	MessageState         bool       `bson:"message_state" json:"message_state"`
}

type Weeks []WeekRecord

// NewWeeks returns a blank sheet: weeks 1..20, nothing attended.
func NewWeeks() Weeks {
	weeks := make(Weeks, WeeksPerTerm)
	for i := range weeks {
		weeks[i] = WeekRecord{Week: i + 1}
	}
	return weeks
}

// Validate checks there are exactly 20 entries numbered 1..20 in order.
func (w Weeks) Validate() error {
	if len(w) != WeeksPerTerm {
		return fmt.Errorf("weeks: got %d entries, want %d", len(w), WeeksPerTerm)
	}
	for i, rec := range w {
		if rec.Week != i+1 {
			return fmt.Errorf("weeks: entry %d has week %d, want %d", i, rec.Week, i+1)
		}
	}
	return nil
}
