// Package dateutil provides the fixed German date formats used by the
// protocol grammar and the PDF export.
package dateutil

import (
	"regexp"
	"time"
)

// StampFormat is the timestamp layout of the Erstellt/Geändert lines.
const StampFormat = "02.01.2006 15:04"

// DueDateFormat is the layout of an action item's due date.
const DueDateFormat = "02.01.2006"

// FileDateFormat is the ISO date used in suggested filenames.
const FileDateFormat = "2006-01-02"

// German weekday names, indexed by time.Weekday (Sunday first).
var weekdays = [7]string{
	"Sonntag",
	"Montag",
	"Dienstag",
	"Mittwoch",
	"Donnerstag",
	"Freitag",
	"Samstag",
}

// Stamp formats t as "TT.MM.JJJJ HH:MM".
func Stamp(t time.Time) string {
	return t.Format(StampFormat)
}

// FileDate formats t as "JJJJ-MM-TT" for suggested filenames.
func FileDate(t time.Time) string {
	return t.Format(FileDateFormat)
}

// DateLabel returns the default free-text date of a new protocol,
// e.g. "Montag, 05.02.2026".
func DateLabel(t time.Time) string {
	return weekdays[t.Weekday()] + ", " + t.Format(DueDateFormat)
}

var duePattern = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

// IsValidDueDate reports whether s is a well-formed calendar date in
// TT.MM.JJJJ form. Invalid dates are flagged for display only; they are
// never rejected from storage.
func IsValidDueDate(s string) bool {
	if !duePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(DueDateFormat, s)
	return err == nil
}
