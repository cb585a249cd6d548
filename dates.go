package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dueLayout = "2006-01-02"

// parseDueDate converts flexible date input into the canonical YYYY-MM-DD
// form. Accepted: already-canonical dates, "D.M" (current year, rolled to
// next year if the date already passed) and "D.M.Y" (two-digit years mean
// 2000+Y). Anything else, including calendar nonsense like 31.2, comes back
// as absent. Absence is never an error; it just means "no due date".
func parseDueDate(input string) (string, bool) {
	return parseDueDateOn(input, time.Now())
}

func parseDueDateOn(input string, today time.Time) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}

	if strings.Count(input, "-") == 2 {
		if _, err := time.Parse(dueLayout, input); err == nil {
			return input, true
		}
	}

	parts := strings.Split(input, ".")
	var day, month, year int
	var err error

	switch len(parts) {
	case 2: // D.M
		if day, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
			return "", false
		}
		if month, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
			return "", false
		}
		year = today.Year()
		// A day/month that already passed this year means next year.
		if month < int(today.Month()) || (month == int(today.Month()) && day < today.Day()) {
			year++
		}
	case 3: // D.M.Y
		if day, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
			return "", false
		}
		if month, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
			return "", false
		}
		if year, err = strconv.Atoi(strings.TrimSpace(parts[2])); err != nil {
			return "", false
		}
		if year < 100 {
			year += 2000
		}
	default:
		return "", false
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", false // time.Date normalized it away, so it wasn't a real date
	}
	return t.Format(dueLayout), true
}

// formatDueDate turns a canonical due date into display text relative to
// today ("TODAY", "Tomorrow", "In 3 days", ...). A stored value that doesn't
// parse is echoed back verbatim rather than crashing the view.
func formatDueDate(due string) string {
	return formatDueDateOn(due, time.Now())
}

func formatDueDateOn(due string, today time.Time) string {
	if due == "" {
		return ""
	}
	t, err := time.Parse(dueLayout, due)
	if err != nil {
		return due
	}
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	delta := int(t.Sub(midnight).Hours() / 24)

	switch {
	case delta < 0:
		return fmt.Sprintf("Overdue (%dd)", -delta)
	case delta == 0:
		return "TODAY"
	case delta == 1:
		return "Tomorrow"
	case delta < 7:
		return fmt.Sprintf("In %d days", delta)
	default:
		return t.Format("02.01.2006")
	}
}

// nextOccurrence advances a canonical date by a recurrence code like "3d" or
// "2w". The final character picks the unit, the leading digits the magnitude
// (missing or unparseable digits mean 1). An unknown unit yields absent.
func nextOccurrence(due, code string) (string, bool) {
	if due == "" || code == "" {
		return "", false
	}
	t, err := time.Parse(dueLayout, due)
	if err != nil {
		return "", false
	}

	n := 1
	if digits := code[:len(code)-1]; digits != "" {
		if parsed, err := strconv.Atoi(digits); err == nil {
			n = parsed
		}
	}

	switch code[len(code)-1] {
	case 'd':
		t = t.AddDate(0, 0, n)
	case 'w':
		t = t.AddDate(0, 0, 7*n)
	default:
		return "", false
	}
	return t.Format(dueLayout), true
}

// validRecurrence reports whether a recurrence code would resolve when the
// task is completed. Used to drop bad codes at creation time instead of
// carrying them around.
func validRecurrence(code string) bool {
	if code == "" {
		return false
	}
	switch code[len(code)-1] {
	case 'd', 'w':
		return true
	}
	return false
}
