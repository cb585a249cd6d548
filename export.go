package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// exportCalendar rewrites the .ics export with one all-day event per task
// that has a due date. Done maps to the event status. The file is rebuilt
// from scratch every time, so a failed export never leaves it half-written.
func exportCalendar(path string, tasks []Task) error {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//task-app//EN\r\n")

	stamp := time.Now().UTC().Format("20060102T150405Z")
	for _, t := range tasks {
		due, err := time.Parse(dueLayout, t.Due)
		if err != nil {
			continue
		}
		status := "NEEDS-ACTION"
		if t.Done {
			status = "COMPLETED"
		}
		b.WriteString("BEGIN:VEVENT\r\n")
		fmt.Fprintf(&b, "UID:%s\r\n", t.ID)
		fmt.Fprintf(&b, "DTSTAMP:%s\r\n", stamp)
		fmt.Fprintf(&b, "DTSTART;VALUE=DATE:%s\r\n", due.Format("20060102"))
		fmt.Fprintf(&b, "SUMMARY:%s\r\n", escapeICS(t.Title))
		fmt.Fprintf(&b, "STATUS:%s\r\n", status)
		b.WriteString("END:VEVENT\r\n")
	}
	b.WriteString("END:VCALENDAR\r\n")

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		log.Printf("Warning: calendar export failed: %v", err)
		return err
	}
	return nil
}

// escapeICS quotes the characters the calendar text format reserves.
func escapeICS(s string) string {
	r := strings.NewReplacer("\\", "\\\\", ";", "\\;", ",", "\\,", "\n", "\\n")
	return r.Replace(s)
}
