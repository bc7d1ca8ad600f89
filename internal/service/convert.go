package service

import "time"

const dateLayout = "2006-01-02"

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
