package repository

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jinzhu/now"
)

// DayBounds возвращает начало календарного дня date и начало следующего, в часовом поясе date
func DayBounds(date time.Time) (time.Time, time.Time) {
	start := now.With(date).BeginningOfDay()
	return start, start.AddDate(0, 0, 1)
}

// calendarDay - календарная дата date в её часовом поясе, для колонки типа DATE
func calendarDay(date time.Time) pgtype.Date {
	y, m, d := date.Date()
	return pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}
