package models

import "time"

const (
	AttendanceCheckIn  = "checkin"
	AttendanceCheckOut = "checkout"
)

// Attendance is a single check-in or check-out record
type Attendance struct {
	ID         string    `json:"id"`
	UserID     int64     `json:"user_id"`
	Type       string    `json:"type"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	DistanceKm float64   `json:"distance"`
	Geohash    string    `json:"geohash,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// AttendanceRequest is posted when an employee checks in or out
type AttendanceRequest struct {
	Type       string  `json:"type"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distance"`
	Geohash    string  `json:"geohash"`
	Status     string  `json:"status"`
}

// AttendancePage is a page of attendance history
type AttendancePage struct {
	Data []Attendance `json:"data"`
	Meta PageMeta     `json:"meta"`
}
