package usecase

import (
	"github.com/dmpt/absensi/internal/utils"
	"github.com/dmpt/absensi/services/attendance"
)

type AttendanceUC struct {
	attendanceGW attendance.AttendanceGW
	geofence     utils.Geofence
}

// NewAttendanceUC creates a new attendance usecase checking locations against geofence
func NewAttendanceUC(attendanceGW attendance.AttendanceGW, geofence utils.Geofence) *AttendanceUC {
	return &AttendanceUC{
		attendanceGW: attendanceGW,
		geofence:     geofence,
	}
}
