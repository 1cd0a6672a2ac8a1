package usecase

import (
	"context"

	"github.com/dmpt/absensi/internal/pkg/logger"
	"github.com/dmpt/absensi/internal/pkg/models"
	"github.com/dmpt/absensi/internal/utils"
	"github.com/dmpt/absensi/services/attendance"
)

// CheckDistance reports the distance from loc to the office
func (u *AttendanceUC) CheckDistance(loc models.Coordinate) models.DistanceResult {
	return u.geofence.Check(loc.Latitude, loc.Longitude)
}

// CheckIn records the start of the working day at loc
func (u *AttendanceUC) CheckIn(ctx context.Context, loc models.Coordinate) (*models.Attendance, error) {
	return u.record(ctx, models.AttendanceCheckIn, loc)
}

// CheckOut records the end of the working day at loc
func (u *AttendanceUC) CheckOut(ctx context.Context, loc models.Coordinate) (*models.Attendance, error) {
	return u.record(ctx, models.AttendanceCheckOut, loc)
}

func (u *AttendanceUC) record(ctx context.Context, kind string, loc models.Coordinate) (*models.Attendance, error) {
	result := u.CheckDistance(loc)
	if !result.WithinRange {
		logger.Info("Attendance rejected outside office",
			logger.String("type", kind),
			logger.Float64("distance_km", result.DistanceKm))
		return nil, &attendance.OutsideOfficeError{Result: result}
	}

	req := &models.AttendanceRequest{
		Type:       kind,
		Latitude:   loc.Latitude,
		Longitude:  loc.Longitude,
		DistanceKm: result.DistanceKm,
		Geohash:    utils.EncodeLocation(loc, utils.DefaultGeohashPrecision),
		Status:     result.Status(),
	}

	record, err := u.attendanceGW.Record(ctx, req)
	if err != nil {
		return nil, err
	}

	logger.Info("Attendance recorded",
		logger.String("type", kind),
		logger.String("geohash", req.Geohash),
		logger.Float64("distance_km", result.DistanceKm))
	return record, nil
}

// History returns a page of attendance records. Pages start at 1.
func (u *AttendanceUC) History(ctx context.Context, page int) (*models.AttendancePage, error) {
	if page < 1 {
		page = 1
	}
	return u.attendanceGW.History(ctx, page)
}
