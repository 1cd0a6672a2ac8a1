package mockapi

import (
	"github.com/dmpt/absensi/internal/pkg/logger"
	"github.com/dmpt/absensi/internal/pkg/models"
	"github.com/dmpt/absensi/internal/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// a precision 7 cell center is never more than about 110 m from a point inside it
const geohashToleranceKm = 0.2

// RecordAttendance stores a check-in or check-out. The position is checked against the
// office geofence again, the client's own distance is not trusted.
func (h *Handler) RecordAttendance(c echo.Context) error {
	user, found := h.currentUser(c)
	if !found {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.AttendanceRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}
	if req.Type != models.AttendanceCheckIn && req.Type != models.AttendanceCheckOut {
		return utils.UnprocessableResponse(c, "Jenis absensi tidak valid")
	}

	position := models.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude}
	if req.Geohash != "" && utils.CalculateDistance(utils.DecodeGeohash(req.Geohash), position) > geohashToleranceKm {
		return utils.UnprocessableResponse(c, "Geohash tidak sesuai dengan lokasi")
	}

	result := h.geofence.Check(req.Latitude, req.Longitude)
	if !result.WithinRange {
		return utils.UnprocessableResponse(c, "Anda berada di luar area kantor")
	}

	now := h.now()
	if h.store.HasAttendance(user.ID, req.Type, now) {
		if req.Type == models.AttendanceCheckIn {
			return utils.UnprocessableResponse(c, "Anda sudah absen masuk hari ini")
		}
		return utils.UnprocessableResponse(c, "Anda sudah absen keluar hari ini")
	}
	if req.Type == models.AttendanceCheckOut && !h.store.HasAttendance(user.ID, models.AttendanceCheckIn, now) {
		return utils.UnprocessableResponse(c, "Anda belum absen masuk hari ini")
	}

	geohash := req.Geohash
	if geohash == "" {
		geohash = utils.EncodeLocation(position, utils.DefaultGeohashPrecision)
	}

	attendance := models.Attendance{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		Type:       req.Type,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		DistanceKm: result.DistanceKm,
		Geohash:    geohash,
		Status:     result.Status(),
		CreatedAt:  now,
	}
	h.store.AddAttendance(attendance)
	h.metrics.RecordAttendance(req.Type)

	logger.Info("Attendance recorded",
		logger.Int64("user_id", user.ID),
		logger.String("type", req.Type),
		logger.Float64("distance_km", result.DistanceKm))

	return respondCreated(c, "Absensi berhasil", attendance)
}

// AttendanceHistory returns one page of the user's records, newest first
func (h *Handler) AttendanceHistory(c echo.Context) error {
	user, found := h.currentUser(c)
	if !found {
		return utils.UnauthorizedResponse(c, "")
	}

	page, perPage := pageParams(c)
	data, meta := paginate(h.store.Attendances(user.ID), page, perPage)

	return respondOK(c, "Attendance history retrieved successfully", models.AttendancePage{Data: data, Meta: meta})
}
