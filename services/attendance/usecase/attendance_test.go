package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/dmpt/absensi/internal/pkg/models"
	"github.com/dmpt/absensi/internal/utils"
	"github.com/dmpt/absensi/services/attendance"
	"github.com/dmpt/absensi/services/attendance/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roughly one meter of latitude in degrees
const degPerMeter = 1 / 111194.93

func TestRecord(t *testing.T) {
	office := models.OfficeLocation

	tests := []struct {
		name       string
		loc        models.Coordinate
		checkOut   bool
		wantRecord bool
	}{
		{
			name:       "check in at the office",
			loc:        office,
			wantRecord: true,
		},
		{
			name:       "check out 90 m north",
			loc:        models.Coordinate{Latitude: office.Latitude + 90*degPerMeter, Longitude: office.Longitude},
			checkOut:   true,
			wantRecord: true,
		},
		{
			name: "check in 150 m north",
			loc:  models.Coordinate{Latitude: office.Latitude + 150*degPerMeter, Longitude: office.Longitude},
		},
		{
			name:     "check out from Bandung",
			loc:      models.Coordinate{Latitude: -6.914744, Longitude: 107.609810},
			checkOut: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockGW := mocks.NewMockAttendanceGW(ctrl)
			uc := NewAttendanceUC(mockGW, utils.DefaultGeofence)

			expectedType := models.AttendanceCheckIn
			if tt.checkOut {
				expectedType = models.AttendanceCheckOut
			}

			if tt.wantRecord {
				mockGW.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req *models.AttendanceRequest) (*models.Attendance, error) {
						assert.Equal(t, expectedType, req.Type)
						assert.Equal(t, tt.loc.Latitude, req.Latitude)
						assert.Equal(t, tt.loc.Longitude, req.Longitude)
						assert.Equal(t, models.StatusInsideOffice, req.Status)
						assert.Len(t, req.Geohash, int(utils.DefaultGeohashPrecision))
						assert.LessOrEqual(t, req.DistanceKm, models.OfficeRadiusKm)
						return &models.Attendance{ID: "att-1", Type: req.Type, Status: req.Status}, nil
					})
			}

			// Act
			var (
				record *models.Attendance
				err    error
			)
			if tt.checkOut {
				record, err = uc.CheckOut(context.Background(), tt.loc)
			} else {
				record, err = uc.CheckIn(context.Background(), tt.loc)
			}

			// Assert
			if tt.wantRecord {
				require.NoError(t, err)
				assert.Equal(t, "att-1", record.ID)
				assert.Equal(t, expectedType, record.Type)
				return
			}

			assert.Nil(t, record)
			assert.ErrorIs(t, err, attendance.ErrOutsideOffice)

			var outside *attendance.OutsideOfficeError
			require.True(t, errors.As(err, &outside))
			assert.False(t, outside.Result.WithinRange)
			assert.Greater(t, outside.Result.DistanceKm, models.OfficeRadiusKm)
			assert.Equal(t, models.StatusOutsideOffice, outside.Result.Status())
		})
	}
}

func TestRecord_GatewayError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockAttendanceGW(ctrl)
	uc := NewAttendanceUC(mockGW, utils.DefaultGeofence)

	gwErr := errors.New("Terjadi kesalahan saat mengirim data")
	mockGW.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil, gwErr)

	record, err := uc.CheckIn(context.Background(), models.OfficeLocation)

	assert.Nil(t, record)
	assert.ErrorIs(t, err, gwErr)
}

func TestRecord_ConfiguredGeofence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	branch := models.OfficeConfig{Latitude: -6.914744, Longitude: 107.609810, RadiusKm: 0.5}
	mockGW := mocks.NewMockAttendanceGW(ctrl)
	uc := NewAttendanceUC(mockGW, utils.NewGeofence(branch))

	mockGW.EXPECT().Record(gomock.Any(), gomock.Any()).Return(&models.Attendance{ID: "att-2"}, nil)

	record, err := uc.CheckIn(context.Background(), models.Coordinate{Latitude: -6.914744, Longitude: 107.609810})
	require.NoError(t, err)
	assert.Equal(t, "att-2", record.ID)

	_, err = uc.CheckIn(context.Background(), models.OfficeLocation)
	assert.ErrorIs(t, err, attendance.ErrOutsideOffice)
}

func TestCheckDistance(t *testing.T) {
	uc := NewAttendanceUC(nil, utils.DefaultGeofence)

	result := uc.CheckDistance(models.OfficeLocation)

	assert.Equal(t, 0.0, result.DistanceKm)
	assert.True(t, result.WithinRange)
}

func TestHistory(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		expectedPage int
	}{
		{name: "first page", page: 1, expectedPage: 1},
		{name: "later page", page: 3, expectedPage: 3},
		{name: "zero is first page", page: 0, expectedPage: 1},
		{name: "negative is first page", page: -2, expectedPage: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockGW := mocks.NewMockAttendanceGW(ctrl)
			uc := NewAttendanceUC(mockGW, utils.DefaultGeofence)

			page := &models.AttendancePage{Meta: models.PageMeta{CurrentPage: tt.expectedPage}}
			mockGW.EXPECT().History(gomock.Any(), tt.expectedPage).Return(page, nil)

			got, err := uc.History(context.Background(), tt.page)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedPage, got.Meta.CurrentPage)
		})
	}
}
