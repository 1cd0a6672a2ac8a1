package attendance

import (
	"context"

	"github.com/dmpt/absensi/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/dmpt/absensi/services/attendance AttendanceGW

// AttendanceGW defines the backend calls used by the attendance usecase
type AttendanceGW interface {
	Record(ctx context.Context, req *models.AttendanceRequest) (*models.Attendance, error)
	History(ctx context.Context, page int) (*models.AttendancePage, error)
}
