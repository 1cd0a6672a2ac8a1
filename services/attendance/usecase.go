package attendance

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmpt/absensi/internal/pkg/models"
)

// ErrOutsideOffice is matched by OutsideOfficeError
var ErrOutsideOffice = errors.New("outside office radius")

// OutsideOfficeError is returned when a check-in or check-out is attempted away from the office
type OutsideOfficeError struct {
	Result models.DistanceResult
}

func (e *OutsideOfficeError) Error() string {
	return fmt.Sprintf("%s: %.2f km from office", ErrOutsideOffice, e.Result.DistanceKm)
}

// Is lets errors.Is(err, ErrOutsideOffice) match
func (e *OutsideOfficeError) Is(target error) bool {
	return target == ErrOutsideOffice
}

// AttendanceUC represents the attendance usecase interface
type AttendanceUC interface {
	// CheckDistance reports how far loc is from the office without recording anything
	CheckDistance(loc models.Coordinate) models.DistanceResult
	CheckIn(ctx context.Context, loc models.Coordinate) (*models.Attendance, error)
	CheckOut(ctx context.Context, loc models.Coordinate) (*models.Attendance, error)
	History(ctx context.Context, page int) (*models.AttendancePage, error)
}
