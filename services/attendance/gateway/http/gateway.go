package gateway_http

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmpt/absensi/internal/pkg/constants"
	httpclient "github.com/dmpt/absensi/internal/pkg/http"
	"github.com/dmpt/absensi/internal/pkg/models"
)

// HTTPGateway implements attendance.AttendanceGW against the backend REST API
type HTTPGateway struct {
	client *httpclient.Client
}

// NewHTTPGateway creates a new HTTP gateway for the attendance service
func NewHTTPGateway(client *httpclient.Client) *HTTPGateway {
	return &HTTPGateway{client: client}
}

// Record posts a check-in or check-out
func (g *HTTPGateway) Record(ctx context.Context, req *models.AttendanceRequest) (*models.Attendance, error) {
	var attendance models.Attendance
	if _, err := g.client.Post(ctx, constants.PathAttendances, req, &attendance); err != nil {
		return nil, fmt.Errorf("failed to record %s: %w", req.Type, err)
	}
	return &attendance, nil
}

// History fetches one page of the user's attendance records
func (g *HTTPGateway) History(ctx context.Context, page int) (*models.AttendancePage, error) {
	var history models.AttendancePage
	_, err := g.client.Get(ctx, constants.PathAttendances, &history,
		httpclient.WithQuery(constants.QueryPage, strconv.Itoa(page)))
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance history: %w", err)
	}
	return &history, nil
}
