package usecase

import (
	"time"

	"github.com/dmpt/absensi/internal/pkg/models"
	"github.com/dmpt/absensi/services/sales"
)

type SalesUC struct {
	salesGW sales.SalesGW
	now     func() time.Time
}

// NewSalesUC creates a new sales usecase instance
func NewSalesUC(salesGW sales.SalesGW) *SalesUC {
	return &SalesUC{
		salesGW: salesGW,
		now:     models.Now,
	}
}
