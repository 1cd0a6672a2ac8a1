package usecase

import (
	"github.com/dmpt/absensi/services/catalog"
)

type CatalogUC struct {
	catalogGW catalog.CatalogGW
}

// NewCatalogUC creates a new catalog usecase instance
func NewCatalogUC(catalogGW catalog.CatalogGW) *CatalogUC {
	return &CatalogUC{
		catalogGW: catalogGW,
	}
}
