package appointment

import (
	"context"

	domain "github.com/navalha-app/booking-api/internal/domain/appointment"
	"github.com/navalha-app/booking-api/internal/models"
)

type GetServices struct {
	repo domain.Repository
}

func NewGetServices(repo domain.Repository) *GetServices {
	return &GetServices{repo: repo}
}

// Execute lista os serviços ativos; com barberID filtra pelos
// serviços que aquele barbeiro atende.
func (uc *GetServices) Execute(
	ctx context.Context,
	barberID *uint,
) ([]models.Service, error) {
	return uc.repo.ListActiveServices(ctx, barberID)
}
