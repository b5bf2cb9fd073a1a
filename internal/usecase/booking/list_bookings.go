package booking

import (
	"context"

	domain "github.com/ShineWorksMX/detailing-scheduler/internal/domain/booking"
	"github.com/ShineWorksMX/detailing-scheduler/internal/dto"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(
	repo domain.Repository,
) *ListBookings {
	return &ListBookings{
		repo: repo,
	}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:          b.ID,
			Reference:   b.Reference,
			Kind:        b.Kind,
			Name:        b.Name,
			Phone:       b.Phone,
			Email:       b.Email,
			ServiceType: b.ServiceType,
			BookingDate: b.BookingDate,
			BookingTime: b.BookingTime,
			Status:      b.Status,
			CreatedAt:   b.CreatedAt,
		})
	}

	return out, nil
}
