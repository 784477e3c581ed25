// Package views собирает DTO ответов, общие для нескольких REST обработчиков.
package views

import (
	"quickship/internal/entities"
	"quickship/internal/generated/dto"
)

func Delivery(e *entities.Delivery) dto.Delivery {
	return dto.Delivery{
		ID:                    e.ID,
		TrackingCode:          e.TrackingCode,
		OwnerID:               e.OwnerID,
		DriverID:              e.DriverID,
		Status:                e.Status.String(),
		Priority:              e.Priority.String(),
		PickupAddress:         address(e.PickupAddress),
		DropAddress:           address(e.DropAddress),
		Customer:              dto.CustomerInfo(e.Customer),
		Package:               dto.PackageDetails(e.Package),
		DistanceKm:            e.DistanceKm,
		TotalPrice:            e.TotalPrice,
		EstimatedDeliveryTime: e.EstimatedDeliveryTime,
		CreatedAt:             e.CreatedAt,
		UpdatedAt:             e.UpdatedAt,
		StatusHistory:         statusHistory(e.StatusHistory),
	}
}

func address(a entities.Address) dto.Address {
	return dto.Address{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		ZipCode: a.ZipCode,
		Coordinates: &dto.Coordinates{
			Lat: a.Coordinates.Lat,
			Lng: a.Coordinates.Lng,
		},
	}
}

func statusHistory(entries []entities.StatusHistoryEntry) []dto.StatusHistoryEntry {
	if len(entries) == 0 {
		return nil
	}

	history := make([]dto.StatusHistoryEntry, 0, len(entries))
	for _, entry := range entries {
		history = append(history, dto.StatusHistoryEntry{
			Status:    entry.Status.String(),
			Timestamp: entry.Timestamp,
			Notes:     entry.Notes,
			ActorID:   entry.ActorID,
		})
	}
	return history
}
