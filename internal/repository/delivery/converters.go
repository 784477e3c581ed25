package delivery

import "quickship/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}
	return &entities.Delivery{
		ID:           d.ID,
		TrackingCode: d.TrackingCode,
		OwnerID:      d.OwnerID,
		DriverID:     d.DriverID,
		Status:       entities.DeliveryStatusType(d.Status),
		Priority:     entities.DeliveryPriorityType(d.Priority),
		PickupAddress: entities.Address{
			Street:      d.PickupStreet,
			City:        d.PickupCity,
			State:       d.PickupState,
			ZipCode:     d.PickupZip,
			Coordinates: entities.Coordinates{Lat: d.PickupLat, Lng: d.PickupLng},
		},
		DropAddress: entities.Address{
			Street:      d.DropStreet,
			City:        d.DropCity,
			State:       d.DropState,
			ZipCode:     d.DropZip,
			Coordinates: entities.Coordinates{Lat: d.DropLat, Lng: d.DropLng},
		},
		Customer: entities.CustomerInfo{
			Name:  d.CustomerName,
			Phone: d.CustomerPhone,
			Email: d.CustomerEmail,
		},
		Package: entities.PackageDetails{
			WeightKg:    d.WeightKg,
			Description: d.Description,
		},
		DistanceKm:            d.DistanceKm,
		TotalPrice:            d.TotalPrice,
		EstimatedDeliveryTime: d.EstimatedDeliveryTime,
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
	}
}

func ToHistoryDomain(h *StatusHistoryDB) entities.StatusHistoryEntry {
	return entities.StatusHistoryEntry{
		Status:    entities.DeliveryStatusType(h.Status),
		Timestamp: h.OccurredAt,
		Notes:     h.Notes,
		ActorID:   h.ActorID,
	}
}
