package delivery

import "time"

type DeliveryDB struct {
	ID           int64
	TrackingCode string
	OwnerID      int64
	DriverID     *int64

	Status   string
	Priority string

	PickupStreet string
	PickupCity   string
	PickupState  string
	PickupZip    string
	PickupLat    float64
	PickupLng    float64

	DropStreet string
	DropCity   string
	DropState  string
	DropZip    string
	DropLat    float64
	DropLng    float64

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	WeightKg    float64
	Description string

	DistanceKm            float64
	TotalPrice            float64
	EstimatedDeliveryTime time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type StatusHistoryDB struct {
	ID         int64
	DeliveryID int64
	Status     string
	OccurredAt time.Time
	Notes      string
	ActorID    int64
}

type StatusCountDB struct {
	Status string
	Count  int64
}
