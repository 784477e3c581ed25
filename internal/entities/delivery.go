package entities

import "time"

type Delivery struct {
	ID           int64
	TrackingCode string
	OwnerID      int64
	DriverID     *int64

	Status   DeliveryStatusType
	Priority DeliveryPriorityType

	PickupAddress Address
	DropAddress   Address
	Customer      CustomerInfo
	Package       PackageDetails

	DistanceKm            float64
	TotalPrice            float64
	EstimatedDeliveryTime time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	StatusHistory []StatusHistoryEntry
}

type Coordinates struct {
	Lat float64
	Lng float64
}

type Address struct {
	Street      string
	City        string
	State       string
	ZipCode     string
	Coordinates Coordinates
}

type CustomerInfo struct {
	Name  string
	Phone string
	Email string
}

type PackageDetails struct {
	WeightKg    float64
	Description string
}

// StatusHistoryEntry одна запись истории статусов, append-only.
type StatusHistoryEntry struct {
	Status    DeliveryStatusType
	Timestamp time.Time
	Notes     string
	ActorID   int64
}

type DeliveryStatusType string

const (
	DeliveryCreated   DeliveryStatusType = "created"
	DeliveryAccepted  DeliveryStatusType = "accepted"
	DeliveryPickedUp  DeliveryStatusType = "picked_up"
	DeliveryOnTheWay  DeliveryStatusType = "on_the_way"
	DeliveryDelivered DeliveryStatusType = "delivered"
	DeliveryCancelled DeliveryStatusType = "cancelled"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

// IsTerminal: delivered и cancelled поглощающие, переходов из них нет.
func (s DeliveryStatusType) IsTerminal() bool {
	return s == DeliveryDelivered || s == DeliveryCancelled
}

type DeliveryPriorityType string

const (
	PriorityLow    DeliveryPriorityType = "low"
	PriorityMedium DeliveryPriorityType = "medium"
	PriorityHigh   DeliveryPriorityType = "high"
	PriorityUrgent DeliveryPriorityType = "urgent"
)

const DefaultPriority = PriorityMedium

func (p DeliveryPriorityType) String() string {
	return string(p)
}

// DeliveryCreate входные данные создания, цена и трек-код считаются сервисом.
type DeliveryCreate struct {
	OwnerID       int64
	PickupAddress Address
	DropAddress   Address
	Customer      CustomerInfo
	Package       PackageDetails
	Priority      DeliveryPriorityType
}

// Quote результат оценки: считается один раз при создании и больше не меняется.
type Quote struct {
	DistanceKm            float64
	TotalPrice            float64
	EstimatedDeliveryTime time.Time
}

type DeliveryFilter struct {
	Status   *DeliveryStatusType
	OwnerID  *int64
	DriverID *int64
	Page     int
	Limit    int
}

type StatusCount struct {
	Status DeliveryStatusType
	Count  int64
}

type DeliveryStats struct {
	TotalDeliveries int64
	StatusBreakdown []StatusCount
}

// StatusChangedEvent событие для топика delivery.status.changed.
type StatusChangedEvent struct {
	DeliveryID   int64
	TrackingCode string
	Status       DeliveryStatusType
	ActorID      int64
	Notes        string
	OccurredAt   time.Time
}
