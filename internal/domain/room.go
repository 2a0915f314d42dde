package domain

import "time"

// RoomType represents the category of a room
type RoomType string

const (
	RoomTypeStandard  RoomType = "standard"
	RoomTypeDeluxe    RoomType = "deluxe"
	RoomTypeSuite     RoomType = "suite"
	RoomTypeExecutive RoomType = "executive"
)

// RoomTypes lists every valid room type.
var RoomTypes = []RoomType{
	RoomTypeStandard,
	RoomTypeDeluxe,
	RoomTypeSuite,
	RoomTypeExecutive,
}

// RoomStatus represents the operational state of a room
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusReserved    RoomStatus = "reserved"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

// RoomStatuses lists every valid room status.
var RoomStatuses = []RoomStatus{
	RoomStatusAvailable,
	RoomStatusReserved,
	RoomStatusOccupied,
	RoomStatusMaintenance,
}

// Room represents a hotel room in the inventory
type Room struct {
	ID          int64
	Number      string
	Type        RoomType
	Capacity    int
	NightlyRate float64
	Floor       *string
	Status      RoomStatus
	IsClean     bool
	LastCleaned *time.Time
	Description *string
	Amenities   []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if new bookings may be taken for the room.
// A room under maintenance is out of inventory until the blocking request
// is completed.
func (r *Room) IsBookable() bool {
	return r.Status != RoomStatusMaintenance
}

// IsOccupied returns true if a guest is currently checked in.
func (r *Room) IsOccupied() bool {
	return r.Status == RoomStatusOccupied
}

// NeedsCleaning returns true if the room should be cleaned before the next stay.
func (r *Room) NeedsCleaning() bool {
	return !r.IsClean
}

// FitsGuests returns true if the room can host the given party size.
func (r *Room) FitsGuests(guests int) bool {
	return guests > 0 && guests <= r.Capacity
}

// ValidRoomType reports whether s names a known room type.
func ValidRoomType(s string) bool {
	for _, t := range RoomTypes {
		if RoomType(s) == t {
			return true
		}
	}
	return false
}

// ValidRoomStatus reports whether s names a known room status.
func ValidRoomStatus(s string) bool {
	for _, st := range RoomStatuses {
		if RoomStatus(s) == st {
			return true
		}
	}
	return false
}

// RoomFilter filter for listing rooms
type RoomFilter struct {
	Type        *RoomType
	Status      *RoomStatus
	CleanOnly   bool
	MinCapacity *int
}

// RoomSearchFilter filter for the availability search
type RoomSearchFilter struct {
	Type   *RoomType // nil = any type
	Guests *int      // nil = any capacity
}
