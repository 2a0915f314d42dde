package models

import (
	"time"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
)

// Request models

// CreateRoomRequest carries the data needed to add a room to the inventory.
type CreateRoomRequest struct {
	Number      string   `json:"number"`
	Type        string   `json:"type"`
	Capacity    int      `json:"capacity"`
	NightlyRate float64  `json:"nightlyRate"`
	Floor       *string  `json:"floor,omitempty"`
	Description *string  `json:"description,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
}

// UpdateRoomRequest carries a partial update, nil fields stay unchanged.
type UpdateRoomRequest struct {
	Type        *string   `json:"type,omitempty"`
	Capacity    *int      `json:"capacity,omitempty"`
	NightlyRate *float64  `json:"nightlyRate,omitempty"`
	Floor       *string   `json:"floor,omitempty"`
	Description *string   `json:"description,omitempty"`
	Amenities   *[]string `json:"amenities,omitempty"`
}

// ListRoomsRequest filters the room listing.
type ListRoomsRequest struct {
	Type        *string `json:"type,omitempty"`
	Status      *string `json:"status,omitempty"`
	CleanOnly   bool    `json:"cleanOnly,omitempty"`
	MinCapacity *int    `json:"minCapacity,omitempty"`
}

// ToDomainFilter converts the request into a domain filter.
func (r *ListRoomsRequest) ToDomainFilter() (domain.RoomFilter, error) {
	filter := domain.RoomFilter{
		CleanOnly:   r.CleanOnly,
		MinCapacity: r.MinCapacity,
	}

	if r.Type != nil {
		roomType, err := ToDomainRoomType(*r.Type)
		if err != nil {
			return filter, err
		}
		filter.Type = &roomType
	}
	if r.Status != nil {
		status, err := ToDomainRoomStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// RoomResponse is the room representation returned by the API.
type RoomResponse struct {
	ID          int64    `json:"id"`
	Number      string   `json:"number"`
	Type        string   `json:"type"`
	Capacity    int      `json:"capacity"`
	NightlyRate float64  `json:"nightlyRate"`
	Floor       *string  `json:"floor,omitempty"`
	Status      string   `json:"status"`
	IsClean     bool     `json:"isClean"`
	LastCleaned *string  `json:"lastCleaned,omitempty"`
	Description *string  `json:"description,omitempty"`
	Amenities   []string `json:"amenities"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// RoomListResponse wraps a list of rooms.
type RoomListResponse struct {
	Rooms []*RoomResponse `json:"rooms"`
	Total int             `json:"total"`
}

// FromDomainRoom converts a domain room to its API representation.
func FromDomainRoom(room *domain.Room) *RoomResponse {
	resp := &RoomResponse{
		ID:          room.ID,
		Number:      room.Number,
		Type:        string(room.Type),
		Capacity:    room.Capacity,
		NightlyRate: room.NightlyRate,
		Floor:       room.Floor,
		Status:      string(room.Status),
		IsClean:     room.IsClean,
		Description: room.Description,
		Amenities:   room.Amenities,
		CreatedAt:   room.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   room.UpdatedAt.Format(time.RFC3339),
	}

	if resp.Amenities == nil {
		resp.Amenities = []string{}
	}
	if room.LastCleaned != nil {
		formatted := room.LastCleaned.Format(time.RFC3339)
		resp.LastCleaned = &formatted
	}

	return resp
}

// FromDomainRoomList converts a list of domain rooms.
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	responses := make([]*RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		responses = append(responses, FromDomainRoom(room))
	}
	return &RoomListResponse{
		Rooms: responses,
		Total: len(responses),
	}
}

// ToDomainRoomType parses a room type string.
func ToDomainRoomType(s string) (domain.RoomType, error) {
	if !domain.ValidRoomType(s) {
		return "", ErrInvalidRoomType
	}
	return domain.RoomType(s), nil
}

// ToDomainRoomStatus parses a room status string.
func ToDomainRoomStatus(s string) (domain.RoomStatus, error) {
	if !domain.ValidRoomStatus(s) {
		return "", ErrInvalidRoomStatus
	}
	return domain.RoomStatus(s), nil
}
