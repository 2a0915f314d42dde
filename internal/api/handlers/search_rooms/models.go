package search_rooms

import (
	"github.com/hotelharmony/hotel-ops-service/internal/domain"
	"github.com/hotelharmony/hotel-ops-service/internal/usecase/search_rooms"
)

// AvailableRoomResponse is one room free for the requested stay.
type AvailableRoomResponse struct {
	ID          int64    `json:"id"`
	Number      string   `json:"number"`
	Type        string   `json:"type"`
	Capacity    int      `json:"capacity"`
	NightlyRate float64  `json:"nightlyRate"`
	Floor       *string  `json:"floor,omitempty"`
	Description *string  `json:"description,omitempty"`
	Amenities   []string `json:"amenities"`
	TotalPrice  float64  `json:"totalPrice"`
}

// SearchResponse lists the rooms free for the requested stay.
type SearchResponse struct {
	CheckIn  string                   `json:"checkIn"`
	CheckOut string                   `json:"checkOut"`
	Nights   int                      `json:"nights"`
	Rooms    []*AvailableRoomResponse `json:"rooms"`
	Total    int                      `json:"total"`
}

// FromUseCaseResponse converts the use case result to the API response.
func FromUseCaseResponse(resp *search_rooms.Response) *SearchResponse {
	out := &SearchResponse{
		CheckIn:  resp.CheckIn.Format(domain.DateFormat),
		CheckOut: resp.CheckOut.Format(domain.DateFormat),
		Nights:   resp.Nights,
		Rooms:    make([]*AvailableRoomResponse, 0, len(resp.Rooms)),
	}

	for _, room := range resp.Rooms {
		amenities := room.Amenities
		if amenities == nil {
			amenities = []string{}
		}
		out.Rooms = append(out.Rooms, &AvailableRoomResponse{
			ID:          room.ID,
			Number:      room.Number,
			Type:        room.Type,
			Capacity:    room.Capacity,
			NightlyRate: room.NightlyRate,
			Floor:       room.Floor,
			Description: room.Description,
			Amenities:   amenities,
			TotalPrice:  room.TotalPrice,
		})
	}

	out.Total = len(out.Rooms)
	return out
}
