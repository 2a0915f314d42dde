package set_room_status

// Request sets the room's operational status.
type Request struct {
	Status string `json:"status"`
}
