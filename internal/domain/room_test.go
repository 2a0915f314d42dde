package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoom_IsBookable(t *testing.T) {
	assert.True(t, (&Room{Status: RoomStatusAvailable}).IsBookable())
	assert.True(t, (&Room{Status: RoomStatusReserved}).IsBookable())
	assert.True(t, (&Room{Status: RoomStatusOccupied}).IsBookable())
	assert.False(t, (&Room{Status: RoomStatusMaintenance}).IsBookable())
}

func TestRoom_FitsGuests(t *testing.T) {
	room := &Room{Capacity: 2}

	assert.True(t, room.FitsGuests(1))
	assert.True(t, room.FitsGuests(2))
	assert.False(t, room.FitsGuests(3))
	assert.False(t, room.FitsGuests(0))
	assert.False(t, room.FitsGuests(-1))
}

func TestRoom_NeedsCleaning(t *testing.T) {
	assert.False(t, (&Room{IsClean: true}).NeedsCleaning())
	assert.True(t, (&Room{IsClean: false}).NeedsCleaning())
}

func TestValidRoomTypeAndStatus(t *testing.T) {
	assert.True(t, ValidRoomType("standard"))
	assert.True(t, ValidRoomType("executive"))
	assert.False(t, ValidRoomType("penthouse"))

	assert.True(t, ValidRoomStatus("reserved"))
	assert.False(t, ValidRoomStatus("closed"))
}
