package models

// OccupancyReport measures how full the hotel was over a period. Room
// nights are counted over the half-open period [startDate, endDate).
type OccupancyReport struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	TotalRooms         int     `json:"totalRooms"`
	AvailableRoomNight int     `json:"availableRoomNights"`
	OccupiedRoomNights int     `json:"occupiedRoomNights"`
	OccupancyRate      float64 `json:"occupancyRate"` // 0..1

	ByRoomType map[string]*OccupancyByType `json:"byRoomType"`
}

// OccupancyByType is the per-room-type occupancy breakdown.
type OccupancyByType struct {
	Rooms              int     `json:"rooms"`
	OccupiedRoomNights int     `json:"occupiedRoomNights"`
	OccupancyRate      float64 `json:"occupancyRate"`
}

// RevenueReport sums booking revenue over a period. A booking belongs to
// the period of its check-in date, only paid bookings count as revenue.
type RevenueReport struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	TotalRevenue      float64 `json:"totalRevenue"`
	PaidBookings      int     `json:"paidBookings"`
	UnpaidBookings    int     `json:"unpaidBookings"`
	AveragePerBooking float64 `json:"averagePerBooking"`

	ByRoomType      map[string]float64 `json:"byRoomType"`
	ByPaymentMethod map[string]float64 `json:"byPaymentMethod"`
}

// MaintenanceReport counts the maintenance workload created over a period.
type MaintenanceReport struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	TotalRequests int            `json:"totalRequests"`
	ByStatus      map[string]int `json:"byStatus"`
	ByIssueType   map[string]int `json:"byIssueType"`
	ByPriority    map[string]int `json:"byPriority"`
	Overdue       int            `json:"overdue"`

	// AverageResolutionHours covers completed requests only.
	AverageResolutionHours float64 `json:"averageResolutionHours"`
}

// DailySummary is the front-desk snapshot for one day.
type DailySummary struct {
	Date string `json:"date"`

	Arrivals   int `json:"arrivals"`
	Departures int `json:"departures"`

	TotalRooms     int `json:"totalRooms"`
	AvailableRooms int `json:"availableRooms"`
	OccupiedRooms  int `json:"occupiedRooms"`
	RoomsToClean   int `json:"roomsToClean"`

	OpenMaintenanceRequests         int `json:"openMaintenanceRequests"`
	HighPriorityMaintenanceRequests int `json:"highPriorityMaintenanceRequests"`
	OverdueMaintenanceRequests      int `json:"overdueMaintenanceRequests"`
}
