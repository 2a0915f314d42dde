package set_user_enabled

// Request toggles an account on or off.
type Request struct {
	Enabled bool `json:"enabled"`
}
