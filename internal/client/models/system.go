package models

type Health struct {
	Status string `json:"status"`
	Env    string `json:"env,omitempty"`
	DB     string `json:"db,omitempty"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
