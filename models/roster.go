package models

// RosterEntry is one authorized employee. The roster is static reference
// data; submissions are checked against it before they go anywhere.
type RosterEntry struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	EmpCode string `json:"empCode"`
	Site    string `json:"site"`
}

// OfficeLocation is one known office coordinate used for geofencing.
type OfficeLocation struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}
