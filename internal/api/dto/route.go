package dto

type OptimizeRouteRequest struct {
	Origin string   `json:"origin"`
	Stops  []string `json:"stops"`
}

type PointResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type StopResponse struct {
	Position   int           `json:"position"`
	InputIndex int           `json:"input_index"`
	Label      string        `json:"label"`
	Point      PointResponse `json:"point"`
}

type WaypointResponse struct {
	Label string        `json:"label"`
	Point PointResponse `json:"point"`
}

type SegmentResponse struct {
	Entries []WaypointResponse `json:"entries"`
	Link    string             `json:"link"`
}

type OptimizeRouteResponse struct {
	Origin          PointResponse     `json:"origin"`
	Stops           []StopResponse    `json:"stops"`
	Segments        []SegmentResponse `json:"segments"`
	TotalDistanceKm float64           `json:"total_distance_km"`
	Converged       bool              `json:"converged"`
}
