package models

// OperatorIdentity is the display identity returned on a successful login.
type OperatorIdentity struct {
	Role string `json:"role"`
	Name string `json:"name"`
}

// Stats summarizes the organization's activity counters.
type Stats struct {
	Members        int `json:"members"`
	Events         int `json:"events"`
	Messages       int `json:"messages"`
	GalleryItems   int `json:"gallery_items"`
	ImpactEstimate int `json:"impact_estimate"`
}
