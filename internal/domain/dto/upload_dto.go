package dto

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type CategoryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type CategoriesResponse struct {
	Images []CategoryOption `json:"images"`
	Videos []CategoryOption `json:"videos"`
}
