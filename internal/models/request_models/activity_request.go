package request_models

type CreateActivityRequest struct {
	Name        string            `json:"name" binding:"required"`
	Description string            `json:"description" binding:"required"`
	Category    string            `json:"category" binding:"required,oneof=fun hikes food entertainment sports cultural"`
	Address     string            `json:"address" binding:"required"`
	Rating      float64           `json:"rating" binding:"omitempty,min=0,max=5"`
	PriceRange  string            `json:"priceRange" binding:"omitempty,oneof=$ $$ $$$ $$$$"`
	Images      []string          `json:"images"`
	Website     string            `json:"website"`
	Phone       string            `json:"phone"`
	Hours       map[string]string `json:"hours"`
}
