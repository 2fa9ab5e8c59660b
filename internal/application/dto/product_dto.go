package dto

// ProductResponse one catalog entry, priced for the requesting user.
// Price is the base (MRP) amount; YourPrice applies the caller's discount
// tier and Savings is the difference.
type ProductResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PartNumber string `json:"part_number"`
	Category   string `json:"category"`
	Brand      string `json:"brand"`
	Price      int64  `json:"price"`
	YourPrice  int64  `json:"your_price"`
	Savings    int64  `json:"savings"`
	Stock      int    `json:"stock"`
}

// ProductListResponse catalog listing.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}

// BrandListResponse dropdown values for the brand filter.
type BrandListResponse struct {
	Brands []string `json:"brands"`
}
