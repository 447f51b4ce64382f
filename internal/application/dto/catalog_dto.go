package dto

// CreateBrandRequest is the body of POST /brands
type CreateBrandRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Industry    string `json:"industry"`
	ToneOfVoice string `json:"tone_of_voice"`
}

// UpdateBrandRequest is the body of PUT /brands/:id; omitted fields are
// left unchanged
type UpdateBrandRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Industry    *string `json:"industry"`
	ToneOfVoice *string `json:"tone_of_voice"`
}

// CreateProductRequest is the body of POST /brands/:id/products
type CreateProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       string `json:"price"`
}

// UpdateProductRequest is the body of PUT /products/:id
type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Price       *string `json:"price"`
}
