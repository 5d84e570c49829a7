package catalog

type CreateShopRequest struct {
	Name string `json:"name" binding:"required,min=2"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2"`
	Shop string `json:"shop" binding:"required"`
}
