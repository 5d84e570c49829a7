package catalog

import (
	"errors"
	"net/http"

	"shopdash/internal/domain"
	"shopdash/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/shops", h.CreateShop)
	protected.GET("/shops/mine", h.MyShops)
	protected.POST("/categories", h.CreateCategory)
	protected.GET("/categories", h.ListCategories)
}

// RegisterAdminRoutes mounts the super_admin surface. The group must already
// carry the SuperAdminOnly middleware.
func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/shops", h.AllShops)
}

func (h *Handler) CreateShop(c *gin.Context) {
	var req CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	shop, err := h.service.CreateShop(c.Request.Context(), c.GetString("user_id"), domain.Role(c.GetString("role")), req)
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "This role cannot register a shop")
			return
		}
		response.Error(c, http.StatusInternalServerError, "SHOP_CREATE_FAILED", "Failed to create shop")
		return
	}

	response.Success(c, http.StatusCreated, shop)
}

func (h *Handler) AllShops(c *gin.Context) {
	shops, err := h.service.AllShops(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "SHOP_LIST_FAILED", "Failed to list shops")
		return
	}

	response.Success(c, http.StatusOK, shops)
}

func (h *Handler) MyShops(c *gin.Context) {
	shops, err := h.service.MyShops(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "SHOP_LIST_FAILED", "Failed to list shops")
		return
	}

	response.Success(c, http.StatusOK, shops)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrShopNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Shop not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this shop")
		default:
			response.Error(c, http.StatusInternalServerError, "CATEGORY_CREATE_FAILED", "Failed to create category")
		}
		return
	}

	response.Success(c, http.StatusCreated, category)
}

func (h *Handler) ListCategories(c *gin.Context) {
	shopID := c.Query("shop")
	if shopID == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "shop query parameter is required")
		return
	}

	categories, err := h.service.ListCategories(c.Request.Context(), shopID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CATEGORY_LIST_FAILED", "Failed to list categories")
		return
	}

	response.Success(c, http.StatusOK, categories)
}
