package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shopcore/internal/rpc"
)

// /api/products の公開API
type ProductHandler struct {
	catalog CatalogClient
}

// DI
func NewProductHandler(catalog CatalogClient) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

type CreateProductRequest struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       looseDecimal `json:"price"`
	Stock       looseInt     `json:"stock"`
}

// 商品のルートを登録
func (h *ProductHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/products", h.list)
	g.GET("/products/:id", h.detail)
	g.POST("/products", h.create)
}

func (h *ProductHandler) list(c echo.Context) error {
	out, err := h.catalog.ListProducts(c.Request().Context(), &rpc.ListProductsRequest{
		Page:     queryInt(c.QueryParam("page")),
		PageSize: queryInt(c.QueryParam("page_size")),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	out, err := h.catalog.GetProduct(c.Request().Context(), &rpc.GetProductRequest{ID: c.Param("id")})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	out, err := h.catalog.CreateProduct(c.Request().Context(), &rpc.CreateProductRequest{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price.Decimal(),
		Stock:       clampInt32(int64(req.Stock)),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}
