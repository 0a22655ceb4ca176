package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shopcore/internal/rpc"
)

// /api/orders のHTTP
type OrderHandler struct {
	orders OrderClient
}

// DI
func NewOrderHandler(orders OrderClient) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type OrderItemRequest struct {
	ProductID   string       `json:"product_id"`
	ProductName string       `json:"product_name"`
	Quantity    looseInt     `json:"quantity"`
	UnitPrice   looseDecimal `json:"unit_price"`
}

type CreateOrderRequest struct {
	UserID string             `json:"user_id"`
	Items  []OrderItemRequest `json:"items"`
	Total  looseDecimal       `json:"total"`
}

func (h *OrderHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/orders", h.create)
	g.GET("/orders/:id", h.detail)
	g.GET("/orders/user/:userId", h.listByUser)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	items := make([]rpc.Item, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, rpc.Item{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    clampInt32(int64(it.Quantity)),
			UnitPrice:   it.UnitPrice.Decimal(),
		})
	}

	out, err := h.orders.CreateOrder(c.Request().Context(), &rpc.CreateOrderRequest{
		UserID: req.UserID,
		Items:  items,
		Total:  req.Total.Decimal(),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	out, err := h.orders.GetOrder(c.Request().Context(), &rpc.GetOrderRequest{ID: c.Param("id")})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) listByUser(c echo.Context) error {
	out, err := h.orders.ListOrdersByUser(c.Request().Context(), &rpc.ListOrdersByUserRequest{
		UserID:   c.Param("userId"),
		Page:     queryInt(c.QueryParam("page")),
		PageSize: queryInt(c.QueryParam("page_size")),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
