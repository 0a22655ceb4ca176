package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"shopcore/internal/rpc"
)

// /api/cart のHTTP
type CartHandler struct {
	cart   CartClient
	orders OrderClient
	log    *slog.Logger
}

// DI
func NewCartHandler(cart CartClient, orders OrderClient, log *slog.Logger) *CartHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CartHandler{cart: cart, orders: orders, log: log}
}

type AddCartItemRequest struct {
	ProductID string   `json:"product_id"`
	Quantity  looseInt `json:"quantity"`
}

// /api/cart/:userId 以下を登録
func (h *CartHandler) RegisterRoutes(g *echo.Group) {
	cg := g.Group("/cart/:userId")
	cg.GET("", h.getCart)
	cg.DELETE("", h.clearCart)
	cg.POST("/items", h.addItem)
	cg.DELETE("/items/:productId", h.removeItem)
	cg.POST("/checkout", h.checkout)
}

func (h *CartHandler) getCart(c echo.Context) error {
	out, err := h.cart.GetCart(c.Request().Context(), &rpc.GetCartRequest{UserID: c.Param("userId")})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) addItem(c echo.Context) error {
	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	// 0以下や不正値はcart側で1になる
	out, err := h.cart.AddItem(c.Request().Context(), &rpc.AddItemRequest{
		UserID:    c.Param("userId"),
		ProductID: req.ProductID,
		Quantity:  clampInt32(int64(req.Quantity)),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) removeItem(c echo.Context) error {
	out, err := h.cart.RemoveItem(c.Request().Context(), &rpc.RemoveItemRequest{
		UserID:    c.Param("userId"),
		ProductID: c.Param("productId"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) clearCart(c echo.Context) error {
	out, err := h.cart.ClearCart(c.Request().Context(), &rpc.ClearCartRequest{UserID: c.Param("userId")})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// checkout はカートの中身で注文を作り、カートを空にする。
// 注文作成後のクリア失敗はログのみ（注文は確定済み）。
func (h *CartHandler) checkout(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Param("userId")

	cart, err := h.cart.GetCart(ctx, &rpc.GetCartRequest{UserID: userID})
	if err != nil {
		return writeError(c, err)
	}
	if len(cart.Items) == 0 {
		return badRequest(c, "cart is empty")
	}

	order, err := h.orders.CreateOrder(ctx, &rpc.CreateOrderRequest{
		UserID: cart.UserID,
		Items:  cart.Items,
		Total:  cart.Total,
	})
	if err != nil {
		return writeError(c, err)
	}

	if _, err := h.cart.ClearCart(ctx, &rpc.ClearCartRequest{UserID: userID}); err != nil {
		h.log.WarnContext(ctx, "clear cart after checkout failed",
			slog.String("user_id", userID),
			slog.String("order_id", order.ID),
			slog.Any("err", err),
		)
	}

	return c.JSON(http.StatusCreated, order)
}
