package controllers

import (
	"errors"
	"net/http"

	"github.com/jibrilosman/self-order-kiosk/pkg/resp"
	"github.com/jibrilosman/self-order-kiosk/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
	// Strict answers validation failures with 400 instead of 200.
	Strict bool
}

func NewOrderController(orders *services.OrderService, strict bool) *OrderController {
	return &OrderController{Orders: orders, Strict: strict}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		oc.dataRequired(c)
		return
	}

	order, err := oc.Orders.Create(c.Request.Context(), &req)
	if errors.Is(err, services.ErrDataRequired) {
		oc.dataRequired(c)
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

func (oc *OrderController) dataRequired(c *gin.Context) {
	code := http.StatusOK
	if oc.Strict {
		code = http.StatusBadRequest
	}
	resp.Message(c, code, services.ErrDataRequired.Error())
}

// GET /orders
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.Orders.ListActive(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/all
func (oc *OrderController) ListAll(c *gin.Context) {
	orders, err := oc.Orders.ListAll(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	order, err := oc.Orders.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrOrderNotFound) {
		resp.NotFound(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

type UpdateOrderReq struct {
	Action string `json:"action"`
}

// PUT /orders/:id  {action: ready|deliver|cancel}
func (oc *OrderController) Update(c *gin.Context) {
	var req UpdateOrderReq
	// a missing body is an unknown action, which is still a successful save
	_ = c.ShouldBindJSON(&req)

	_, err := oc.Orders.ApplyAction(c.Request.Context(), c.Param("id"), services.OrderAction(req.Action))
	if errors.Is(err, services.ErrOrderNotFound) {
		resp.NotFound(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "Done")
}
