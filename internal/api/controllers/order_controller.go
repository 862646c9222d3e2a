package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"promptmart/internal/models/db_models"
	"promptmart/internal/models/request_models"
	"promptmart/internal/models/response_models"
	"promptmart/internal/services"
	"promptmart/pkg/utils"
)

type OrderController struct {
	orderService services.OrderServiceInterface
}

func NewOrderController(orderService services.OrderServiceInterface) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

// CreateOrder godoc
// @Summary Create a pending order for a prompt
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body request_models.CreateOrderRequest true "Order payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /orders [post]
func (ct *OrderController) CreateOrder(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	order, err := ct.orderService.CreateOrder(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, order, "Order created successfully")
}

// ListMyOrders godoc
// @Summary List the caller's orders, newest first
// @Tags Orders
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /orders [get]
func (ct *OrderController) ListMyOrders(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	orders, err := ct.orderService.ListMyOrders(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, orders, "Orders fetched successfully")
}

// GetOrder godoc
// @Summary Get order detail (buyer or admin)
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /orders/{id} [get]
func (ct *OrderController) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	caller, ok := callerID(c)
	if !ok {
		return
	}

	detail, err := ct.orderService.GetOrderDetail(c.Request.Context(), id, caller, c.GetString("role"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Order fetched successfully")
}

// CreatePayment godoc
// @Summary Attach a payment to an order
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body request_models.CreatePaymentRequest true "Payment payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /orders/{id}/payments [post]
func (ct *OrderController) CreatePayment(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	payment, err := ct.orderService.CreatePayment(c.Request.Context(), orderID, caller, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, payment, "Payment created successfully")
}

// UpdateOrderStatus godoc
// @Summary Override an order's status (admin)
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body request_models.UpdateOrderStatusRequest true "Status payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /orders/{id}/status [put]
func (ct *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	order, err := ct.orderService.UpdateOrderStatus(c.Request.Context(), orderID, db_models.OrderStatus(req.Status))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, order, "Order status updated successfully")
}

// UpdatePaymentStatus godoc
// @Summary Settle a payment and derive the order status (admin)
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param request body request_models.UpdatePaymentStatusRequest true "Status payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/{id}/status [put]
func (ct *OrderController) UpdatePaymentStatus(c *gin.Context) {
	paymentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	payment, err := ct.orderService.UpdatePaymentStatus(c.Request.Context(), paymentID, db_models.PaymentStatus(req.Status))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, payment, "Payment status updated successfully")
}

// CheckPurchase godoc
// @Summary Check whether the caller has a paid order for a prompt
// @Tags Orders
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reviews/check-purchase/{id} [get]
func (ct *OrderController) CheckPurchase(c *gin.Context) {
	promptID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	caller, ok := callerID(c)
	if !ok {
		return
	}

	purchased, err := ct.orderService.HasPurchased(c.Request.Context(), caller, promptID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.PurchaseCheckResponse{HasPurchased: purchased}, "Purchase check completed")
}
