package domain

import (
	"errors"
)

var (
	MessageSuccessCreateOrder       = "order created successfully"
	MessageSuccessGetOrders         = "orders retrieved successfully"
	MessageSuccessGetOrder          = "order retrieved successfully"
	MessageSuccessUpdateOrderStatus = "order status updated successfully"

	MessageFailedCreateOrder       = "failed to create order"
	MessageFailedGetOrders         = "failed to retrieve orders"
	MessageFailedGetOrder          = "failed to retrieve order"
	MessageFailedUpdateOrderStatus = "failed to update order status"

	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

type (
	// ProductName and Price are the buyer-visible snapshot of the
	// selected package, carried on the order so catalog edits never
	// rewrite purchase history.
	CreateOrderRequest struct {
		UserID            string `json:"userId" validate:"required"`
		ProductID         string `json:"productId" validate:"required"`
		ProductName       string `json:"productName" validate:"required"`
		Price             int    `json:"price" validate:"required"`
		SelectedPackage   string `json:"selectedPackage"`
		PaymentMethod     string `json:"paymentMethod" validate:"required"`
		PaymentProofImage string `json:"paymentProofImage"`
		UserPhone         string `json:"userPhone" validate:"required"`
		UserGameID        string `json:"userGameId" validate:"required"`
		Status            string `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
	}

	UpdateOrderStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=pending completed cancelled"`
	}
)
