package domain

import (
	"errors"
)

var (
	MessageSuccessGetPaymentMethods   = "payment methods retrieved successfully"
	MessageSuccessUpdatePaymentMethod = "payment method updated successfully"
	MessageSuccessGetContentPage      = "content retrieved successfully"
	MessageSuccessUpdateContentPage   = "content updated successfully"

	MessageFailedGetPaymentMethods   = "failed to retrieve payment methods"
	MessageFailedUpdatePaymentMethod = "failed to update payment method"
	MessageFailedGetContentPage      = "failed to retrieve content"
	MessageFailedUpdateContentPage   = "failed to update content"

	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrContentPageNotFound   = errors.New("content page not found")
)

type (
	UpdatePaymentMethodRequest struct {
		Name        string `json:"name" validate:"required"`
		Icon        string `json:"icon"`
		Info        string `json:"info"`
		Account     string `json:"account"`
		AccountName string `json:"accountName"`
		Wallet      string `json:"wallet"`
		WalletName  string `json:"walletName"`
	}

	UpdateContentPageRequest struct {
		Data string `json:"data" validate:"required"`
	}
)
