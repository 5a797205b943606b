package content

import (
	"context"
	"errors"

	"topup-store/domain"
	"topup-store/entities"
	"topup-store/pkg/store"
)

type (
	// ContentService serves payment-method instruction blocks and static
	// page content. The database tables are the single source of truth.
	ContentService interface {
		GetPaymentMethods(ctx context.Context) ([]entities.PaymentMethod, error)
		UpdatePaymentMethod(ctx context.Context, id string, req domain.UpdatePaymentMethodRequest) (*entities.PaymentMethod, error)
		GetContentPage(ctx context.Context, section string) (*entities.ContentPage, error)
		UpdateContentPage(ctx context.Context, section string, req domain.UpdateContentPageRequest) (*entities.ContentPage, error)
	}

	contentService struct {
		store store.Store
	}
)

func NewContentService(st store.Store) ContentService {
	return &contentService{
		store: st,
	}
}

func (s *contentService) GetPaymentMethods(ctx context.Context) ([]entities.PaymentMethod, error) {
	return s.store.GetPaymentMethods(ctx)
}

func (s *contentService) UpdatePaymentMethod(ctx context.Context, id string, req domain.UpdatePaymentMethodRequest) (*entities.PaymentMethod, error) {
	method, err := s.store.GetPaymentMethod(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrPaymentMethodNotFound
		}
		return nil, err
	}

	method.Name = req.Name
	method.Icon = req.Icon
	method.Info = req.Info
	method.Account = req.Account
	method.AccountName = req.AccountName
	method.Wallet = req.Wallet
	method.WalletName = req.WalletName

	if err := s.store.UpdatePaymentMethod(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

func (s *contentService) GetContentPage(ctx context.Context, section string) (*entities.ContentPage, error) {
	page, err := s.store.GetContentPage(ctx, section)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrContentPageNotFound
		}
		return nil, err
	}
	return page, nil
}

func (s *contentService) UpdateContentPage(ctx context.Context, section string, req domain.UpdateContentPageRequest) (*entities.ContentPage, error) {
	page := &entities.ContentPage{
		Section: section,
		Data:    req.Data,
	}
	if err := s.store.UpsertContentPage(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}
