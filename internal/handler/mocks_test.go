package handler

import (
	"context"

	"github.com/Divyanshi070700/Undhyu-v.2-E-Comm/internal/model"
	"github.com/Divyanshi070700/Undhyu-v.2-E-Comm/internal/razorpay"
	"github.com/Divyanshi070700/Undhyu-v.2-E-Comm/internal/shiprocket"

	"github.com/stretchr/testify/mock"
)

// MockOrderService is a mock implementation of service.OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, userID string, req *model.OrderRequest) (*model.OrderResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderResponse), args.Error(1)
}

func (m *MockOrderService) CreateGuestOrder(ctx context.Context, req *model.GuestOrderRequest) (*model.OrderResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderResponse), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context, userID string) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) ListAllOrders(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) CreatePaymentOrder(ctx context.Context, amountMinor int64, currency string) (*razorpay.OrderResult, error) {
	args := m.Called(ctx, amountMinor, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*razorpay.OrderResult), args.Error(1)
}

func (m *MockOrderService) VerifyPayment(ctx context.Context, razorpayOrderID, paymentID, signature string) error {
	args := m.Called(ctx, razorpayOrderID, paymentID, signature)
	return args.Error(0)
}

func (m *MockOrderService) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	args := m.Called(ctx, body, signature)
	return args.Error(0)
}

func (m *MockOrderService) CreateShipment(ctx context.Context, orderID, userID string) (*model.Order, error) {
	args := m.Called(ctx, orderID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) TrackOrder(ctx context.Context, orderID, userID string) (*model.TrackingView, error) {
	args := m.Called(ctx, orderID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrackingView), args.Error(1)
}

func (m *MockOrderService) TrackGuestOrder(ctx context.Context, orderID string) (*model.TrackingView, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrackingView), args.Error(1)
}

func (m *MockOrderService) TrackShipment(ctx context.Context, awb string) (*shiprocket.TrackingStatus, error) {
	args := m.Called(ctx, awb)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shiprocket.TrackingStatus), args.Error(1)
}

func (m *MockOrderService) AdminUpdateStatus(ctx context.Context, orderID, status string) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

// MockCartService is a mock implementation of service.CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Add(ctx context.Context, userID string, req *model.CartAddRequest) error {
	args := m.Called(ctx, userID, req)
	return args.Error(0)
}

func (m *MockCartService) Get(ctx context.Context, userID string) (*model.CartResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartResponse), args.Error(1)
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, userID, entryID string, quantity int) error {
	args := m.Called(ctx, userID, entryID, quantity)
	return args.Error(0)
}

func (m *MockCartService) Remove(ctx context.Context, userID, entryID string) error {
	args := m.Called(ctx, userID, entryID)
	return args.Error(0)
}

func (m *MockCartService) Clear(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
