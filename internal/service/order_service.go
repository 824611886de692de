package service

import (
	"context"
	"time"

	"github.com/jinzhu/copier"

	"marketplace-payout-api/internal/config"
	"marketplace-payout-api/internal/constant"
	"marketplace-payout-api/internal/dao"
	"marketplace-payout-api/internal/dto"
	"marketplace-payout-api/internal/fee"
	"marketplace-payout-api/internal/idgen"
	"marketplace-payout-api/internal/logger"
	"marketplace-payout-api/internal/model"
	"marketplace-payout-api/internal/mq"
)

// OrderService prices orders at checkout and turns completed orders into
// pending payouts.
type OrderService struct {
	orderDao  *dao.OrderDao
	payoutDao *dao.PayoutDao
	sellerDao *dao.SellerDao
	feeSvc    *FeeService
}

func NewOrderService() *OrderService {
	return &OrderService{
		orderDao:  dao.NewOrderDao(),
		payoutDao: dao.NewPayoutDao(),
		sellerDao: dao.NewSellerDao(),
		feeSvc:    NewFeeService(),
	}
}

// Create prices the order under the active policy and persists it with the
// frozen fee snapshot. Fee validation errors reject the request before any
// row is written.
func (s *OrderService) Create(ctx context.Context, req dto.CreateOrderReq) (dto.CreateOrderResp, error) {
	var resp dto.CreateOrderResp

	seller, err := s.sellerDao.GetSeller(req.SellerID)
	if err != nil {
		return resp, err
	}
	if seller == nil || seller.Status != 1 {
		return resp, constant.NewError(constant.CodeSellerNotFound)
	}

	policy := s.feeSvc.ActivePolicy(ctx)
	result, err := fee.Calculate(req.Amount, fee.Gateway(req.Gateway), fee.Method(req.Method), policy)
	if err != nil {
		return resp, err
	}

	var snapshot model.FeeSnapshot
	_ = copier.Copy(&snapshot, &result)
	snapshot.PolicyVersion = policy.Version

	order := &model.Order{
		OrderID:     idgen.NewFrom("order"),
		BuyerID:     req.BuyerID,
		SellerID:    req.SellerID,
		Title:       req.Title,
		BaseAmount:  req.Amount,
		Currency:    config.C.Payout.Currency,
		Gateway:     req.Gateway,
		Method:      req.Method,
		Status:      model.OrderStatusEscrowed,
		FeeSnapshot: snapshot,
	}
	if err := s.orderDao.Insert(order); err != nil {
		return resp, err
	}

	resp.OrderID = order.OrderID
	resp.Currency = order.Currency
	_ = copier.Copy(&resp.Fees, &result)
	resp.Fees.Currency = order.Currency
	resp.Fees.PolicyVersion = policy.Version
	return resp, nil
}

// Complete marks the order delivered and creates the seller payout PENDING
// with availableAt pushed out by the policy's reserve period. The status CAS
// on the order makes this idempotent: a replayed completion creates nothing.
func (s *OrderService) Complete(ctx context.Context, orderID uint64) (dto.CompleteOrderResp, error) {
	var resp dto.CompleteOrderResp

	order, err := s.orderDao.GetByID(orderID)
	if err != nil {
		return resp, err
	}
	if order == nil {
		return resp, constant.NewError(constant.CodeOrderNotFound)
	}

	now := time.Now()
	ok, err := s.orderDao.MarkCompleted(orderID, now)
	if err != nil {
		return resp, err
	}
	if !ok {
		return resp, constant.NewError(constant.CodeOrderStatusInvalid)
	}

	policy := s.feeSvc.ActivePolicy(ctx)
	availableAt := now.AddDate(0, 0, policy.ReserveDays)
	payout := &model.Payout{
		PayoutID:    idgen.NewFrom("payout"),
		SellerID:    order.SellerID,
		OrderID:     &order.OrderID,
		Amount:      order.FeeSnapshot.SellerPayoutAmount,
		Currency:    order.Currency,
		Status:      model.PayoutStatusPending,
		AvailableAt: availableAt,
	}
	if err := s.payoutDao.Insert(payout); err != nil {
		return resp, err
	}
	if err := s.sellerDao.AdjustBalance(order.SellerID, 0, payout.Amount); err != nil {
		logger.Payout().Errorf("order %d: pending balance credit for seller %d failed: %v", orderID, order.SellerID, err)
	}

	mq.PublishPayoutCreated(mq.PayoutStatusEvent{
		PayoutID: payout.PayoutID,
		SellerID: payout.SellerID,
		Amount:   payout.Amount,
		Currency: payout.Currency,
		At:       now.Unix(),
	})

	resp.OrderID = orderID
	resp.PayoutID = payout.PayoutID
	resp.Amount = payout.Amount
	resp.AvailableAt = availableAt
	return resp, nil
}
