package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jinzhu/copier"
	"golang.org/x/sync/singleflight"

	"marketplace-payout-api/internal/config"
	"marketplace-payout-api/internal/dal"
	"marketplace-payout-api/internal/dao"
	"marketplace-payout-api/internal/dto"
	"marketplace-payout-api/internal/fee"
	"marketplace-payout-api/internal/logger"
)

const (
	policyCacheKey = "fee_policy:active"
	policyCacheTTL = time.Minute
)

// FeeService quotes orders under the active policy. Policy loads are
// coalesced with singleflight and cached in redis; an invalid or missing
// persisted policy falls back to the built-in default.
type FeeService struct {
	policyDao *dao.PolicyDao
	group     singleflight.Group
}

func NewFeeService() *FeeService {
	return &FeeService{policyDao: dao.NewPolicyDao()}
}

func (s *FeeService) ActivePolicy(ctx context.Context) fee.Policy {
	if dal.RedisClient != nil {
		if raw, err := dal.RedisClient.Get(ctx, policyCacheKey).Result(); err == nil && raw != "" {
			var p fee.Policy
			if json.Unmarshal([]byte(raw), &p) == nil && p.Validate() == nil {
				return p
			}
		}
	}

	v, _, _ := s.group.Do(policyCacheKey, func() (interface{}, error) {
		row, err := s.policyDao.ActivePolicy()
		if err != nil {
			logger.Payout().Warnf("active policy load failed, using default: %v", err)
			return fee.DefaultPolicy(), nil
		}
		if row == nil {
			return fee.DefaultPolicy(), nil
		}
		p := row.ToPolicy()
		if verr := p.Validate(); verr != nil {
			logger.Payout().Warnf("active policy %d invalid, using default: %v", row.Version, verr)
			return fee.DefaultPolicy(), nil
		}
		if dal.RedisClient != nil {
			if b, merr := json.Marshal(p); merr == nil {
				dal.RedisClient.Set(ctx, policyCacheKey, b, policyCacheTTL)
			}
		}
		return p, nil
	})
	return v.(fee.Policy)
}

// Quote prices a base amount without persisting anything.
func (s *FeeService) Quote(ctx context.Context, req dto.FeeQuoteReq) (dto.FeeQuoteResp, error) {
	p := s.ActivePolicy(ctx)
	res, err := fee.Calculate(req.Amount, fee.Gateway(req.Gateway), fee.Method(req.Method), p)
	if err != nil {
		return dto.FeeQuoteResp{}, err
	}
	var out dto.FeeQuoteResp
	_ = copier.Copy(&out, &res)
	out.Currency = config.C.Payout.Currency
	out.PolicyVersion = p.Version
	return out, nil
}
