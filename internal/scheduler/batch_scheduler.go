// Package scheduler runs the periodic payout batch job.
package scheduler

import (
	"context"
	"time"

	"marketplace-payout-api/internal/dal"
	"marketplace-payout-api/internal/logger"
	"marketplace-payout-api/internal/service"
)

const batchLockKey = "payout:batch_lock"

// BatchScheduler invokes CreateBatch on an interval. A redis lock keeps
// multiple instances from starting overlapping runs; correctness does not
// depend on it, since each payout claim is a conditional update.
type BatchScheduler struct {
	svc      *service.PayoutBatchService
	interval time.Duration
}

func NewBatchScheduler(svc *service.PayoutBatchService, interval time.Duration) *BatchScheduler {
	return &BatchScheduler{svc: svc, interval: interval}
}

func (s *BatchScheduler) Run(ctx context.Context) {
	log := logger.Payout()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.acquireLock(ctx) {
				continue
			}
			batch, err := s.svc.CreateBatch(ctx)
			if err != nil {
				log.Errorf("scheduled batch run failed: %v", err)
				continue
			}
			if batch == nil {
				log.Debug("scheduled batch run: nothing eligible")
				continue
			}
			log.Infof("scheduled batch %d created with %d items", batch.BatchID, len(batch.Items))
		}
	}
}

func (s *BatchScheduler) acquireLock(ctx context.Context) bool {
	if dal.RedisClient == nil {
		return true
	}
	ok, err := dal.RedisClient.SetNX(ctx, batchLockKey, 1, s.interval/2).Result()
	if err != nil {
		logger.Payout().Warnf("batch lock failed, proceeding unlocked: %v", err)
		return true
	}
	return ok
}
