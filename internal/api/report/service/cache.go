package reportService

import (
	"ReceiptTracker/internal/api/report"
	contextPkg "ReceiptTracker/pkg/context"
	"context"

	"github.com/sirupsen/logrus"
)

// cached fills dest from the cache or, on a miss, from load. The key is
// scoped to the user's current generation, read before load runs, so a
// result raced by a mutation is written under a generation nobody reads.
// Cache errors fall through to load.
func (s *reportService) cached(ctx context.Context, userID int64, kind string, dest interface{}, load func() error) error {
	if s.cache == nil {
		return load()
	}
	requestID := contextPkg.GetRequestID(ctx)

	var generation int64
	if _, err := s.cache.GetJSON(ctx, report.GenerationKey(userID), &generation); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Report cache generation read failed")
		return load()
	}
	key := report.CacheKey(userID, generation, kind)

	hit, err := s.cache.GetJSON(ctx, key, dest)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"key":        key,
			"error":      err.Error(),
		}).Warn("Report cache read failed")
	}
	if hit {
		return nil
	}

	if err := load(); err != nil {
		return err
	}

	if err := s.cache.SetJSON(ctx, key, dest, s.ttl); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"key":        key,
			"error":      err.Error(),
		}).Warn("Report cache write failed")
	}

	return nil
}
