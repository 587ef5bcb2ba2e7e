package report

import (
	"ReceiptTracker/internal/entity"
	"ReceiptTracker/pkg/redis"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	KindCategories     = "categories"
	KindCompare        = "compare"
	KindCategoryTotals = "transaction_categories"
)

// UserCachePrefix is the prefix shared by every cached report of a user.
// The trailing separator keeps user 1 from matching user 10.
func UserCachePrefix(userID int64) string {
	return fmt.Sprintf("report:%d:", userID)
}

// GenerationKey holds the counter bumped on every mutation of a user's
// data. It lives outside UserCachePrefix so prefix deletes keep it.
func GenerationKey(userID int64) string {
	return fmt.Sprintf("report-gen:%d", userID)
}

// CacheKey scopes a report to the generation it was computed under. A
// result loaded before a mutation lands under the old generation, which
// readers no longer consult.
func CacheKey(userID, generation int64, kind string) string {
	return fmt.Sprintf("%s%d:%s", UserCachePrefix(userID), generation, kind)
}

func TransactionKind(transactionID int64) string {
	return fmt.Sprintf("%s:%d", KindCategoryTotals, transactionID)
}

func CompareKind(r entity.DateRange) string {
	if r.IsZero() {
		return KindCompare
	}
	return KindCompare + ":" + r.Key()
}

// InvalidateUser moves the user to a new cache generation and drops the
// cached reports of the old ones. Failures only cost freshness until the
// TTL expires, so they are logged.
func InvalidateUser(ctx context.Context, cache redis.IRedis, log *logrus.Logger, requestID string, userID int64) {
	if cache == nil {
		return
	}
	if _, err := cache.Incr(ctx, GenerationKey(userID)); err != nil {
		log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Failed to bump report cache generation")
	}
	if err := cache.DeleteByPrefix(ctx, UserCachePrefix(userID)); err != nil {
		log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Failed to invalidate report cache")
	}
}
