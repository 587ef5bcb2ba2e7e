package reportService

import (
	"ReceiptTracker/internal/api/report"
	reportRepository "ReceiptTracker/internal/api/report/repository"
	"ReceiptTracker/internal/api/transaction"
	"ReceiptTracker/internal/api/user"
	"ReceiptTracker/internal/entity"
	"ReceiptTracker/internal/ownership"
	"ReceiptTracker/internal/ownership/ownershiptest"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReports struct {
	userTotals        []entity.CategoryTotal
	rangeTotals       []entity.CategoryTotal
	transactionTotals []entity.CategoryTotal
	limits            *entity.BudgetLimits
	err               error
	calls             int
	ranges            []entity.DateRange
	afterLoad         func()
}

func (f *fakeReports) GetCategoryTotalsByUserID(context.Context, int64) ([]entity.CategoryTotal, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	totals := f.userTotals
	if f.afterLoad != nil {
		f.afterLoad()
	}
	return totals, nil
}

func (f *fakeReports) GetCategoryTotalsByUserIDInRange(_ context.Context, _ int64, from, to time.Time) ([]entity.CategoryTotal, error) {
	f.calls++
	f.ranges = append(f.ranges, entity.DateRange{From: from, To: to})
	return f.rangeTotals, nil
}

func (f *fakeReports) GetCategoryTotalsByTransactionID(context.Context, int64) ([]entity.CategoryTotal, error) {
	f.calls++
	return f.transactionTotals, nil
}

func (f *fakeReports) GetBudgetLimitsByUserID(context.Context, int64) (entity.BudgetLimits, error) {
	f.calls++
	if f.limits == nil {
		return entity.BudgetLimits{}, report.ErrBudgetNotFound
	}
	return *f.limits, nil
}

type fakeRepository struct {
	reports   *fakeReports
	ownership *ownershiptest.Checker
}

func (f *fakeRepository) NewClient(_ context.Context, _ bool) (reportRepository.Client, error) {
	return reportRepository.Client{
		Report:    f.reports,
		Ownership: f.ownership,
		Commit:    func() error { return nil },
		Rollback:  func() error { return nil },
	}, nil
}

type memoryCache struct {
	entries map[string][]byte
	getErr  error
}

func (c *memoryCache) GetJSON(_ context.Context, key string, dest interface{}) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, jsoniter.Unmarshal(raw, dest)
}

func (c *memoryCache) SetJSON(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := jsoniter.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *memoryCache) Incr(_ context.Context, key string) (int64, error) {
	var n int64
	if raw, ok := c.entries[key]; ok {
		if err := jsoniter.Unmarshal(raw, &n); err != nil {
			return 0, err
		}
	}
	n++
	c.entries[key] = []byte(strconv.FormatInt(n, 10))
	return n, nil
}

func (c *memoryCache) DeleteByPrefix(_ context.Context, prefix string) error {
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	return nil
}

func (c *memoryCache) Close() error {
	return nil
}

func newFixture(checker *ownershiptest.Checker) (*fakeRepository, *memoryCache, IReportService) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	repo := &fakeRepository{reports: &fakeReports{}, ownership: checker}
	cache := &memoryCache{entries: map[string][]byte{}}
	return repo, cache, NewReportService(log, repo, cache, time.Minute)
}

func amount(v int64) *int64 {
	return &v
}

func TestGetCategorizedSpend(t *testing.T) {
	repo, _, svc := newFixture(ownershiptest.Owned(1, 0))
	repo.reports.userTotals = []entity.CategoryTotal{
		{Category: entity.CategoryPets, Total: 40},
		{Category: entity.CategoryGroceries, Total: 300},
	}

	got, err := svc.GetCategorizedSpend(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []report.CategoryTotalResponse{
		{Category: "Pets", Total: 40},
		{Category: "Groceries", Total: 300},
	}, got)
	assert.Equal(t, []ownership.Chain{ownership.ForUser(1)}, repo.ownership.Chains)
}

func TestGetCategorizedSpendEmpty(t *testing.T) {
	_, _, svc := newFixture(ownershiptest.Owned(1, 0))

	got, err := svc.GetCategorizedSpend(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetCategorizedSpendServedFromCache(t *testing.T) {
	repo, _, svc := newFixture(ownershiptest.Owned(1, 0))
	repo.reports.userTotals = []entity.CategoryTotal{{Category: entity.CategoryTravel, Total: 900}}

	first, err := svc.GetCategorizedSpend(context.Background(), 1)
	require.NoError(t, err)
	second, err := svc.GetCategorizedSpend(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.reports.calls)
}

func TestCacheReadFailureFallsBackToDatabase(t *testing.T) {
	repo, cache, svc := newFixture(ownershiptest.Owned(1, 0))
	cache.getErr = errors.New("connection refused")
	repo.reports.userTotals = []entity.CategoryTotal{{Category: entity.CategoryOther, Total: 5}}

	got, err := svc.GetCategorizedSpend(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Empty(t, cache.entries)
}

func TestMutationDuringLoadIsNotServedStale(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	repo, cache, svc := newFixture(ownershiptest.Owned(1, 0))
	repo.reports.userTotals = []entity.CategoryTotal{{Category: entity.CategoryPets, Total: 40}}
	repo.reports.afterLoad = func() {
		repo.reports.afterLoad = nil
		repo.reports.userTotals = []entity.CategoryTotal{{Category: entity.CategoryPets, Total: 90}}
		report.InvalidateUser(context.Background(), cache, log, "req", 1)
	}

	stale, err := svc.GetCategorizedSpend(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(40), stale[0].Total)

	fresh, err := svc.GetCategorizedSpend(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []report.CategoryTotalResponse{{Category: "Pets", Total: 90}}, fresh)
	assert.Equal(t, 2, repo.reports.calls)

	again, err := svc.GetCategorizedSpend(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, fresh, again)
	assert.Equal(t, 2, repo.reports.calls)
}

func TestInvalidationForcesReload(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	repo, cache, svc := newFixture(ownershiptest.Owned(1, 0))
	repo.reports.userTotals = []entity.CategoryTotal{{Category: entity.CategoryTravel, Total: 900}}

	_, err := svc.GetCategorizedSpend(context.Background(), 1)
	require.NoError(t, err)
	report.InvalidateUser(context.Background(), cache, log, "req", 1)
	_, err = svc.GetCategorizedSpend(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 2, repo.reports.calls)
	assert.Contains(t, cache.entries, report.CacheKey(1, 1, report.KindCategories))
	assert.NotContains(t, cache.entries, report.CacheKey(1, 0, report.KindCategories))
}

func TestGetCategorizedSpendUnknownUser(t *testing.T) {
	_, _, svc := newFixture(ownershiptest.Missing())

	_, err := svc.GetCategorizedSpend(context.Background(), 7)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestGetTransactionCategoryTotals(t *testing.T) {
	repo, cache, svc := newFixture(ownershiptest.Owned(1, 0))
	repo.reports.transactionTotals = []entity.CategoryTotal{
		{Category: entity.CategoryElectronics, Total: 1200},
		{Category: entity.CategoryGroceries, Total: 80},
	}

	got, err := svc.GetTransactionCategoryTotals(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, report.CategoryTotalsResponse{"Electronics": 1200, "Groceries": 80}, got)
	assert.Equal(t, []ownership.Chain{ownership.ForTransaction(1, 3)}, repo.ownership.Chains)
	assert.Contains(t, cache.entries, report.CacheKey(1, 0, report.TransactionKind(3)))
}

func TestGetTransactionCategoryTotalsForeignTransaction(t *testing.T) {
	_, _, svc := newFixture(ownershiptest.Owned(2, 0))

	_, err := svc.GetTransactionCategoryTotals(context.Background(), 1, 3)
	assert.ErrorIs(t, err, transaction.ErrTransactionNotOwned)
}

func TestCompareBudget(t *testing.T) {
	repo, _, svc := newFixture(ownershiptest.Owned(1, 0))
	repo.reports.limits = &entity.BudgetLimits{
		Groceries: amount(500),
		Pets:      amount(0),
	}
	repo.reports.userTotals = []entity.CategoryTotal{
		{Category: entity.CategoryGroceries, Total: 620},
		{Category: entity.CategoryTravel, Total: 100},
	}

	got, err := svc.CompareBudget(context.Background(), 1, entity.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, report.BudgetComparisonResponse{
		"groceries": {Actual: 620, Budget: 500},
		"pets":      {Actual: 0, Budget: 0},
	}, got)
}

func TestCompareBudgetInRange(t *testing.T) {
	repo, cache, svc := newFixture(ownershiptest.Owned(1, 0))
	repo.reports.limits = &entity.BudgetLimits{Groceries: amount(500)}
	repo.reports.userTotals = []entity.CategoryTotal{{Category: entity.CategoryGroceries, Total: 620}}
	repo.reports.rangeTotals = []entity.CategoryTotal{{Category: entity.CategoryGroceries, Total: 120}}

	january, err := entity.ParseDateRange("2022-01-01", "2022-01-31")
	require.NoError(t, err)

	got, err := svc.CompareBudget(context.Background(), 1, january)
	require.NoError(t, err)
	assert.Equal(t, report.BudgetComparisonResponse{"groceries": {Actual: 120, Budget: 500}}, got)
	assert.Equal(t, []entity.DateRange{january}, repo.reports.ranges)

	all, err := svc.CompareBudget(context.Background(), 1, entity.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, report.BudgetComparisonResponse{"groceries": {Actual: 620, Budget: 500}}, all)

	assert.Contains(t, cache.entries, report.CacheKey(1, 0, report.CompareKind(january)))
	assert.Contains(t, cache.entries, report.CacheKey(1, 0, report.KindCompare))
}

func TestCompareBudgetWithoutBudget(t *testing.T) {
	_, cache, svc := newFixture(ownershiptest.Owned(1, 0))

	_, err := svc.CompareBudget(context.Background(), 1, entity.DateRange{})
	assert.ErrorIs(t, err, report.ErrBudgetNotFound)
	assert.Empty(t, cache.entries)
}

func TestCompareBudgetUnknownUser(t *testing.T) {
	_, _, svc := newFixture(ownershiptest.Missing())

	_, err := svc.CompareBudget(context.Background(), 1, entity.DateRange{})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestGetCategorizedSpendStoreFailure(t *testing.T) {
	repo, cache, svc := newFixture(ownershiptest.Owned(1, 0))
	repo.reports.err = errors.New("pq: canceling statement due to statement timeout")

	_, err := svc.GetCategorizedSpend(context.Background(), 1)
	assert.ErrorIs(t, err, report.ErrReport)
	assert.Empty(t, cache.entries)
}
