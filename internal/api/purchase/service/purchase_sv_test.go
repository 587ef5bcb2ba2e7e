package purchaseService

import (
	"ReceiptTracker/internal/api/purchase"
	purchaseRepository "ReceiptTracker/internal/api/purchase/repository"
	"ReceiptTracker/internal/api/report"
	"ReceiptTracker/internal/api/transaction"
	"ReceiptTracker/internal/entity"
	"ReceiptTracker/internal/ownership/ownershiptest"
	"context"
	"io"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePurchases struct {
	rows     map[int64]entity.Purchase
	nextID   int64
	lastSort entity.PurchaseSort
	deleted  []int64
}

func (f *fakePurchases) CreatePurchase(_ context.Context, p entity.Purchase) (int64, error) {
	f.nextID++
	p.ID = f.nextID
	f.rows[p.ID] = p
	return p.ID, nil
}

func (f *fakePurchases) GetPurchaseByID(_ context.Context, id int64) (entity.Purchase, error) {
	p, ok := f.rows[id]
	if !ok {
		return entity.Purchase{}, purchase.ErrPurchaseNotFound
	}
	return p, nil
}

func (f *fakePurchases) GetPurchasesByTransactionID(_ context.Context, transactionID int64, sort entity.PurchaseSort) ([]entity.Purchase, error) {
	f.lastSort = sort
	var out []entity.Purchase
	for _, p := range f.rows {
		if p.TransactionID == transactionID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePurchases) UpdatePurchase(_ context.Context, p entity.Purchase) error {
	f.rows[p.ID] = p
	return nil
}

func (f *fakePurchases) DeletePurchase(_ context.Context, id int64) error {
	delete(f.rows, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeRepository struct {
	purchases *fakePurchases
	ownership *ownershiptest.Checker
}

func (f *fakeRepository) NewClient(_ context.Context, _ bool) (purchaseRepository.Client, error) {
	return purchaseRepository.Client{
		Purchase:  f.purchases,
		Ownership: f.ownership,
		Commit:    func() error { return nil },
		Rollback:  func() error { return nil },
	}, nil
}

type recordingCache struct {
	prefixes []string
}

func (c *recordingCache) GetJSON(context.Context, string, interface{}) (bool, error) {
	return false, nil
}

func (c *recordingCache) SetJSON(context.Context, string, interface{}, time.Duration) error {
	return nil
}

func (c *recordingCache) Incr(context.Context, string) (int64, error) {
	return 1, nil
}

func (c *recordingCache) Close() error {
	return nil
}

func (c *recordingCache) DeleteByPrefix(_ context.Context, prefix string) error {
	c.prefixes = append(c.prefixes, prefix)
	return nil
}

func newFixture(checker *ownershiptest.Checker) (*fakeRepository, *recordingCache, IPurchaseService) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	repo := &fakeRepository{
		purchases: &fakePurchases{rows: map[int64]entity.Purchase{}},
		ownership: checker,
	}
	cache := &recordingCache{}
	return repo, cache, NewPurchaseService(log, repo, cache)
}

func validRequest() purchase.PurchaseRequest {
	return purchase.PurchaseRequest{
		Item:         "TV",
		Price:        decimal.NewFromInt(1600),
		Category:     "Electronics",
		Quantity:     2,
		WarrantyDate: "2026-01-01",
		ReturnDate:   "2024-02-29",
	}
}

func TestCreatePurchase(t *testing.T) {
	repo, cache, svc := newFixture(ownershiptest.Owned(1, 3))

	id, err := svc.CreatePurchase(context.Background(), 1, 3, validRequest())
	require.NoError(t, err)

	stored := repo.purchases.rows[id]
	assert.Equal(t, int64(1600), stored.Price)
	assert.Equal(t, entity.CategoryElectronics, stored.Category)
	assert.Equal(t, int64(3), stored.TransactionID)
	assert.Equal(t, []string{report.UserCachePrefix(1)}, cache.prefixes)
}

func TestCreatePurchaseValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*purchase.PurchaseRequest)
		want   error
	}{
		{"fractional price", func(r *purchase.PurchaseRequest) { r.Price = decimal.RequireFromString("1600.5") }, purchase.ErrInvalidPrice},
		{"zero price", func(r *purchase.PurchaseRequest) { r.Price = decimal.Zero }, purchase.ErrInvalidPrice},
		{"negative price", func(r *purchase.PurchaseRequest) { r.Price = decimal.NewFromInt(-5) }, purchase.ErrInvalidPrice},
		{"price over bigint", func(r *purchase.PurchaseRequest) { r.Price = decimal.RequireFromString("9223372036854775808") }, purchase.ErrInvalidPrice},
		{"huge exponent", func(r *purchase.PurchaseRequest) { r.Price = decimal.RequireFromString("1e20000000") }, purchase.ErrInvalidPrice},
		{"twenty digit price", func(r *purchase.PurchaseRequest) { r.Price = decimal.RequireFromString("10000000000000000000") }, purchase.ErrInvalidPrice},
		{"quantity one", func(r *purchase.PurchaseRequest) { r.Quantity = 1 }, purchase.ErrInvalidQuantity},
		{"unknown category", func(r *purchase.PurchaseRequest) { r.Category = "Snacks" }, purchase.ErrInvalidCategory},
		{"bad warranty date", func(r *purchase.PurchaseRequest) { r.WarrantyDate = "2022-02-29" }, purchase.ErrInvalidDate},
		{"bad return date", func(r *purchase.PurchaseRequest) { r.ReturnDate = "2022-13-01" }, purchase.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, svc := newFixture(ownershiptest.Owned(1, 3))
			req := validRequest()
			tt.mutate(&req)

			_, err := svc.CreatePurchase(context.Background(), 1, 3, req)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, repo.purchases.rows)
		})
	}
}

func TestParsePriceBounds(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
		err  error
	}{
		{raw: "1600", want: 1600},
		{raw: "1600.000", want: 1600},
		{raw: "16e2", want: 1600},
		{raw: "9223372036854775807", want: math.MaxInt64},
		{raw: "9223372036854775808", err: purchase.ErrInvalidPrice},
		{raw: "1e19", err: purchase.ErrInvalidPrice},
		{raw: "1e2147483647", err: purchase.ErrInvalidPrice},
		{raw: "1e-20000000", err: purchase.ErrInvalidPrice},
	}

	for _, tt := range tests {
		got, err := parsePrice(decimal.RequireFromString(tt.raw))
		if tt.err != nil {
			assert.ErrorIs(t, err, tt.err, tt.raw)
			continue
		}
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestCreatePurchaseUnderForeignTransaction(t *testing.T) {
	_, _, svc := newFixture(ownershiptest.Owned(2, 3))

	_, err := svc.CreatePurchase(context.Background(), 1, 3, validRequest())
	assert.ErrorIs(t, err, transaction.ErrTransactionNotOwned)
}

func TestListPurchasesSortValidation(t *testing.T) {
	_, _, svc := newFixture(ownershiptest.Owned(1, 3))

	_, err := svc.ListPurchases(context.Background(), 1, 3, nil, entity.PurchaseSort{By: "name", Order: entity.SortAsc})
	assert.ErrorIs(t, err, purchase.ErrInvalidSortBy)

	_, err = svc.ListPurchases(context.Background(), 1, 3, nil, entity.PurchaseSort{By: entity.PurchaseSortPrice, Order: "up"})
	assert.ErrorIs(t, err, purchase.ErrInvalidSortOrder)
}

func TestListPurchasesFilteredToOne(t *testing.T) {
	repo, _, svc := newFixture(ownershiptest.Owned(1, 3))
	repo.purchases.rows[4] = entity.Purchase{ID: 4, TransactionID: 3, Item: "TV"}
	repo.purchases.rows[5] = entity.Purchase{ID: 5, TransactionID: 3, Item: "Radio"}

	id := int64(5)
	sort := entity.PurchaseSort{By: entity.PurchaseSortDate, Order: entity.SortDesc}
	got, err := svc.ListPurchases(context.Background(), 1, 3, &id, sort)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Radio", got[0].Item)
	assert.Equal(t, sort, repo.purchases.lastSort)
}

func TestGetPurchaseFromOtherTransaction(t *testing.T) {
	_, _, svc := newFixture(ownershiptest.Owned(1, 8))

	_, err := svc.GetPurchase(context.Background(), 1, 3, 4)
	assert.ErrorIs(t, err, purchase.ErrPurchaseNotOwned)
}

func TestDeleteMissingPurchaseIsOK(t *testing.T) {
	checker := ownershiptest.Owned(1, 3)
	checker.Snapshot.PurchaseOwner.Valid = false
	repo, cache, svc := newFixture(checker)

	require.NoError(t, svc.DeletePurchase(context.Background(), 1, 3, 99))
	assert.Empty(t, repo.purchases.deleted)
	assert.Empty(t, cache.prefixes)
}

func TestDeletePurchase(t *testing.T) {
	repo, cache, svc := newFixture(ownershiptest.Owned(1, 3))

	require.NoError(t, svc.DeletePurchase(context.Background(), 1, 3, 4))
	assert.Equal(t, []int64{4}, repo.purchases.deleted)
	assert.Equal(t, []string{report.UserCachePrefix(1)}, cache.prefixes)
}

func TestUpdatePurchase(t *testing.T) {
	repo, _, svc := newFixture(ownershiptest.Owned(1, 3))
	repo.purchases.rows[4] = entity.Purchase{ID: 4, TransactionID: 3, Item: "TV"}

	req := validRequest()
	req.Item = "OLED TV"
	got, err := svc.UpdatePurchase(context.Background(), 1, 3, 4, req)
	require.NoError(t, err)
	assert.Equal(t, "OLED TV", got.Item)
	assert.Equal(t, "2024-02-29", got.ReturnDate)
}
