package service

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/wallyverse/social-exchange/internal/core/domain"
)

// In-memory repositories backing the service tests. They mirror the store's
// error contract (not-found and conflict sentinels) without any concurrency
// handling; tests are single-goroutine.

type stubTxRunner struct {
	calls int
	fail  error
}

func (s *stubTxRunner) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.calls++
	if s.fail != nil {
		return s.fail
	}
	return fn(ctx)
}

type memUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) add(u *domain.User) *domain.User {
	for u.ID == "" {
		r.nextID++
		id := fmt.Sprintf("u%d", r.nextID)
		if _, taken := r.users[id]; !taken {
			u.ID = id
		}
	}
	r.users[u.ID] = u
	return u
}

func (r *memUserRepo) Create(_ context.Context, u *domain.User) (string, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return "", domain.ErrEmailTaken
		}
	}
	return r.add(u).ID, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) UpdateProfile(_ context.Context, id string, p domain.Profile) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Profile = p
	return nil
}

func (r *memUserRepo) SetRole(_ context.Context, id string, role domain.RoleType) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.RoleType = role
	return nil
}

func (r *memUserRepo) SetStatus(_ context.Context, id string, status domain.AccountStatus) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Status = status
	return nil
}

func (r *memUserRepo) IncrementBalances(_ context.Context, id string, delta domain.BalanceDelta) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.DataIncome += delta.DataIncome
	u.FollowIncome += delta.FollowIncome
	u.WallyWallet += delta.WallyWallet
	u.AdminRevenue += delta.AdminRevenue
	return nil
}

func (r *memUserRepo) SetFollowIncome(_ context.Context, id string, total float64) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.FollowIncome = total
	return nil
}

func (r *memUserRepo) ResetDataIncome(_ context.Context, id string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.DataIncome = 0
	return nil
}

func (r *memUserRepo) ListActiveIDs(_ context.Context) ([]string, error) {
	var ids []string
	for id, u := range r.users {
		if u.Status == domain.StatusActive {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

type memShareRepo struct {
	shares []*domain.Share
	nextID int
}

func newMemShareRepo() *memShareRepo {
	return &memShareRepo{}
}

func (r *memShareRepo) Create(_ context.Context, s *domain.Share) (string, error) {
	for s.ID == "" {
		r.nextID++
		id := fmt.Sprintf("s%d", r.nextID)
		if _, err := r.FindByID(context.Background(), id); err != nil {
			s.ID = id
		}
	}
	r.shares = append(r.shares, s)
	return s.ID, nil
}

func (r *memShareRepo) FindByID(_ context.Context, id string) (*domain.Share, error) {
	for _, s := range r.shares {
		if s.ID == id {
			copied := *s
			return &copied, nil
		}
	}
	return nil, domain.ErrShareNotFound
}

func (r *memShareRepo) FirstByOwner(_ context.Context, ownerID string) (*domain.Share, error) {
	// Creation order doubles as age order.
	for _, s := range r.shares {
		if s.OwnerID == ownerID {
			copied := *s
			return &copied, nil
		}
	}
	return nil, domain.ErrShareNotFound
}

func (r *memShareRepo) SetOwner(_ context.Context, shareID, ownerID string) error {
	for _, s := range r.shares {
		if s.ID == shareID {
			s.OwnerID = ownerID
			return nil
		}
	}
	return domain.ErrShareNotFound
}

func (r *memShareRepo) MarkSold(_ context.Context, shareID string) error {
	for _, s := range r.shares {
		if s.ID == shareID {
			s.Sold = true
			return nil
		}
	}
	return domain.ErrShareNotFound
}

func (r *memShareRepo) IncrementPrice(_ context.Context, shareID string, step float64) error {
	for _, s := range r.shares {
		if s.ID == shareID {
			s.Price += step
			return nil
		}
	}
	return domain.ErrShareNotFound
}

type memFollowRepo struct {
	edges []*domain.Follow
}

func newMemFollowRepo() *memFollowRepo {
	return &memFollowRepo{}
}

func (r *memFollowRepo) Create(_ context.Context, f *domain.Follow) error {
	for _, e := range r.edges {
		if e.FollowerID == f.FollowerID && e.FollowingID == f.FollowingID {
			return domain.ErrAlreadyFollowing
		}
	}
	r.edges = append(r.edges, f)
	return nil
}

func (r *memFollowRepo) Exists(_ context.Context, followerID, followingID string) (bool, error) {
	for _, e := range r.edges {
		if e.FollowerID == followerID && e.FollowingID == followingID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memFollowRepo) ListFollowing(_ context.Context, followerID string) ([]string, error) {
	var ids []string
	for _, e := range r.edges {
		if e.FollowerID == followerID {
			ids = append(ids, e.FollowingID)
		}
	}
	return ids, nil
}

func (r *memFollowRepo) CountFollowers(_ context.Context, userID string) (int64, error) {
	var n int64
	for _, e := range r.edges {
		if e.FollowingID == userID {
			n++
		}
	}
	return n, nil
}

func (r *memFollowRepo) CountFollowing(_ context.Context, userID string) (int64, error) {
	var n int64
	for _, e := range r.edges {
		if e.FollowerID == userID {
			n++
		}
	}
	return n, nil
}

type memTransactionRepo struct {
	records []*domain.Transaction
}

func newMemTransactionRepo() *memTransactionRepo {
	return &memTransactionRepo{}
}

func (r *memTransactionRepo) Append(_ context.Context, t *domain.Transaction) error {
	if t.ID == "" {
		t.ID = fmt.Sprintf("t%d", len(r.records)+1)
	}
	r.records = append(r.records, t)
	return nil
}

func (r *memTransactionRepo) ListByShare(_ context.Context, shareID string) ([]*domain.Transaction, error) {
	var out []*domain.Transaction
	for _, t := range r.records {
		if t.ShareID == shareID {
			out = append(out, t)
		}
	}
	return out, nil
}

type memPolicyRepo struct {
	values map[string]float64
}

func newMemPolicyRepo() *memPolicyRepo {
	return &memPolicyRepo{values: make(map[string]float64)}
}

func (r *memPolicyRepo) Upsert(_ context.Context, action string, value float64) error {
	r.values[action] = value
	return nil
}

func (r *memPolicyRepo) Get(_ context.Context, action string) (float64, error) {
	v, ok := r.values[action]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return v, nil
}

type stubIssuanceGuard struct {
	won  bool
	err  error
	seen []string
}

func (g *stubIssuanceGuard) Acquire(_ context.Context, period string) (bool, error) {
	g.seen = append(g.seen, period)
	return g.won, g.err
}

// fixture bundles the repositories and services under test.
type fixture struct {
	users    *memUserRepo
	shares   *memShareRepo
	follows  *memFollowRepo
	trades   *memTransactionRepo
	policies *memPolicyRepo
	tx       *stubTxRunner

	followSvc  *FollowService
	accountSvc *AccountService
	marketSvc  *MarketService
	policySvc  *PolicyService
}

func newFixture() *fixture {
	f := &fixture{
		users:    newMemUserRepo(),
		shares:   newMemShareRepo(),
		follows:  newMemFollowRepo(),
		trades:   newMemTransactionRepo(),
		policies: newMemPolicyRepo(),
		tx:       &stubTxRunner{},
	}
	log := zerolog.Nop()
	f.followSvc = NewFollowService(f.users, f.shares, f.follows, f.policies, f.tx, log)
	f.accountSvc = NewAccountService(f.users, f.shares, f.follows, f.followSvc, f.tx, log)
	f.marketSvc = NewMarketService(f.users, f.shares, f.trades, f.tx, log)
	f.policySvc = NewPolicyService(f.policies, f.tx, log)
	return f
}

func (f *fixture) currencySvc(guard IssuanceGuard) *CurrencyService {
	return NewCurrencyService(f.users, f.followSvc, f.tx, guard, zerolog.Nop())
}

// seedUser inserts an account directly, bypassing the signup flow.
func (f *fixture) seedUser(id, email string, role domain.RoleType) *domain.User {
	return f.users.add(&domain.User{
		ID:           id,
		Email:        email,
		Profile:      domain.Profile{FirstName: "First", LastName: "Last"},
		RoleType:     role,
		Status:       domain.StatusActive,
		WallyWallet:  domain.InitialWallyWallet,
		AdminRevenue: domain.InitialAdminRevenue,
		CreatedAt:    time.Now().UTC(),
	})
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse time %q: %v", value, err)
	}
	return ts
}

// seedShare inserts a share owned by the given user.
func (f *fixture) seedShare(id, ownerID string, price float64) *domain.Share {
	s := &domain.Share{ID: id, OwnerID: ownerID, Price: price, CreatedAt: time.Now().UTC()}
	f.shares.shares = append(f.shares.shares, s)
	return s
}
