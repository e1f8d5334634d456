package loyalty

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dscosta/pos-confeitaria/internal/domain/customer"
	"github.com/dscosta/pos-confeitaria/internal/domain/loyalty"
)

type noopLogger struct{}

func (noopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Warn(msg string, keysAndValues ...interface{})  {}

var errNotFound = errors.New("não encontrado")

type fakeLoyaltyRepo struct {
	levels      map[string]*loyalty.Level
	rewards     map[string]*loyalty.Reward
	redemptions []*loyalty.Redemption
	customers   *fakeCustomerRepo
}

func newFakeLoyaltyRepo(customers *fakeCustomerRepo) *fakeLoyaltyRepo {
	return &fakeLoyaltyRepo{
		levels:    make(map[string]*loyalty.Level),
		rewards:   make(map[string]*loyalty.Reward),
		customers: customers,
	}
}

func (r *fakeLoyaltyRepo) CreateLevel(ctx context.Context, level *loyalty.Level) error {
	r.levels[level.ID] = level
	return nil
}

func (r *fakeLoyaltyRepo) FindLevelByID(ctx context.Context, id, branchID string) (*loyalty.Level, error) {
	level, ok := r.levels[id]
	if !ok || level.BranchID != branchID {
		return nil, errNotFound
	}
	return level, nil
}

func (r *fakeLoyaltyRepo) ListLevels(ctx context.Context, branchID string) ([]*loyalty.Level, error) {
	var out []*loyalty.Level
	for _, level := range r.levels {
		if level.BranchID == branchID {
			out = append(out, level)
		}
	}
	return out, nil
}

func (r *fakeLoyaltyRepo) CountLevels(ctx context.Context, branchID string) (int, error) {
	levels, _ := r.ListLevels(ctx, branchID)
	return len(levels), nil
}

func (r *fakeLoyaltyRepo) CreateReward(ctx context.Context, reward *loyalty.Reward) error {
	r.rewards[reward.ID] = reward
	return nil
}

func (r *fakeLoyaltyRepo) FindRewardByID(ctx context.Context, id, branchID string) (*loyalty.Reward, error) {
	reward, ok := r.rewards[id]
	if !ok || reward.BranchID != branchID {
		return nil, errNotFound
	}
	return reward, nil
}

func (r *fakeLoyaltyRepo) UpdateReward(ctx context.Context, reward *loyalty.Reward) error {
	r.rewards[reward.ID] = reward
	return nil
}

func (r *fakeLoyaltyRepo) ListRewards(ctx context.Context, branchID string) ([]*loyalty.Reward, error) {
	var out []*loyalty.Reward
	for _, reward := range r.rewards {
		if reward.BranchID == branchID {
			out = append(out, reward)
		}
	}
	return out, nil
}

func (r *fakeLoyaltyRepo) CountRewards(ctx context.Context, branchID string) (int, error) {
	rewards, _ := r.ListRewards(ctx, branchID)
	return len(rewards), nil
}

func (r *fakeLoyaltyRepo) RedeemReward(ctx context.Context, redemption *loyalty.Redemption) error {
	c, err := r.customers.FindByID(ctx, redemption.CustomerID, redemption.BranchID)
	if err != nil {
		return err
	}
	if err := c.SpendPoints(redemption.PointsRedeemed); err != nil {
		return loyalty.ErrInsufficientPoints
	}
	r.redemptions = append(r.redemptions, redemption)
	return nil
}

func (r *fakeLoyaltyRepo) ListRedemptions(ctx context.Context, customerID, branchID string) ([]*loyalty.Redemption, error) {
	var out []*loyalty.Redemption
	for _, redemption := range r.redemptions {
		if redemption.CustomerID == customerID && redemption.BranchID == branchID {
			out = append(out, redemption)
		}
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers map[string]*customer.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*customer.Customer)}
}

func (r *fakeCustomerRepo) Create(ctx context.Context, c *customer.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) FindByID(ctx context.Context, id, branchID string) (*customer.Customer, error) {
	c, ok := r.customers[id]
	if !ok || c.BranchID != branchID {
		return nil, errNotFound
	}
	return c, nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, c *customer.Customer) error {
	if _, ok := r.customers[c.ID]; !ok {
		return errNotFound
	}
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) Deactivate(ctx context.Context, id, branchID string) error {
	c, err := r.FindByID(ctx, id, branchID)
	if err != nil {
		return err
	}
	c.Deactivate()
	return nil
}

func (r *fakeCustomerRepo) ListByBranch(ctx context.Context, branchID string) ([]*customer.Customer, error) {
	var out []*customer.Customer
	for _, c := range r.customers {
		if c.BranchID == branchID && c.Status == customer.StatusActive {
			out = append(out, c)
		}
	}
	return out, nil
}

const testBranchID = "filial-1"

func newTestEngine(t *testing.T) (*Engine, *fakeLoyaltyRepo, *fakeCustomerRepo) {
	t.Helper()

	customers := newFakeCustomerRepo()
	loyaltyRepo := newFakeLoyaltyRepo(customers)
	return NewEngine(loyaltyRepo, customers, noopLogger{}), loyaltyRepo, customers
}

func seedLevels(t *testing.T, repo *fakeLoyaltyRepo) {
	t.Helper()

	for _, level := range loyalty.DefaultLevels(testBranchID) {
		require.NoError(t, repo.CreateLevel(context.Background(), level))
	}
}

func newTestCustomer(t *testing.T, customers *fakeCustomerRepo, points int) *customer.Customer {
	t.Helper()

	c, err := customer.NewCustomer(testBranchID, "Maria Souza", "maria@example.com", "11988887777", "", "")
	require.NoError(t, err)
	c.LoyaltyPoints = points
	require.NoError(t, customers.Create(context.Background(), c))
	return c
}

func TestAwardPointsForOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("credita pontos e reclassifica o nível", func(t *testing.T) {
		engine, loyaltyRepo, customers := newTestEngine(t)
		seedLevels(t, loyaltyRepo)
		c := newTestCustomer(t, customers, 95)

		updated, err := engine.AwardPointsForOrder(ctx, c.ID, testBranchID, 97.0)
		require.NoError(t, err)

		assert.Equal(t, 104, updated.LoyaltyPoints)

		levels, _ := loyaltyRepo.ListLevels(ctx, testBranchID)
		expected := loyalty.SelectLevel(levels, 104)
		require.NotNil(t, expected)
		assert.Equal(t, "Prata", expected.Name)
		assert.Equal(t, expected.ID, updated.LoyaltyLevelID)
	})

	t.Run("pedido abaixo de dez não pontua e não é erro", func(t *testing.T) {
		engine, loyaltyRepo, customers := newTestEngine(t)
		seedLevels(t, loyaltyRepo)
		c := newTestCustomer(t, customers, 40)

		updated, err := engine.AwardPointsForOrder(ctx, c.ID, testBranchID, 5.0)
		require.NoError(t, err)

		assert.Equal(t, 40, updated.LoyaltyPoints)
		assert.Empty(t, updated.LoyaltyLevelID)
	})

	t.Run("mantém o nível atual quando nenhum qualifica", func(t *testing.T) {
		engine, loyaltyRepo, customers := newTestEngine(t)

		level, err := loyalty.NewLevel(testBranchID, "VIP", 500, 10, nil)
		require.NoError(t, err)
		require.NoError(t, loyaltyRepo.CreateLevel(ctx, level))

		c := newTestCustomer(t, customers, 0)
		c.LoyaltyLevelID = "nivel-antigo"

		updated, err := engine.AwardPointsForOrder(ctx, c.ID, testBranchID, 50.0)
		require.NoError(t, err)

		assert.Equal(t, 5, updated.LoyaltyPoints)
		assert.Equal(t, "nivel-antigo", updated.LoyaltyLevelID)
	})

	t.Run("cliente inexistente retorna erro", func(t *testing.T) {
		engine, _, _ := newTestEngine(t)

		_, err := engine.AwardPointsForOrder(ctx, "nao-existe", testBranchID, 50.0)
		assert.Error(t, err)
	})
}

func TestRedeem(t *testing.T) {
	ctx := context.Background()

	newReward := func(t *testing.T, repo *fakeLoyaltyRepo, points int) *loyalty.Reward {
		t.Helper()

		reward, err := loyalty.NewReward(testBranchID, "Bolo no pote grátis", "", points)
		require.NoError(t, err)
		require.NoError(t, repo.CreateReward(ctx, reward))
		return reward
	}

	t.Run("resgate deduz pontos e registra o resgate", func(t *testing.T) {
		engine, loyaltyRepo, customers := newTestEngine(t)
		reward := newReward(t, loyaltyRepo, 100)
		c := newTestCustomer(t, customers, 150)
		c.LoyaltyLevelID = "nivel-ouro"

		redemption, err := engine.Redeem(ctx, c.ID, reward.ID, testBranchID)
		require.NoError(t, err)

		assert.Equal(t, reward.ID, redemption.RewardID)
		assert.Equal(t, reward.Name, redemption.RewardName)
		assert.Equal(t, 100, redemption.PointsRedeemed)

		assert.Equal(t, 50, c.LoyaltyPoints)
		assert.Equal(t, "nivel-ouro", c.LoyaltyLevelID, "o resgate não rebaixa o nível")

		history, err := loyaltyRepo.ListRedemptions(ctx, c.ID, testBranchID)
		require.NoError(t, err)
		assert.Len(t, history, 1)
	})

	t.Run("recompensa inativa", func(t *testing.T) {
		engine, loyaltyRepo, customers := newTestEngine(t)
		reward := newReward(t, loyaltyRepo, 100)
		reward.Deactivate()
		c := newTestCustomer(t, customers, 500)

		_, err := engine.Redeem(ctx, c.ID, reward.ID, testBranchID)
		assert.ErrorIs(t, err, loyalty.ErrRewardInactive)
		assert.Equal(t, 500, c.LoyaltyPoints)
	})

	t.Run("saldo insuficiente", func(t *testing.T) {
		engine, loyaltyRepo, customers := newTestEngine(t)
		reward := newReward(t, loyaltyRepo, 100)
		c := newTestCustomer(t, customers, 99)

		_, err := engine.Redeem(ctx, c.ID, reward.ID, testBranchID)
		assert.ErrorIs(t, err, loyalty.ErrInsufficientPoints)
		assert.Equal(t, 99, c.LoyaltyPoints)

		history, _ := loyaltyRepo.ListRedemptions(ctx, c.ID, testBranchID)
		assert.Empty(t, history)
	})
}

func TestEnsureDefaults(t *testing.T) {
	ctx := context.Background()
	engine, loyaltyRepo, _ := newTestEngine(t)

	require.NoError(t, engine.EnsureDefaults(ctx, testBranchID))

	levels, err := loyaltyRepo.ListLevels(ctx, testBranchID)
	require.NoError(t, err)
	assert.Len(t, levels, 4)

	rewards, err := loyaltyRepo.ListRewards(ctx, testBranchID)
	require.NoError(t, err)
	assert.Len(t, rewards, 6)

	// Segunda chamada não duplica nada.
	require.NoError(t, engine.EnsureDefaults(ctx, testBranchID))

	levels, _ = loyaltyRepo.ListLevels(ctx, testBranchID)
	assert.Len(t, levels, 4)
	rewards, _ = loyaltyRepo.ListRewards(ctx, testBranchID)
	assert.Len(t, rewards, 6)
}
