package sales

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dscosta/pos-confeitaria/internal/domain/customer"
	"github.com/dscosta/pos-confeitaria/internal/domain/loyalty"
	"github.com/dscosta/pos-confeitaria/internal/domain/product"
	"github.com/dscosta/pos-confeitaria/internal/domain/sale"
)

type noopLogger struct{}

func (noopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Warn(msg string, keysAndValues ...interface{})  {}

var errNotFound = errors.New("não encontrado")

// recordedSale guarda a chamada de CreateWithEffects para inspeção nos testes.
type recordedSale struct {
	sale        *sale.Sale
	adjustments []sale.StockAdjustment
	effects     *sale.CustomerEffects
}

type fakeSaleRepo struct {
	recorded []recordedSale
}

func (r *fakeSaleRepo) CreateWithEffects(ctx context.Context, s *sale.Sale, adjustments []sale.StockAdjustment, effects *sale.CustomerEffects) error {
	r.recorded = append(r.recorded, recordedSale{sale: s, adjustments: adjustments, effects: effects})
	return nil
}

func (r *fakeSaleRepo) FindByID(ctx context.Context, id, branchID string) (*sale.Sale, error) {
	for _, rec := range r.recorded {
		if rec.sale.ID == id && rec.sale.BranchID == branchID {
			return rec.sale, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeSaleRepo) ListByBranch(ctx context.Context, branchID string) ([]*sale.Sale, error) {
	var out []*sale.Sale
	for _, rec := range r.recorded {
		if rec.sale.BranchID == branchID {
			out = append(out, rec.sale)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) ListByDateRange(ctx context.Context, branchID string, from, to time.Time) ([]*sale.Sale, error) {
	return nil, nil
}

func (r *fakeSaleRepo) ListByCustomer(ctx context.Context, customerID, branchID string) ([]*sale.Sale, error) {
	var out []*sale.Sale
	for _, rec := range r.recorded {
		if rec.sale.CustomerID == customerID && rec.sale.BranchID == branchID {
			out = append(out, rec.sale)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) CountByCustomer(ctx context.Context, customerID, branchID string) (int, error) {
	sales, _ := r.ListByCustomer(ctx, customerID, branchID)
	return len(sales), nil
}

type fakeProductRepo struct {
	products map[string]*product.Product
}

func (r *fakeProductRepo) Create(ctx context.Context, p *product.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) FindByID(ctx context.Context, id, branchID string) (*product.Product, error) {
	p, ok := r.products[id]
	if !ok || p.BranchID != branchID {
		return nil, errNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *product.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) UpdateStock(ctx context.Context, id, branchID string, stock int) error {
	p, err := r.FindByID(ctx, id, branchID)
	if err != nil {
		return err
	}
	p.Stock = stock
	return nil
}

func (r *fakeProductRepo) Deactivate(ctx context.Context, id, branchID string) error {
	p, err := r.FindByID(ctx, id, branchID)
	if err != nil {
		return err
	}
	p.Deactivate()
	return nil
}

func (r *fakeProductRepo) ListByBranch(ctx context.Context, branchID string) ([]*product.Product, error) {
	var out []*product.Product
	for _, p := range r.products {
		if p.BranchID == branchID && p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListByCategory(ctx context.Context, branchID, category string) ([]*product.Product, error) {
	var out []*product.Product
	for _, p := range r.products {
		if p.BranchID == branchID && p.Active && p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListLowStock(ctx context.Context, branchID string, threshold int) ([]*product.Product, error) {
	var out []*product.Product
	for _, p := range r.products {
		if p.BranchID == branchID && p.Active && p.Stock < threshold {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers map[string]*customer.Customer
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

// fakeLevelLister cobre só o que o Service usa do repositório de fidelidade.
type fakeLevelLister struct {
	loyalty.Repository
	levels []*loyalty.Level
}

func (r *fakeLevelLister) ListLevels(ctx context.Context, branchID string) ([]*loyalty.Level, error) {
	return r.levels, nil
}

const testBranchID = "filial-1"

type testFixture struct {
	service   *Service
	saleRepo  *fakeSaleRepo
	products  *fakeProductRepo
	customers *fakeCustomerRepo
	levels    []*loyalty.Level
}

func newTestFixture(t *testing.T) *testFixture {
	t.Helper()

	saleRepo := &fakeSaleRepo{}
	products := &fakeProductRepo{products: make(map[string]*product.Product)}
	customers := &fakeCustomerRepo{customers: make(map[string]*customer.Customer)}
	levels := loyalty.DefaultLevels(testBranchID)

	return &testFixture{
		service:   NewService(saleRepo, products, customers, &fakeLevelLister{levels: levels}, noopLogger{}),
		saleRepo:  saleRepo,
		products:  products,
		customers: customers,
		levels:    levels,
	}
}

func (f *testFixture) addProduct(t *testing.T, name string, price, costPrice float64, stock int, sizes []product.ProductSize) *product.Product {
	t.Helper()

	p, err := product.NewProduct(testBranchID, name, "", price, costPrice, stock, "Bolos", sizes)
	require.NoError(t, err)
	require.NoError(t, f.products.Create(context.Background(), p))
	return p
}

func (f *testFixture) addCustomer(t *testing.T, points int) *customer.Customer {
	t.Helper()

	c, err := customer.NewCustomer(testBranchID, "João Pereira", "joao@example.com", "", "", "")
	require.NoError(t, err)
	c.LoyaltyPoints = points
	require.NoError(t, f.customers.Create(context.Background(), c))
	return c
}

func TestRecordSale(t *testing.T) {
	ctx := context.Background()

	t.Run("preço vem do cadastro e do tamanho selecionado", func(t *testing.T) {
		f := newTestFixture(t)
		cake := f.addProduct(t, "Bolo de cenoura", 40.0, 15.0, 10, []product.ProductSize{
			{Name: "Pequeno", Price: 30.0},
			{Name: "Grande", Price: 55.0},
		})
		brigadeiro := f.addProduct(t, "Brigadeiro", 3.5, 1.2, 100, nil)

		recorded, err := f.service.RecordSale(ctx, testBranchID, []ItemInput{
			{ProductID: cake.ID, Quantity: 1, Size: "Grande"},
			{ProductID: brigadeiro.ID, Quantity: 10},
		}, "pix", "")
		require.NoError(t, err)

		require.Len(t, recorded.Items, 2)
		assert.Equal(t, 55.0, recorded.Items[0].Price)
		assert.Equal(t, "Bolo de cenoura", recorded.Items[0].ProductName)
		assert.Equal(t, 3.5, recorded.Items[1].Price)
		assert.InDelta(t, 90.0, recorded.Total, 0.001)
		assert.InDelta(t, 27.0, recorded.TotalCost, 0.001)

		require.Len(t, f.saleRepo.recorded, 1)
		rec := f.saleRepo.recorded[0]
		require.Len(t, rec.adjustments, 2)
		assert.Equal(t, cake.ID, rec.adjustments[0].ProductID)
		assert.Equal(t, 1, rec.adjustments[0].Quantity)
		assert.Equal(t, brigadeiro.ID, rec.adjustments[1].ProductID)
		assert.Equal(t, 10, rec.adjustments[1].Quantity)
	})

	t.Run("venda sem cliente não gera efeitos de fidelidade", func(t *testing.T) {
		f := newTestFixture(t)
		p := f.addProduct(t, "Torta de limão", 60.0, 20.0, 5, nil)

		_, err := f.service.RecordSale(ctx, testBranchID, []ItemInput{
			{ProductID: p.ID, Quantity: 1},
		}, "cash", "")
		require.NoError(t, err)

		require.Len(t, f.saleRepo.recorded, 1)
		assert.Nil(t, f.saleRepo.recorded[0].effects)
	})

	t.Run("venda com cliente calcula pontos e novo nível", func(t *testing.T) {
		f := newTestFixture(t)
		p := f.addProduct(t, "Torta de limão", 60.0, 20.0, 5, nil)
		c := f.addCustomer(t, 95)

		recorded, err := f.service.RecordSale(ctx, testBranchID, []ItemInput{
			{ProductID: p.ID, Quantity: 2},
		}, "credit", c.ID)
		require.NoError(t, err)

		require.Len(t, f.saleRepo.recorded, 1)
		effects := f.saleRepo.recorded[0].effects
		require.NotNil(t, effects)
		assert.Equal(t, c.ID, effects.CustomerID)
		assert.Equal(t, 12, effects.PointsAwarded)

		// Saldo projetado de 107 pontos alcança o nível Prata.
		expected := loyalty.SelectLevel(f.levels, 107)
		require.NotNil(t, expected)
		assert.Equal(t, "Prata", expected.Name)
		assert.Equal(t, expected.ID, effects.NewLevelID)
		assert.Equal(t, recorded.CustomerID, effects.CustomerID)
	})

	t.Run("tamanho inexistente", func(t *testing.T) {
		f := newTestFixture(t)
		p := f.addProduct(t, "Bolo de cenoura", 40.0, 15.0, 10, []product.ProductSize{
			{Name: "Pequeno", Price: 30.0},
		})

		_, err := f.service.RecordSale(ctx, testBranchID, []ItemInput{
			{ProductID: p.ID, Quantity: 1, Size: "Gigante"},
		}, "pix", "")
		assert.ErrorIs(t, err, product.ErrSizeNotFound)
		assert.Empty(t, f.saleRepo.recorded)
	})

	t.Run("produto inexistente", func(t *testing.T) {
		f := newTestFixture(t)

		_, err := f.service.RecordSale(ctx, testBranchID, []ItemInput{
			{ProductID: "nao-existe", Quantity: 1},
		}, "pix", "")
		assert.ErrorIs(t, err, errNotFound)
	})

	t.Run("venda sem itens", func(t *testing.T) {
		f := newTestFixture(t)

		_, err := f.service.RecordSale(ctx, testBranchID, nil, "pix", "")
		assert.ErrorIs(t, err, sale.ErrNoItems)
	})

	t.Run("cliente inexistente impede a venda", func(t *testing.T) {
		f := newTestFixture(t)
		p := f.addProduct(t, "Brigadeiro", 3.5, 1.2, 100, nil)

		_, err := f.service.RecordSale(ctx, testBranchID, []ItemInput{
			{ProductID: p.ID, Quantity: 1},
		}, "pix", "cliente-fantasma")
		assert.Error(t, err)
		assert.Empty(t, f.saleRepo.recorded)
	})
}
