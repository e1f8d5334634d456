package printing

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dscosta/pos-confeitaria/internal/domain/reservation"
	"github.com/dscosta/pos-confeitaria/internal/domain/sale"
	"github.com/dscosta/pos-confeitaria/internal/domain/settings"
)

func testStore() *settings.StoreSettings {
	return &settings.StoreSettings{
		Name:          "Confeitaria Doce Lar",
		Address:       "Rua das Flores, 123",
		Phone:         "(11) 4002-8922",
		ReceiptLayout: settings.LayoutThermal,
	}
}

func testSale(t *testing.T) *sale.Sale {
	t.Helper()

	s, err := sale.NewSale("filial-1", "", []sale.Item{
		{ProductID: "p1", ProductName: "Bolo de cenoura", Quantity: 1, Price: 55.0, CostPrice: 20.0, Size: "Grande"},
		{ProductID: "p2", ProductName: "Brigadeiro", Quantity: 10, Price: 3.5, CostPrice: 1.2},
	}, "pix")
	require.NoError(t, err)
	return s
}

func testReservation(t *testing.T) *reservation.Reservation {
	t.Helper()

	date := time.Date(2026, 5, 10, 9, 30, 0, 0, time.UTC)
	delivery := time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC)
	r, err := reservation.NewReservation(
		"filial-1", "Ana Lima", "11977776666", "", "",
		date, delivery,
		[]reservation.Item{
			{ProductID: "p1", ProductName: "Torta de morango", Quantity: 2, Price: 80.0},
		},
		"pix", true, 60.0, "pix", "",
	)
	require.NoError(t, err)
	return r
}

func TestBuildFromSale(t *testing.T) {
	s := testSale(t)

	receipt := BuildFromSale(s, testStore(), "Carlos Silva")

	assert.Equal(t, "Confeitaria Doce Lar", receipt.StoreName)
	assert.Equal(t, "Carlos Silva", receipt.CustomerName)
	assert.Equal(t, s.Total, receipt.Total)
	assert.Nil(t, receipt.DeliveryDate)

	require.Len(t, receipt.Lines, 2)
	assert.Equal(t, "Bolo de cenoura", receipt.Lines[0].Name)
	assert.Equal(t, "Grande", receipt.Lines[0].Size)
	assert.InDelta(t, 55.0, receipt.Lines[0].Total, 0.001)
	assert.InDelta(t, 35.0, receipt.Lines[1].Total, 0.001)
}

func TestBuildFromReservation(t *testing.T) {
	r := testReservation(t)

	receipt := BuildFromReservation(r, testStore())

	assert.Equal(t, "Ana Lima", receipt.CustomerName)
	require.NotNil(t, receipt.DeliveryDate)
	assert.Equal(t, r.DeliveryDate, *receipt.DeliveryDate)
	assert.True(t, receipt.HasAdvancePayment)
	assert.InDelta(t, 60.0, receipt.AdvanceAmount, 0.001)
	assert.InDelta(t, 100.0, receipt.RemainingAmount, 0.001)

	require.Len(t, receipt.Lines, 1)
	assert.InDelta(t, 160.0, receipt.Lines[0].Total, 0.001)
}

func TestRenderThermal(t *testing.T) {
	receipt := BuildFromSale(testSale(t), testStore(), "Carlos Silva")

	out := receipt.Render(settings.LayoutThermal)

	assert.Contains(t, out, "Confeitaria Doce Lar")
	assert.Contains(t, out, "Cliente: Carlos Silva")
	assert.Contains(t, out, "Bolo de cenoura (Grande)")
	assert.Contains(t, out, "Pagamento: pix")
	assert.Contains(t, out, "Obrigado pela preferência!")

	// Nenhuma linha estoura a largura da bobina.
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 40, "linha: %q", line)
	}

	totalLine := ""
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "TOTAL") {
			totalLine = line
		}
	}
	require.NotEmpty(t, totalLine)
	assert.True(t, strings.HasSuffix(totalLine, "90.00"))
	assert.Len(t, []rune(totalLine), 40, "total alinhado à direita na largura da bobina")
}

func TestRenderThermalReservation(t *testing.T) {
	receipt := BuildFromReservation(testReservation(t), testStore())

	out := receipt.Render(settings.LayoutThermal)

	assert.Contains(t, out, "Entrega: 15/05/2026")
	assert.Contains(t, out, "Adiantado")
	assert.Contains(t, out, "Restante")
}

func TestRenderFull(t *testing.T) {
	receipt := BuildFromSale(testSale(t), testStore(), "")

	out := receipt.Render(settings.LayoutFull)

	assert.Contains(t, out, "Confeitaria Doce Lar")
	assert.Contains(t, out, "Telefone: (11) 4002-8922")
	assert.Contains(t, out, "Forma de pagamento: pix")
	assert.NotContains(t, out, "Cliente:")
	assert.Contains(t, out, "Bolo de cenoura (Grande)")
	assert.Contains(t, out, "90.00")
}

func TestRenderFullReservation(t *testing.T) {
	receipt := BuildFromReservation(testReservation(t), testStore())

	out := receipt.Render(settings.LayoutFull)

	assert.Contains(t, out, "Data de entrega: 15/05/2026")
	assert.Contains(t, out, "Valor adiantado: 60.00 (pix)")
	assert.Contains(t, out, "Saldo na entrega: 100.00")
}
