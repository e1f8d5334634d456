package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dscosta/pos-confeitaria/internal/domain/reservation"
	"github.com/dscosta/pos-confeitaria/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

var (
	ErrReservationNotFound = errors.New("encomenda não encontrada")
)

// PostgresReservationRepository implementa a interface reservation.Repository usando PostgreSQL
type PostgresReservationRepository struct {
	db *database.PostgresDB
}

// NewPostgresReservationRepository cria uma nova instância de PostgresReservationRepository
func NewPostgresReservationRepository(db *database.PostgresDB) *PostgresReservationRepository {
	return &PostgresReservationRepository{db: db}
}

const reservationColumns = `id, branch_id, customer_name, customer_phone, customer_email, customer_address,
	date, delivery_date, status, items, total, payment_method,
	has_advance_payment, advance_amount, advance_payment_method, remaining_amount,
	notes, created_at, updated_at`

// Create implementa reservation.Repository.Create
func (r *PostgresReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	items, err := json.Marshal(res.Items)
	if err != nil {
		return fmt.Errorf("falha ao serializar itens: %w", err)
	}

	query := `
		INSERT INTO reservations (id, branch_id, customer_name, customer_phone, customer_email, customer_address,
			date, delivery_date, status, items, total, payment_method,
			has_advance_payment, advance_amount, advance_payment_method, remaining_amount,
			notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err = conn.Exec(ctx, query,
		res.ID, res.BranchID, res.CustomerName, res.CustomerPhone, res.CustomerEmail, res.CustomerAddress,
		res.Date, res.DeliveryDate, res.Status, items, res.Total, res.PaymentMethod,
		res.HasAdvancePayment, res.AdvanceAmount, res.AdvancePaymentMethod, res.RemainingAmount,
		res.Notes, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao inserir encomenda: %w", err)
	}

	return nil
}

// FindByID implementa reservation.Repository.FindByID
func (r *PostgresReservationRepository) FindByID(ctx context.Context, id, branchID string) (*reservation.Reservation, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	row := conn.QueryRow(ctx,
		"SELECT "+reservationColumns+" FROM reservations WHERE id = $1 AND branch_id = $2",
		id, branchID,
	)

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("falha ao buscar encomenda: %w", err)
	}

	return res, nil
}

// Update implementa reservation.Repository.Update
func (r *PostgresReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	items, err := json.Marshal(res.Items)
	if err != nil {
		return fmt.Errorf("falha ao serializar itens: %w", err)
	}

	query := `
		UPDATE reservations
		SET customer_name = $3, customer_phone = $4, customer_email = $5, customer_address = $6,
			date = $7, delivery_date = $8, status = $9, items = $10, total = $11,
			payment_method = $12, has_advance_payment = $13, advance_amount = $14,
			advance_payment_method = $15, remaining_amount = $16, notes = $17, updated_at = $18
		WHERE id = $1 AND branch_id = $2
	`

	tag, err := conn.Exec(ctx, query,
		res.ID, res.BranchID, res.CustomerName, res.CustomerPhone, res.CustomerEmail, res.CustomerAddress,
		res.Date, res.DeliveryDate, res.Status, items, res.Total,
		res.PaymentMethod, res.HasAdvancePayment, res.AdvanceAmount,
		res.AdvancePaymentMethod, res.RemainingAmount, res.Notes, res.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar encomenda: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// UpdateStatus implementa reservation.Repository.UpdateStatus
func (r *PostgresReservationRepository) UpdateStatus(ctx context.Context, id, branchID string, status reservation.Status) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx,
		"UPDATE reservations SET status = $3, updated_at = NOW() WHERE id = $1 AND branch_id = $2",
		id, branchID, status,
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar status da encomenda: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// ListByBranch implementa reservation.Repository.ListByBranch
func (r *PostgresReservationRepository) ListByBranch(ctx context.Context, branchID string) ([]*reservation.Reservation, error) {
	return r.list(ctx,
		"SELECT "+reservationColumns+" FROM reservations WHERE branch_id = $1 ORDER BY delivery_date DESC",
		branchID,
	)
}

// ListByStatus implementa reservation.Repository.ListByStatus
func (r *PostgresReservationRepository) ListByStatus(ctx context.Context, branchID string, status reservation.Status) ([]*reservation.Reservation, error) {
	return r.list(ctx,
		"SELECT "+reservationColumns+" FROM reservations WHERE branch_id = $1 AND status = $2 ORDER BY delivery_date",
		branchID, status,
	)
}

// ListByDateRange implementa reservation.Repository.ListByDateRange
func (r *PostgresReservationRepository) ListByDateRange(ctx context.Context, branchID string, from, to time.Time) ([]*reservation.Reservation, error) {
	return r.list(ctx,
		"SELECT "+reservationColumns+" FROM reservations WHERE branch_id = $1 AND delivery_date >= $2 AND delivery_date < $3 ORDER BY delivery_date",
		branchID, from, to,
	)
}

// ListUpcoming implementa reservation.Repository.ListUpcoming
func (r *PostgresReservationRepository) ListUpcoming(ctx context.Context, branchID string, days int) ([]*reservation.Reservation, error) {
	now := time.Now()
	return r.list(ctx,
		"SELECT "+reservationColumns+" FROM reservations WHERE branch_id = $1 AND status = 'pending' AND delivery_date >= $2 AND delivery_date < $3 ORDER BY delivery_date",
		branchID, now, now.AddDate(0, 0, days),
	)
}

func (r *PostgresReservationRepository) list(ctx context.Context, query string, args ...interface{}) ([]*reservation.Reservation, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar encomendas: %w", err)
	}
	defer rows.Close()

	reservations := make([]*reservation.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler encomenda: %w", err)
		}
		reservations = append(reservations, res)
	}

	return reservations, rows.Err()
}

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	res := &reservation.Reservation{}
	var itemsJSON []byte

	err := row.Scan(
		&res.ID, &res.BranchID, &res.CustomerName, &res.CustomerPhone, &res.CustomerEmail, &res.CustomerAddress,
		&res.Date, &res.DeliveryDate, &res.Status, &itemsJSON, &res.Total, &res.PaymentMethod,
		&res.HasAdvancePayment, &res.AdvanceAmount, &res.AdvancePaymentMethod, &res.RemainingAmount,
		&res.Notes, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(itemsJSON, &res.Items); err != nil {
		return nil, fmt.Errorf("falha ao desserializar itens: %w", err)
	}

	return res, nil
}
