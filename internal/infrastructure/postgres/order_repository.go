package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jpmotors/spares-api/internal/domain/entity"
	"github.com/jpmotors/spares-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implements the OrderRepository port over PostgreSQL. Bind it to
// a transaction (via TxRunner) for writes that must land atomically.
type OrderRepo struct {
	db querier
}

// NewOrderRepository builds the order persistence adapter.
func NewOrderRepository(db querier) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create inserts the order header and every line. Run inside a transaction:
// a failed line insert must abort the header too, never leaving an orphaned
// order behind.
func (r *OrderRepo) Create(order *entity.Order) error {
	ctx := context.Background()
	_, err := r.db.Exec(ctx, `
		INSERT INTO orders (id, user_id, date, status, total)
		VALUES ($1, $2, $3, $4, $5)`,
		order.ID, order.UserID, order.Date, string(order.Status), order.Total,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for _, l := range order.Lines {
		_, err := r.db.Exec(ctx, `
			INSERT INTO order_items (id, order_id, product_id, name, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			l.ID, l.OrderID, l.ProductID, l.Name, l.Quantity, l.UnitPrice,
		)
		if err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}
	return nil
}

// GetByID fetches one order with its lines and the purchasing user's name.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT o.id, o.user_id, u.name, o.date, o.status, o.total
		FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE o.id = $1`
	var o entity.Order
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.UserID, &o.CustomerName, &o.Date, &o.Status, &o.Total,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	lines, err := r.linesFor([]string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Lines = lines[o.ID]
	return &o, nil
}

// List returns every order, newest first, pre-joined with lines and the
// customer's display name.
func (r *OrderRepo) List() ([]*entity.Order, error) {
	query := `
		SELECT o.id, o.user_id, u.name, o.date, o.status, o.total
		FROM orders o
		JOIN users u ON u.id = o.user_id
		ORDER BY o.date DESC`
	return r.list(query)
}

// ListByUser returns one user's orders, newest first.
func (r *OrderRepo) ListByUser(userID string) ([]*entity.Order, error) {
	query := `
		SELECT o.id, o.user_id, u.name, o.date, o.status, o.total
		FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE o.user_id = $1
		ORDER BY o.date DESC`
	return r.list(query, userID)
}

func (r *OrderRepo) list(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	var ids []string
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.CustomerName, &o.Date, &o.Status, &o.Total); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, &o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	lines, err := r.linesFor(ids)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		o.Lines = lines[o.ID]
	}
	return orders, nil
}

func (r *OrderRepo) linesFor(orderIDs []string) (map[string][]entity.OrderLine, error) {
	query := `
		SELECT id, order_id, product_id, name, quantity, unit_price
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, id`
	rows, err := r.db.Query(context.Background(), query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()

	lines := make(map[string][]entity.OrderLine)
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.Name, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		lines[l.OrderID] = append(lines[l.OrderID], l)
	}
	return lines, rows.Err()
}

// UpdateStatus sets the status of one order.
func (r *OrderRepo) UpdateStatus(id string, status entity.Status) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE orders SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}
