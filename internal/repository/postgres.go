package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pizza-orders/internal/domain"
)

// PostgresStore is the opt-in backend for deployments where the flat file
// is not enough (several replicas, real durability). Ids come from a
// sequence starting at 1001, so they keep the same shape the file store
// produces and survive restarts without a max-scan.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (p *PostgresStore) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT order_id, customer, address, items, total, status
		   FROM orders
		  ORDER BY order_id`)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	return orders, nil
}

func (p *PostgresStore) Get(ctx context.Context, id int) (*domain.Order, error) {
	row := p.pool.QueryRow(ctx,
		`SELECT order_id, customer, address, items, total, status
		   FROM orders
		  WHERE order_id = $1`, id)

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func (p *PostgresStore) Create(ctx context.Context, draft domain.OrderDraft) (*domain.Order, error) {
	items, err := json.Marshal(draft.Items)
	if err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}

	var id int
	err = p.pool.QueryRow(ctx,
		`INSERT INTO orders (customer, address, items, total, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING order_id`,
		draft.Customer,
		draft.Address,
		items,
		draft.Total,
		draft.Status,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	order := draft.ToOrder(id)
	return &order, nil
}

func (p *PostgresStore) Update(ctx context.Context, id int, draft domain.OrderDraft) (*domain.Order, error) {
	items, err := json.Marshal(draft.Items)
	if err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}

	ct, err := p.pool.Exec(ctx,
		`UPDATE orders
		    SET customer = $2, address = $3, items = $4, total = $5, status = $6
		  WHERE order_id = $1`,
		id,
		draft.Customer,
		draft.Address,
		items,
		draft.Total,
		draft.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return nil, ErrOrderNotFound
	}

	order := draft.ToOrder(id)
	return &order, nil
}

func (p *PostgresStore) Delete(ctx context.Context, id int) (domain.DeleteResult, error) {
	ct, err := p.pool.Exec(ctx, `DELETE FROM orders WHERE order_id = $1`, id)
	if err != nil {
		return domain.DeleteResult{}, fmt.Errorf("delete order: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return domain.DeleteResult{OrderID: id, Status: domain.DeleteStatusNotFound}, nil
	}
	return domain.DeleteResult{OrderID: id, Status: domain.DeleteStatusDeleted}, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o     domain.Order
		items []byte
	)
	if err := row.Scan(&o.OrderID, &o.Customer, &o.Address, &items, &o.Total, &o.Status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return &o, nil
}
