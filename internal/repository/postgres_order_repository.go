package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/orderdocs/internal/domain"
	"github.com/nikolayk812/orderdocs/internal/port"
	"github.com/samber/lo"
)

// orders is a document table: the whole order lives in doc, id mirrors doc's key.
const createOrdersTable = `
CREATE TABLE IF NOT EXISTS orders (
	seq BIGSERIAL,
	id  TEXT PRIMARY KEY,
	doc JSONB NOT NULL
)`

type postgresOrderRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresOrder(ctx context.Context, pool *pgxpool.Pool) (port.OrderRepository, error) {
	if pool == nil {
		return nil, errors.New("pool is nil")
	}

	if _, err := pool.Exec(ctx, createOrdersTable); err != nil {
		return nil, fmt.Errorf("pool.Exec[create table]: %w", err)
	}

	return &postgresOrderRepository{
		pool: pool,
	}, nil
}

type jsonOrderDocument struct {
	UserID     string             `json:"user_id"`
	Items      []jsonItemDocument `json:"items"`
	TotalPrice float64            `json:"total_price"`
	Status     string             `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

type jsonItemDocument struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

func (r *postgresOrderRepository) InsertOrder(ctx context.Context, order domain.Order) (domain.OrderID, error) {
	doc, err := json.Marshal(mapDomainOrderToJSON(order))
	if err != nil {
		return domain.NilOrderID, fmt.Errorf("json.Marshal: %w", err)
	}

	orderID := domain.NewOrderID()

	if _, err := r.pool.Exec(ctx, `INSERT INTO orders (id, doc) VALUES ($1, $2)`, orderID.Hex(), doc); err != nil {
		return domain.NilOrderID, fmt.Errorf("pool.Exec[insert]: %w", err)
	}

	return orderID, nil
}

func (r *postgresOrderRepository) GetOrder(ctx context.Context, orderID domain.OrderID) (domain.Order, error) {
	var doc []byte

	err := r.pool.QueryRow(ctx, `SELECT doc FROM orders WHERE id = $1`, orderID.Hex()).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Order{}, fmt.Errorf("pool.QueryRow: %w", domain.ErrNotFound)
		}
		return domain.Order{}, fmt.Errorf("pool.QueryRow: %w", err)
	}

	order, err := mapJSONOrderToDomain(orderID.Hex(), doc)
	if err != nil {
		return domain.Order{}, fmt.Errorf("mapJSONOrderToDomain: %w", err)
	}

	return order, nil
}

func (r *postgresOrderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, doc FROM orders ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}

	orders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Order, error) {
		var (
			id  string
			doc []byte
		)
		if err := row.Scan(&id, &doc); err != nil {
			return domain.Order{}, fmt.Errorf("row.Scan: %w", err)
		}
		return mapJSONOrderToDomain(id, doc)
	})
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}

	return orders, nil
}

func (r *postgresOrderRepository) UpdateOrderStatus(ctx context.Context, orderID domain.OrderID, status domain.OrderStatus, updatedAt time.Time) (int64, error) {
	const query = `
UPDATE orders
SET doc = doc || jsonb_build_object('status', $2::text, 'updated_at', $3::text)
WHERE id = $1 AND doc->>'status' IS DISTINCT FROM $2::text`

	cmdTag, err := r.pool.Exec(ctx, query, orderID.Hex(), string(status), updatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, fmt.Errorf("pool.Exec[update status]: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

func (r *postgresOrderRepository) DeleteOrder(ctx context.Context, orderID domain.OrderID) (int64, error) {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, orderID.Hex())
	if err != nil {
		return 0, fmt.Errorf("pool.Exec[delete]: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

func (r *postgresOrderRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `TRUNCATE TABLE orders`); err != nil {
		return fmt.Errorf("pool.Exec[truncate]: %w", err)
	}

	return nil
}

func mapDomainOrderToJSON(order domain.Order) jsonOrderDocument {
	return jsonOrderDocument{
		UserID: order.UserID,
		Items: lo.Map(order.Items, func(item domain.Item, _ int) jsonItemDocument {
			return jsonItemDocument{
				ProductID: item.ProductID,
				Name:      item.Name,
				Price:     item.Price,
				Quantity:  item.Quantity,
			}
		}),
		TotalPrice: order.TotalPrice,
		Status:     string(order.Status),
		CreatedAt:  order.CreatedAt.UTC(),
		UpdatedAt:  order.UpdatedAt.UTC(),
	}
}

func mapJSONOrderToDomain(id string, raw []byte) (domain.Order, error) {
	var o domain.Order

	orderID, err := domain.ParseOrderID(id)
	if err != nil {
		return o, fmt.Errorf("domain.ParseOrderID: %w", err)
	}

	var doc jsonOrderDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return o, fmt.Errorf("json.Unmarshal[%s]: %w", id, err)
	}

	return domain.Order{
		ID:     orderID,
		UserID: doc.UserID,
		Items: lo.Map(doc.Items, func(item jsonItemDocument, _ int) domain.Item {
			return domain.Item{
				ProductID: item.ProductID,
				Name:      item.Name,
				Price:     item.Price,
				Quantity:  item.Quantity,
			}
		}),
		TotalPrice: doc.TotalPrice,
		Status:     domain.OrderStatus(doc.Status),
		CreatedAt:  doc.CreatedAt.UTC(),
		UpdatedAt:  doc.UpdatedAt.UTC(),
	}, nil
}
