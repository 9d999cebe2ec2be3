package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nikolayk812/orderdocs/internal/domain"
	"github.com/nikolayk812/orderdocs/internal/port"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const ordersCollection = "orders"

type mongoOrderRepository struct {
	coll *mongo.Collection
}

func NewMongoOrder(db *mongo.Database) port.OrderRepository {
	return &mongoOrderRepository{
		coll: db.Collection(ordersCollection),
	}
}

type orderDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     string             `bson:"user_id"`
	Items      []itemDocument     `bson:"items"`
	TotalPrice float64            `bson:"total_price"`
	Status     string             `bson:"status"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

type itemDocument struct {
	ProductID string  `bson:"product_id"`
	Name      string  `bson:"name"`
	Price     float64 `bson:"price"`
	Quantity  int     `bson:"quantity"`
}

func (r *mongoOrderRepository) InsertOrder(ctx context.Context, order domain.Order) (domain.OrderID, error) {
	doc := mapDomainOrderToMongo(order)
	// the store assigns the id
	doc.ID = primitive.NilObjectID

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return domain.NilOrderID, fmt.Errorf("coll.InsertOne: %w", err)
	}

	orderID, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return domain.NilOrderID, fmt.Errorf("unexpected inserted id type: %T", res.InsertedID)
	}

	return orderID, nil
}

func (r *mongoOrderRepository) GetOrder(ctx context.Context, orderID domain.OrderID) (domain.Order, error) {
	var doc orderDocument

	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: orderID}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Order{}, fmt.Errorf("coll.FindOne: %w", domain.ErrNotFound)
		}
		return domain.Order{}, fmt.Errorf("coll.FindOne: %w", err)
	}

	return mapMongoOrderToDomain(doc), nil
}

func (r *mongoOrderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("coll.Find: %w", err)
	}

	var docs []orderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("cursor.All: %w", err)
	}

	return lo.Map(docs, func(doc orderDocument, _ int) domain.Order {
		return mapMongoOrderToDomain(doc)
	}), nil
}

func (r *mongoOrderRepository) UpdateOrderStatus(ctx context.Context, orderID domain.OrderID, status domain.OrderStatus, updatedAt time.Time) (int64, error) {
	filter := bson.D{
		{Key: "_id", Value: orderID},
		{Key: "status", Value: bson.D{{Key: "$ne", Value: string(status)}}},
	}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: string(status)},
		{Key: "updated_at", Value: updatedAt},
	}}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("coll.UpdateOne: %w", err)
	}

	return res.ModifiedCount, nil
}

func (r *mongoOrderRepository) DeleteOrder(ctx context.Context, orderID domain.OrderID) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: orderID}})
	if err != nil {
		return 0, fmt.Errorf("coll.DeleteOne: %w", err)
	}

	return res.DeletedCount, nil
}

func (r *mongoOrderRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("coll.DeleteMany: %w", err)
	}

	return nil
}

func mapDomainOrderToMongo(order domain.Order) orderDocument {
	return orderDocument{
		ID:     order.ID,
		UserID: order.UserID,
		// lo.Map never returns nil, so "items" is always stored as an array
		Items: lo.Map(order.Items, func(item domain.Item, _ int) itemDocument {
			return itemDocument{
				ProductID: item.ProductID,
				Name:      item.Name,
				Price:     item.Price,
				Quantity:  item.Quantity,
			}
		}),
		TotalPrice: order.TotalPrice,
		Status:     string(order.Status),
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}
}

func mapMongoOrderToDomain(doc orderDocument) domain.Order {
	return domain.Order{
		ID:     doc.ID,
		UserID: doc.UserID,
		Items: lo.Map(doc.Items, func(item itemDocument, _ int) domain.Item {
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
	}
}
