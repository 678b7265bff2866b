package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"demo/catalog/internal/model"
)

// ErrDuplicateID is returned by Put* when the id is already taken.
var ErrDuplicateID = errors.New("id already exists")

// DynamoAPI is the subset of the DynamoDB client the catalog uses.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type Tables struct {
	Orders   string
	Products string
}

type DocRepo struct {
	api    DynamoAPI
	tables Tables
	log    *slog.Logger
}

var _ Documents = (*DocRepo)(nil)

func NewDocRepo(api DynamoAPI, tables Tables, logger *slog.Logger) *DocRepo {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocRepo{api: api, tables: tables, log: logger}
}

func (r *DocRepo) TableName(c model.Collection) string {
	switch c {
	case model.CollectionOrders:
		return r.tables.Orders
	case model.CollectionProducts:
		return r.tables.Products
	}
	return ""
}

// orderItem is the stored shape of an order: every attribute is a string and
// the product list is kept as JSON text.
type orderItem struct {
	ID              string `dynamodbav:"id"`
	DateOrdered     string `dynamodbav:"dateOrdered"`
	Total           string `dynamodbav:"total"`
	DeliveryAddress string `dynamodbav:"deliveryAddress"`
	OrderReference  string `dynamodbav:"orderReference"`
	Products        string `dynamodbav:"products"`
}

type productItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description"`
	Price       string `dynamodbav:"price"`
}

// EncodeProducts renders a product list the way it is stored on an order.
func EncodeProducts(refs []model.ProductRef) (string, error) {
	if refs == nil {
		refs = []model.ProductRef{}
	}
	b, err := json.Marshal(refs)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeProducts is the inverse of EncodeProducts. Numbers keep their literal text.
func DecodeProducts(s string) ([]model.ProductRef, error) {
	refs := []model.ProductRef{}
	if s == "" {
		return refs, nil
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()
	if err := dec.Decode(&refs); err != nil {
		return nil, err
	}
	if refs == nil {
		refs = []model.ProductRef{}
	}
	return refs, nil
}

// toModel returns the order's scalar fields even when the product list cannot be read.
func (it orderItem) toModel() (model.Order, error) {
	o := model.Order{
		ID:              it.ID,
		DateOrdered:     it.DateOrdered,
		Total:           it.Total,
		DeliveryAddress: it.DeliveryAddress,
		OrderReference:  it.OrderReference,
	}
	refs, err := DecodeProducts(it.Products)
	if err != nil {
		return o, fmt.Errorf("order %s: decode products: %w", it.ID, err)
	}
	o.Products = refs
	return o, nil
}

func (r *DocRepo) ListOrders(ctx context.Context) ([]model.Order, error) {
	items, err := r.scan(ctx, r.tables.Orders)
	if err != nil {
		return nil, err
	}
	out := make([]model.Order, 0, len(items))
	for _, raw := range items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, fmt.Errorf("unmarshal order: %w", err)
		}
		o, err := it.toModel()
		if err != nil {
			// One unreadable product list must not hide the rest of the table.
			r.log.Warn("order has unreadable products, listing it without them",
				slog.String("table", r.tables.Orders),
				slog.String("order_id", it.ID),
				slog.Any("error", err),
			)
			o.Products = []model.ProductRef{}
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *DocRepo) GetOrder(ctx context.Context, id string) (model.Order, bool, error) {
	raw, err := r.get(ctx, r.tables.Orders, id)
	if err != nil || raw == nil {
		return model.Order{}, false, err
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return model.Order{}, false, fmt.Errorf("unmarshal order: %w", err)
	}
	o, err := it.toModel()
	if err != nil {
		return model.Order{}, false, err
	}
	return o, true, nil
}

func (r *DocRepo) PutOrder(ctx context.Context, o model.Order) error {
	products, err := EncodeProducts(o.Products)
	if err != nil {
		return fmt.Errorf("encode products: %w", err)
	}
	return r.put(ctx, r.tables.Orders, orderItem{
		ID:              o.ID,
		DateOrdered:     o.DateOrdered,
		Total:           o.Total,
		DeliveryAddress: o.DeliveryAddress,
		OrderReference:  o.OrderReference,
		Products:        products,
	})
}

func (r *DocRepo) ListProducts(ctx context.Context) ([]model.Product, error) {
	items, err := r.scan(ctx, r.tables.Products)
	if err != nil {
		return nil, err
	}
	out := make([]model.Product, 0, len(items))
	for _, raw := range items {
		var it productItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, fmt.Errorf("unmarshal product: %w", err)
		}
		out = append(out, model.Product(it))
	}
	return out, nil
}

func (r *DocRepo) GetProduct(ctx context.Context, id string) (model.Product, bool, error) {
	raw, err := r.get(ctx, r.tables.Products, id)
	if err != nil || raw == nil {
		return model.Product{}, false, err
	}
	var it productItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return model.Product{}, false, fmt.Errorf("unmarshal product: %w", err)
	}
	return model.Product(it), true, nil
}

func (r *DocRepo) PutProduct(ctx context.Context, p model.Product) error {
	return r.put(ctx, r.tables.Products, productItem(p))
}

func (r *DocRepo) get(ctx context.Context, table, id string) (map[string]types.AttributeValue, error) {
	out, err := r.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", table, id, err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return out.Item, nil
}

// scan reads the whole table, following LastEvaluatedKey until exhausted.
func (r *DocRepo) scan(ctx context.Context, table string) ([]map[string]types.AttributeValue, error) {
	var (
		items []map[string]types.AttributeValue
		start map[string]types.AttributeValue
	)
	for {
		out, err := r.api.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: start,
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		start = out.LastEvaluatedKey
	}
}

func (r *DocRepo) put(ctx context.Context, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("marshal %s item: %w", table, err)
	}
	cond, err := expression.NewBuilder().
		WithCondition(expression.AttributeNotExists(expression.Name("id"))).
		Build()
	if err != nil {
		return fmt.Errorf("build condition: %w", err)
	}
	_, err = r.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(table),
		Item:                      av,
		ConditionExpression:       cond.Condition(),
		ExpressionAttributeNames:  cond.Names(),
		ExpressionAttributeValues: cond.Values(),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return fmt.Errorf("put %s: %w", table, ErrDuplicateID)
		}
		return fmt.Errorf("put %s: %w", table, err)
	}
	return nil
}
