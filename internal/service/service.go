package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"demo/catalog/internal/events"
	"demo/catalog/internal/model"
	"demo/catalog/internal/store"
	"demo/catalog/internal/validate"
)

// DefaultPublishTimeout bounds how long an insert waits on the event publisher.
const DefaultPublishTimeout = 2 * time.Second

var (
	ErrNotFound          = errors.New("not found")
	ErrUnknownCollection = errors.New("unknown collection")
)

type Service struct {
	docs    store.Documents
	history store.HistoryReader
	events  events.Publisher
	log     *slog.Logger
	newID   func() string

	publishTimeout time.Duration
}

func New(docs store.Documents, history store.HistoryReader, pub events.Publisher, logger *slog.Logger) *Service {
	if pub == nil {
		pub = events.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		docs:           docs,
		history:        history,
		events:         pub,
		log:            logger,
		newID:          NewID,
		publishTimeout: DefaultPublishTimeout,
	}
}

// NewID mints a record identifier: a random UUID in hex without dashes.
func NewID() string { return strings.ReplaceAll(uuid.NewString(), "-", "") }

func (s *Service) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := s.docs.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (model.Order, error) {
	o, ok, err := s.docs.GetOrder(ctx, id)
	if err != nil {
		return model.Order{}, err
	}
	if !ok {
		return model.Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	return o, nil
}

// GetOrderWithProducts returns the order with each product reference merged
// with its order_history row. A failing relational store does not fail the
// call: the products come back without history fields.
func (s *Service) GetOrderWithProducts(ctx context.Context, id string) (model.OrderProducts, error) {
	o, err := s.GetOrder(ctx, id)
	if err != nil {
		return model.OrderProducts{}, err
	}

	rows := []model.HistoryRow{}
	if ids := productIDs(o.Products); len(ids) > 0 {
		found, err := s.history.FindHistory(ctx, o.OrderReference, ids)
		if err != nil {
			s.log.Warn("order history unavailable, merging without it",
				slog.String("order_id", o.ID),
				slog.String("order_reference", o.OrderReference),
				slog.Any("error", err),
			)
		} else {
			rows = found
		}
	}

	return model.OrderProducts{Order: o, Products: Merge(o.Products, rows)}, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.docs.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (model.Product, error) {
	p, ok, err := s.docs.GetProduct(ctx, id)
	if err != nil {
		return model.Product{}, err
	}
	if !ok {
		return model.Product{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return p, nil
}

type Inserted struct {
	Table string
	ID    string
}

// Insert validates payload for collection c and stores it under a fresh id.
// Validation failures match validate.ErrInvalid.
func (s *Service) Insert(ctx context.Context, c model.Collection, payload map[string]any) (Inserted, error) {
	var (
		id     string
		record any
		err    error
	)
	switch c {
	case model.CollectionProducts:
		var p model.Product
		if p, err = validate.ProductPayload(payload); err != nil {
			return Inserted{}, err
		}
		p.ID = s.newID()
		id, record = p.ID, p
		err = s.docs.PutProduct(ctx, p)
	case model.CollectionOrders:
		var o model.Order
		if o, err = validate.OrderPayload(payload); err != nil {
			return Inserted{}, err
		}
		o.ID = s.newID()
		id, record = o.ID, o
		err = s.docs.PutOrder(ctx, o)
	default:
		return Inserted{}, fmt.Errorf("%q: %w", c, ErrUnknownCollection)
	}
	if err != nil {
		return Inserted{}, err
	}

	table := s.docs.TableName(c)
	s.log.Info("record inserted", slog.String("table", table), slog.String("id", id))

	// The record is stored; a client disconnect must not drop its event.
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()
	if err := s.events.Publish(pctx, events.Event{Collection: c, ID: id, Payload: record}); err != nil {
		s.log.Warn("publish insert event failed",
			slog.String("table", table),
			slog.String("id", id),
			slog.Any("error", err),
		)
	}
	return Inserted{Table: table, ID: id}, nil
}
