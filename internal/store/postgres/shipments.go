package postgres

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"tatdocs/internal/core/apperror"
	"tatdocs/internal/store"
)

var tracer = otel.Tracer("tatdocs/store")

const schema = `
CREATE TABLE IF NOT EXISTS saved_shipments (
	id                    TEXT PRIMARY KEY,
	invoice_number        TEXT NOT NULL,
	customer_name         TEXT NOT NULL,
	ship_date             TEXT NOT NULL,
	total_value           NUMERIC NOT NULL,
	total_gross_weight_kg DOUBLE PRECISION NOT NULL,
	item_count            INTEGER NOT NULL,
	products              TEXT[] NOT NULL,
	created_at            TIMESTAMPTZ NOT NULL,
	form_data             BYTEA NOT NULL,
	form_compression      TEXT NOT NULL DEFAULT 'none'
);
CREATE INDEX IF NOT EXISTS idx_saved_shipments_created_at
	ON saved_shipments (created_at DESC);
`

var selectCols = []string{
	"id", "invoice_number", "customer_name", "ship_date",
	"total_value", "total_gross_weight_kg", "item_count", "products",
	"created_at", "form_data", "form_compression",
}

// shipmentRow is the scan target; the form payload stays opaque until
// the codec decodes it.
type shipmentRow struct {
	store.SavedShipment
	FormPayload     []byte          `db:"form_data"`
	FormCompression CompressionAlgo `db:"form_compression"`
}

// ShipmentStore is the PostgreSQL store.Store implementation.
type ShipmentStore struct {
	pool  *pgxpool.Pool
	codec *payloadCodec
}

// NewShipmentStore creates the store and ensures its schema exists.
func NewShipmentStore(ctx context.Context, pool *pgxpool.Pool) (*ShipmentStore, error) {
	codec, err := newPayloadCodec()
	if err != nil {
		return nil, err
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		return nil, apperror.NewStorage("migrate", err)
	}
	return &ShipmentStore{pool: pool, codec: codec}, nil
}

func (r *ShipmentStore) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *ShipmentStore) Save(ctx context.Context, s store.SavedShipment) error {
	ctx, span := tracer.Start(ctx, "store.save",
		trace.WithAttributes(attribute.String("shipment.id", s.ID)))
	defer span.End()

	payload, algo, err := r.codec.Encode(s.FormData)
	if err != nil {
		return apperror.NewStorage("save", err)
	}

	q := r.builder().
		Insert("saved_shipments").
		Columns(selectCols...).
		Values(s.ID, s.InvoiceNumber, s.CustomerName, s.ShipDate,
			s.TotalValue, s.TotalGrossWeightKg, s.ItemCount, s.Products,
			s.CreatedAt, payload, algo)

	sql, args, err := q.ToSql()
	if err != nil {
		return apperror.NewStorage("save", err)
	}
	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return apperror.NewStorage("save", err)
	}
	return nil
}

func (r *ShipmentStore) List(ctx context.Context) ([]store.SavedShipment, error) {
	ctx, span := tracer.Start(ctx, "store.list")
	defer span.End()

	sql, args, err := r.builder().
		Select(selectCols...).
		From("saved_shipments").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, apperror.NewStorage("list", err)
	}

	var rows []shipmentRow
	if err := pgxscan.Select(ctx, r.pool, &rows, sql, args...); err != nil {
		return nil, apperror.NewStorage("list", err)
	}

	out := make([]store.SavedShipment, 0, len(rows))
	for _, row := range rows {
		s, err := r.decode(row)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *ShipmentStore) Load(ctx context.Context, shipmentID string) (store.SavedShipment, error) {
	ctx, span := tracer.Start(ctx, "store.load",
		trace.WithAttributes(attribute.String("shipment.id", shipmentID)))
	defer span.End()

	sql, args, err := r.builder().
		Select(selectCols...).
		From("saved_shipments").
		Where(squirrel.Eq{"id": shipmentID}).
		ToSql()
	if err != nil {
		return store.SavedShipment{}, apperror.NewStorage("load", err)
	}

	var row shipmentRow
	if err := pgxscan.Get(ctx, r.pool, &row, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.SavedShipment{}, apperror.NewNotFound("shipment", shipmentID)
		}
		return store.SavedShipment{}, apperror.NewStorage("load", err)
	}
	return r.decode(row)
}

func (r *ShipmentStore) Delete(ctx context.Context, shipmentID string) error {
	ctx, span := tracer.Start(ctx, "store.delete",
		trace.WithAttributes(attribute.String("shipment.id", shipmentID)))
	defer span.End()

	sql, args, err := r.builder().
		Delete("saved_shipments").
		Where(squirrel.Eq{"id": shipmentID}).
		ToSql()
	if err != nil {
		return apperror.NewStorage("delete", err)
	}

	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return apperror.NewStorage("delete", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("shipment", shipmentID)
	}
	return nil
}

func (r *ShipmentStore) decode(row shipmentRow) (store.SavedShipment, error) {
	form, err := r.codec.Decode(row.FormPayload, row.FormCompression)
	if err != nil {
		return store.SavedShipment{}, apperror.NewStorage("decode", err)
	}
	s := row.SavedShipment
	s.FormData = form
	return s, nil
}

var _ store.Store = (*ShipmentStore)(nil)
