package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kahawa-labs/beanmarket/gen/ent"
	"github.com/kahawa-labs/beanmarket/gen/ent/supplier"
)

type SupplierRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Supplier, error)
	GetOrCreateByName(ctx context.Context, name, defaultCurrency string) (*ent.Supplier, error)
	ListSuppliers(ctx context.Context) ([]*ent.Supplier, error)
}

type supplierRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSupplierRepository(client *ent.Client, logger *slog.Logger) SupplierRepository {
	return &supplierRepository{
		client: client,
		logger: logger,
	}
}

func (r *supplierRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Supplier, error) {
	return r.client.Supplier.
		Query().
		Where(supplier.ID(id)).
		Only(ctx)
}

func (r *supplierRepository) GetOrCreateByName(ctx context.Context, name, defaultCurrency string) (*ent.Supplier, error) {
	s, err := r.client.Supplier.Query().Where(supplier.Name(name)).First(ctx)
	if err == nil {
		return s, nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("failed to look up supplier", "name", name, "error", err)
		return nil, err
	}

	s, err = r.client.Supplier.Create().
		SetName(name).
		SetDefaultCurrency(defaultCurrency).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create supplier", "name", name, "currency", defaultCurrency, "error", err)
		return nil, err
	}
	r.logger.Info("supplier created", "supplier_id", s.ID, "name", name)
	return s, nil
}

func (r *supplierRepository) ListSuppliers(ctx context.Context) ([]*ent.Supplier, error) {
	slist, err := r.client.Supplier.Query().Order(supplier.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list suppliers", "error", err)
		return nil, err
	}
	return slist, nil
}
