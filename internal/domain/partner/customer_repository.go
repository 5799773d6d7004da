package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByIDForTenant returns ErrCustomerNotFound when absent or foreign
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Customer, error)

	// FindByPhone finds a customer by phone within a tenant
	FindByPhone(ctx context.Context, tenantID uuid.UUID, phone string) (*Customer, error)

	// FindWithDues lists customers with a balance above zero, ordered by name
	FindWithDues(ctx context.Context, tenantID uuid.UUID) ([]Customer, error)

	// AddCredit adds amount to the balance of the (tenant, phone) customer,
	// creating it with that balance when it does not exist. The store's
	// unique (tenant_id, phone) constraint resolves concurrent first sales.
	AddCredit(ctx context.Context, tenantID uuid.UUID, name, phone string, amount decimal.Decimal) (*Customer, error)

	// ApplyPayment subtracts amount from the customer's balance in one statement
	// and returns the updated customer
	ApplyPayment(ctx context.Context, tenantID, id uuid.UUID, amount decimal.Decimal) (*Customer, error)
}
