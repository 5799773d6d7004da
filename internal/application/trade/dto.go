package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vyapar/backend/internal/domain/trade"
)

// SaleItemRequest is one cart line
type SaleItemRequest struct {
	ProductID uuid.UUID        `json:"productId" swaggertype:"string" format:"uuid"`
	Name      string           `json:"name" example:"Parle-G 100g"`
	Price     *decimal.Decimal `json:"price" binding:"required" swaggertype:"number" example:"10"`
	Quantity  int              `json:"quantity" binding:"min=1" example:"2"`
}

// CreateSaleRequest is the checkout payload
type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	TotalAmount   *decimal.Decimal  `json:"totalAmount" binding:"required" swaggertype:"number" example:"20"`
	PaymentMethod string            `json:"paymentMethod" binding:"required,payment_method" enums:"Cash,UPI,Card,Udhaar" example:"Cash"`
	CustomerName  string            `json:"customerName"`
	CustomerPhone string            `json:"customerPhone"`
	Discount      *decimal.Decimal  `json:"discount" swaggertype:"number"`
	TaxRate       *decimal.Decimal  `json:"taxRate" swaggertype:"number"`
}

func (r CreateSaleRequest) toDraft() trade.SaleDraft {
	items := make([]trade.SaleItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = trade.SaleItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     orZero(it.Price),
			Quantity:  it.Quantity,
		}
	}
	return trade.SaleDraft{
		Items:         items,
		TotalAmount:   orZero(r.TotalAmount),
		PaymentMethod: trade.PaymentMethod(r.PaymentMethod),
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Discount:      orZero(r.Discount),
		TaxRate:       orZero(r.TaxRate),
	}
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// SaleItemResponse is a line as recorded on the bill
type SaleItemResponse struct {
	ProductID uuid.UUID       `json:"productId" swaggertype:"string" format:"uuid"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price" swaggertype:"number"`
	Quantity  int             `json:"quantity"`
}

// SaleResponse represents a recorded sale
type SaleResponse struct {
	ID            uuid.UUID          `json:"_id" swaggertype:"string" format:"uuid"`
	TenantID      uuid.UUID          `json:"user" swaggertype:"string" format:"uuid"`
	BillNumber    int64              `json:"billNumber" example:"101"`
	Items         []SaleItemResponse `json:"items"`
	TotalAmount   decimal.Decimal    `json:"totalAmount" swaggertype:"number"`
	PaymentMethod string             `json:"paymentMethod"`
	CustomerName  string             `json:"customerName,omitempty"`
	CustomerPhone string             `json:"customerPhone,omitempty"`
	Discount      decimal.Decimal    `json:"discount" swaggertype:"number"`
	TaxRate       decimal.Decimal    `json:"taxRate" swaggertype:"number"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// SaleRecordedResponse is the body returned by checkout
type SaleRecordedResponse struct {
	Message string       `json:"message"`
	Sale    SaleResponse `json:"sale"`
}

// ToSaleResponse converts a domain sale to its response
func ToSaleResponse(s *trade.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, it := range s.Items {
		items[i] = SaleItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		}
	}
	return SaleResponse{
		ID:            s.ID,
		TenantID:      s.TenantID,
		BillNumber:    s.BillNumber,
		Items:         items,
		TotalAmount:   s.TotalAmount,
		PaymentMethod: s.PaymentMethod.String(),
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
		Discount:      s.Discount,
		TaxRate:       s.TaxRate,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
