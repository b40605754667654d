package request

import (
	"github.com/shopspring/decimal"

	"bioinsight-quotes/internal/usecase/commands"
)

type CreateQuoteRequest struct {
	Title string `json:"title" binding:"required"`
}

type AddQuoteItemRequest struct {
	ProductName string          `json:"productName" binding:"required"`
	Brand       string          `json:"brand"`
	CatalogNo   string          `json:"catalogNo"`
	VendorName  string          `json:"vendorName"`
	Unit        string          `json:"unit"`
	Quantity    int             `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Currency    string          `json:"currency" binding:"required"`
	Note        string          `json:"note"`
}

func (r AddQuoteItemRequest) ToInput() commands.AddItemInput {
	return commands.AddItemInput{
		ProductName: r.ProductName,
		Brand:       r.Brand,
		CatalogNo:   r.CatalogNo,
		VendorName:  r.VendorName,
		Unit:        r.Unit,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		Currency:    r.Currency,
		Note:        r.Note,
	}
}

type UpdateQuoteItemRequest struct {
	Quantity  *int             `json:"quantity,omitempty"`
	UnitPrice *decimal.Decimal `json:"unitPrice,omitempty"`
	Note      *string          `json:"note,omitempty"`
}

func (r UpdateQuoteItemRequest) ToInput() commands.UpdateItemInput {
	return commands.UpdateItemInput{
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice,
		Note:      r.Note,
	}
}
