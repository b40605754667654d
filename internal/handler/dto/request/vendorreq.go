package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bioinsight-quotes/internal/usecase/commands"
)

type VendorTargetRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

type SendVendorRequestsRequest struct {
	Vendors       []VendorTargetRequest `json:"vendors" binding:"required,min=1,dive"`
	ExpiresInDays int                   `json:"expiresInDays"`
}

func (r SendVendorRequestsRequest) ToInput() commands.SendToVendorsInput {
	targets := make([]commands.VendorTarget, 0, len(r.Vendors))
	for _, v := range r.Vendors {
		targets = append(targets, commands.VendorTarget{Email: v.Email, Name: v.Name})
	}
	return commands.SendToVendorsInput{
		Vendors:       targets,
		ExpiresInDays: r.ExpiresInDays,
	}
}

type RespondItemRequest struct {
	QuoteItemID  uuid.UUID       `json:"quoteItemId" binding:"required"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Currency     string          `json:"currency" binding:"required"`
	LeadTimeDays int             `json:"leadTimeDays"`
	MOQ          *int32          `json:"moq,omitempty"`
	Note         *string         `json:"note,omitempty"`
}

type VendorRespondRequest struct {
	Items []RespondItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r VendorRespondRequest) ToInput() []commands.RespondItemInput {
	items := make([]commands.RespondItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, commands.RespondItemInput{
			QuoteItemID:  it.QuoteItemID,
			UnitPrice:    it.UnitPrice,
			Currency:     it.Currency,
			LeadTimeDays: it.LeadTimeDays,
			MOQ:          it.MOQ,
			Note:         it.Note,
		})
	}
	return items
}
