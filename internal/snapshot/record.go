package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Wire form of the snapshot: one JSON document holding the whole cart.
// Currency travels as its ISO code, everything else as the domain carries it.
type cartRecord struct {
	Lines []lineRecord `json:"lines"`
}

type lineRecord struct {
	ProductID     uuid.UUID       `json:"productId"`
	Title         string          `json:"title"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	PriceCurrency string          `json:"currency"`
	ImageRef      string          `json:"imageRef"`
	Quantity      int             `json:"quantity"`
}

func marshalCart(cart domain.Cart) ([]byte, error) {
	record := cartRecord{Lines: make([]lineRecord, 0, len(cart.Lines))}

	for _, line := range cart.Lines {
		record.Lines = append(record.Lines, lineRecord{
			ProductID:     line.ProductID,
			Title:         line.Title,
			UnitPrice:     line.Price.Amount,
			PriceCurrency: line.Price.Currency.String(),
			ImageRef:      line.ImageRef,
			Quantity:      line.Quantity,
		})
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return payload, nil
}

// unmarshalCart rejects payloads that do not parse back into a valid cart;
// callers treat any error as "no snapshot".
func unmarshalCart(payload []byte) (domain.Cart, error) {
	var record cartRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return domain.Cart{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	cart := domain.Cart{}
	for _, line := range record.Lines {
		mapped, err := mapLineRecordToDomain(line)
		if err != nil {
			return domain.Cart{}, fmt.Errorf("mapLineRecordToDomain: %w", err)
		}

		if _, dup := cart.Find(mapped.ProductID); dup {
			return domain.Cart{}, fmt.Errorf("duplicate productId %s", mapped.ProductID)
		}

		cart = cart.WithLine(mapped)
	}

	return cart, nil
}

func mapLineRecordToDomain(record lineRecord) (domain.CartLine, error) {
	if record.Quantity < 1 {
		return domain.CartLine{}, fmt.Errorf("quantity[%d] is below 1", record.Quantity)
	}

	parsedCurrency, err := currency.ParseISO(record.PriceCurrency)
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("currency[%s] is not valid: %w", record.PriceCurrency, err)
	}

	return domain.CartLine{
		ProductID: record.ProductID,
		Title:     record.Title,
		Price:     domain.Money{Amount: record.UnitPrice, Currency: parsedCurrency},
		ImageRef:  record.ImageRef,
		Quantity:  record.Quantity,
	}, nil
}
