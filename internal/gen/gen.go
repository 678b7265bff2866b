package gen

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

func SeedOnce() { gofakeit.Seed(time.Now().UnixNano()) }

// FakeProduct returns a POST /products body.
func FakeProduct() map[string]any {
	return map[string]any{
		"name":        gofakeit.ProductName(),
		"description": gofakeit.ProductDescription(),
		"price":       gofakeit.Price(1, 500),
	}
}

// FakeOrder returns a POST /orders body referencing productIDs. With no ids
// it invents between one and four references.
func FakeOrder(productIDs []string) map[string]any {
	if len(productIDs) == 0 {
		n := gofakeit.Number(1, 4)
		for i := 0; i < n; i++ {
			productIDs = append(productIDs, strings.ReplaceAll(gofakeit.UUID(), "-", ""))
		}
	}

	products := make([]any, 0, len(productIDs))
	var total float64
	for _, id := range productIDs {
		price := gofakeit.Price(1, 500)
		qty := gofakeit.Number(1, 3)
		total += price * float64(qty)
		products = append(products, map[string]any{
			"productId": id,
			"name":      gofakeit.ProductName(),
			"price":     price,
			"quantity":  qty,
		})
	}

	addr := gofakeit.Address()
	return map[string]any{
		"dateOrdered":     gofakeit.PastDate().UTC().Format(time.DateOnly),
		"total":           fmt.Sprintf("%.2f", total),
		"deliveryAddress": fmt.Sprintf("%s, %s %s", addr.Street, addr.City, addr.Zip),
		"orderReference":  "ORD-" + strings.ToUpper(gofakeit.LetterN(3)) + gofakeit.DigitN(6),
		"products":        products,
	}
}
