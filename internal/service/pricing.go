package service

import (
	"mini-orders/internal/model"

	"github.com/shopspring/decimal"
)

// pricedLines is a requested line set resolved against the catalog.
type pricedLines struct {
	lines   []model.OrderLine
	details []model.OrderLineDetail
	total   decimal.Decimal
}

// uniqueItemIDs returns the distinct item IDs referenced by reqs in first-seen order.
func uniqueItemIDs(reqs []model.OrderLineRequest) []int64 {
	seen := make(map[int64]struct{}, len(reqs))
	ids := make([]int64, 0, len(reqs))
	for _, r := range reqs {
		if _, ok := seen[r.ItemID]; ok {
			continue
		}
		seen[r.ItemID] = struct{}{}
		ids = append(ids, r.ItemID)
	}
	return ids
}

// priceLines prices every requested line with the catalog price of its item.
// Lines referencing the same item are kept and priced separately. When an
// item is not in catalog, the ID of the first such line is returned with ok false.
func priceLines(orderID string, reqs []model.OrderLineRequest, catalog map[int64]model.Item) (priced pricedLines, missing int64, ok bool) {
	priced = pricedLines{
		lines:   make([]model.OrderLine, 0, len(reqs)),
		details: make([]model.OrderLineDetail, 0, len(reqs)),
		total:   decimal.Zero,
	}

	for _, r := range reqs {
		item, found := catalog[r.ItemID]
		if !found {
			return pricedLines{}, r.ItemID, false
		}

		priced.lines = append(priced.lines, model.OrderLine{
			OrderID:  orderID,
			ItemID:   r.ItemID,
			Quantity: r.Quantity,
		})
		priced.details = append(priced.details, model.OrderLineDetail{
			ItemID:      item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Quantity:    r.Quantity,
		})
		priced.total = priced.total.Add(item.Price.Mul(decimal.NewFromInt(int64(r.Quantity))))
	}

	return priced, 0, true
}
