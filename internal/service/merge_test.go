package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"demo/catalog/internal/model"
)

func flag(b bool) *bool { return &b }

func TestMerge_MissingRow(t *testing.T) {
	refs := []model.ProductRef{{"productId": "P1"}, {"productId": "P2"}}
	rows := []model.HistoryRow{{ProductID: "P1", OrderReference: "R1", OrderPicked: flag(true)}}

	got := Merge(refs, rows)

	require.Len(t, got, 2)
	require.Equal(t, map[string]any{
		"productId":        "P1",
		"product_id":       "P1",
		"order_reference":  "R1",
		"order_picked":     true,
	}, got[0])
	require.Equal(t, map[string]any{"productId": "P2"}, got[1])
}

func TestMerge_KeyedNotPositional(t *testing.T) {
	refs := []model.ProductRef{{"productId": "P1"}, {"productId": "P2"}, {"productId": "P3"}}
	rows := []model.HistoryRow{
		{ProductID: "P3", OrderShipped: flag(true)},
		{ProductID: "P1", OrderPicked: flag(true)},
	}

	got := Merge(refs, rows)

	require.Len(t, got, 3)
	require.Equal(t, "P1", got[0]["productId"])
	require.Equal(t, true, got[0]["order_picked"])
	require.NotContains(t, got[0], "order_shipped")
	require.NotContains(t, got[1], "product_id")
	require.Equal(t, "P3", got[2]["productId"])
	require.Equal(t, true, got[2]["order_shipped"])
}

func TestMerge_Cardinality(t *testing.T) {
	refs := []model.ProductRef{{"productId": "A"}, {"productId": "B"}}
	for n := 0; n <= 4; n++ {
		rows := make([]model.HistoryRow, 0, n)
		for i := 0; i < n; i++ {
			rows = append(rows, model.HistoryRow{ProductID: string(rune('A' + i))})
		}
		require.Len(t, Merge(refs, rows), len(refs), "rows=%d", n)
	}
	require.Empty(t, Merge(nil, []model.HistoryRow{{ProductID: "A"}}))
}

func TestMerge_RowWinsOnCollision(t *testing.T) {
	refs := []model.ProductRef{{"productId": "P1", "order_picked": "from-ref", "name": "Mug"}}
	rows := []model.HistoryRow{{ProductID: "P1", OrderPicked: flag(true)}}

	got := Merge(refs, rows)

	require.Equal(t, true, got[0]["order_picked"])
	require.Equal(t, "Mug", got[0]["name"])
}

func TestMerge_FirstDuplicateRowWins(t *testing.T) {
	refs := []model.ProductRef{{"productId": "P1"}}
	rows := []model.HistoryRow{
		{ProductID: "P1", OrderPicked: flag(true)},
		{ProductID: "P1", ReturnRequested: flag(true)},
	}

	got := Merge(refs, rows)

	require.Equal(t, true, got[0]["order_picked"])
	require.NotContains(t, got[0], "return_requested")
}

func TestMerge_RefWithoutProductID(t *testing.T) {
	refs := []model.ProductRef{{"name": "loose"}, {"productId": 7}}
	rows := []model.HistoryRow{{ProductID: ""}}

	got := Merge(refs, rows)

	require.Equal(t, []map[string]any{{"name": "loose"}, {"productId": 7}}, got)
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	ref := model.ProductRef{"productId": "P1"}
	Merge([]model.ProductRef{ref}, []model.HistoryRow{{ProductID: "P1", OrderPicked: flag(true)}})
	require.Equal(t, model.ProductRef{"productId": "P1"}, ref)
}

func TestMerge_NullFlagsLeftOut(t *testing.T) {
	refs := []model.ProductRef{{"productId": "P1", "order_shipped": "from-ref"}}
	rows := []model.HistoryRow{{ProductID: "P1", OrderReference: "R1", OrderPicked: flag(false)}}

	got := Merge(refs, rows)

	require.Equal(t, []map[string]any{{
		"productId":       "P1",
		"product_id":      "P1",
		"order_reference": "R1",
		"order_picked":    false,
		"order_shipped":   "from-ref",
	}}, got)
}
