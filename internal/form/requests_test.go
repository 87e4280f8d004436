package form

import (
	"net/url"
	"testing"
	"time"

	"github.com/MihaiKuro/asd/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceSummaryResolve(t *testing.T) {
	tr, err := ServiceSummaryRequestFromQuery(url.Values{}).Resolve(time.UTC)
	require.NoError(t, err)
	assert.Nil(t, tr)

	tr, err = ServiceSummaryRequestFromQuery(url.Values{"startDate": {"2024-01-01"}}).Resolve(time.UTC)
	require.NoError(t, err)
	assert.Nil(t, tr)

	tr, err = ServiceSummaryRequestFromQuery(url.Values{
		"startDate": {"2024-01-01"},
		"endDate":   {"2024-01-02"},
	}).Resolve(nil)
	require.NoError(t, err)
	require.NotNil(t, tr)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), tr.From)
	assert.Equal(t, time.Date(2024, 1, 2, 23, 59, 59, int(999*time.Millisecond), time.UTC), tr.To)

	_, err = ServiceSummaryRequestFromQuery(url.Values{"startDate": {"01/02/2024"}}).Resolve(time.UTC)
	assert.True(t, IsValidationError(err))
}

func TestCreateOrderRequestValidate(t *testing.T) {
	valid := CreateOrderRequest{
		UserID: 1,
		Items:  []OrderItemRequest{{ProductID: 2, Quantity: 3}},
	}
	assert.NoError(t, valid.Validate())
	assert.Equal(t, &entity.OrderNew{
		UserID: 1,
		Items:  []entity.OrderItemInsert{{ProductID: 2, Quantity: 3}},
	}, valid.ToEntity())

	cases := map[string]CreateOrderRequest{
		"missing user":  {Items: valid.Items},
		"no items":      {UserID: 1},
		"zero quantity": {UserID: 1, Items: []OrderItemRequest{{ProductID: 2}}},
		"bad product":   {UserID: 1, Items: []OrderItemRequest{{ProductID: -4, Quantity: 1}}},
	}
	for name, r := range cases {
		t.Run(name, func(t *testing.T) {
			err := r.Validate()
			assert.True(t, IsValidationError(err), "%v", err)
		})
	}
}

func TestSetOrderStatusRequestValidate(t *testing.T) {
	r := SetOrderStatusRequest{OrderID: "12", Status: "Shipped"}
	require.NoError(t, r.Validate())
	assert.Equal(t, 12, r.ID())
	assert.Equal(t, entity.OrderStatusShipped, r.OrderStatus())

	for _, bad := range []SetOrderStatusRequest{
		{OrderID: "12", Status: "shipped"},
		{OrderID: "12", Status: ""},
		{OrderID: "abc", Status: "Shipped"},
		{OrderID: "0", Status: "Shipped"},
	} {
		assert.True(t, IsValidationError(bad.Validate()), "%+v", bad)
	}
}

func TestGetOrderByIDRequestValidate(t *testing.T) {
	r := &GetOrderByIDRequest{OrderID: "42"}
	assert.NoError(t, r.Validate())
	assert.Equal(t, 42, r.ID())

	for _, id := range []string{"", "0", "-3", "4x"} {
		r := &GetOrderByIDRequest{OrderID: id}
		assert.True(t, IsValidationError(r.Validate()), id)
	}
}
