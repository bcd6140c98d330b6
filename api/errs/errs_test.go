package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_MessageNamesOperationAndID(t *testing.T) {
	cause := errors.New("boom")
	err := Remote("retrieve", "product", "prod_123", cause)
	err.Detail = "No such product: 'prod_123'"

	assert.Equal(t, "retrieve product prod_123: No such product: 'prod_123'", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrRemoteCall)
	assert.NotErrorIs(t, err, ErrVerification)
}

func TestError_FallsBackToCauseWithoutDetail(t *testing.T) {
	err := Remote("list", "products", "", errors.New("dial tcp: connection refused"))
	assert.Equal(t, "list products: dial tcp: connection refused", err.Error())
}

func TestError_KindOnly(t *testing.T) {
	assert.Equal(t, "config", ErrConfig.Error())
}

func TestError_IsSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("bootstrap: %w", Config("missing required environment variable: Stripe Secret Key", nil))
	assert.ErrorIs(t, wrapped, ErrConfig)
	assert.Equal(t, KindConfig, KindOf(wrapped))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
}

func TestIsNotFound(t *testing.T) {
	byStatus := Remote("retrieve", "price", "price_1", nil)
	byStatus.Status = http.StatusNotFound
	assert.True(t, IsNotFound(byStatus))

	byCode := Remote("retrieve", "coupon", "SUMMER", nil)
	byCode.Code = "resource_missing"
	assert.True(t, IsNotFound(fmt.Errorf("outer: %w", byCode)))

	invalid := Invalid("retrieve", "product", "", errors.New("id is required"))
	invalid.Status = http.StatusNotFound
	assert.False(t, IsNotFound(invalid))

	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestVerification(t *testing.T) {
	err := Verification(errors.New("webhook had no valid signature"))
	assert.Equal(t, "verify webhook signature: webhook had no valid signature", err.Error())
	assert.ErrorIs(t, err, ErrVerification)
}

func TestStorage(t *testing.T) {
	cause := errors.New("connection refused")
	err := Storage("record", "webhook event", "evt_1", cause)
	assert.ErrorIs(t, err, ErrStorage)
	assert.NotErrorIs(t, err, ErrRemoteCall)
	assert.Equal(t, KindStorage, KindOf(err))
	assert.Equal(t, "record webhook event evt_1: connection refused", err.Error())
}
