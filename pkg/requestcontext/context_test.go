package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	id "maricheck/pkg/domain"
)

func TestAccessorsDefaultToZeroValues(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, id.AdminID(0), AdminID(ctx))
	assert.Empty(t, Username(ctx))
	assert.Empty(t, RequestID(ctx))
	assert.Empty(t, ClientIP(ctx))
	assert.WithinDuration(t, time.Now(), Now(ctx), time.Second)
}

func TestInjectedValuesRoundTrip(t *testing.T) {
	fixed := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	ctx := WithAdmin(context.Background(), 7, "admin")
	ctx = WithRequestID(ctx, "req-1")
	ctx = WithTime(ctx, fixed)
	ctx = WithClientMetadata(ctx, "198.51.100.4", "curl/8.4.0")

	assert.Equal(t, id.AdminID(7), AdminID(ctx))
	assert.Equal(t, "admin", Username(ctx))
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Equal(t, fixed, Now(ctx))
	assert.Equal(t, "198.51.100.4", ClientIP(ctx))
	assert.Equal(t, "curl/8.4.0", UserAgent(ctx))
}
