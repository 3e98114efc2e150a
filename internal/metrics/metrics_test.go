package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorRecordsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRequest("admin_login", "POST", 200, 120*time.Millisecond)
	c.RecordRequest("admin_login", "POST", 200, 80*time.Millisecond)
	c.RecordRequest("sign_player", "PUT", 500, 30*time.Millisecond)
	// Transport failure: no response status
	c.RecordRequest("register_player", "POST", 0, 0)

	assert.Equal(t, float64(2), testutil.ToFloat64(c.requests.WithLabelValues("admin_login", "POST", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.requests.WithLabelValues("sign_player", "PUT", "500")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.requests.WithLabelValues("register_player", "POST", "0")))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "scoutctl_api_requests_total")
	assert.Contains(t, names, "scoutctl_api_request_duration_seconds")
}
