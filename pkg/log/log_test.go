package log

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceIDPrefersRequestID(t *testing.T) {
	assert.Equal(t, "01HZY5", TraceID("01HZY5"))
}

func TestTraceIDGeneratesUUID(t *testing.T) {
	for _, requestID := range []string{"", "unknown"} {
		traceID := TraceID(requestID)
		_, err := uuid.Parse(traceID)
		require.NoError(t, err, requestID)
	}
}
