package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	audit "maricheck/pkg/platform/audit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"
)

type recordingProducer struct {
	records []*kgo.Record
	err     error
}

func (p *recordingProducer) ProduceSync(_ context.Context, rs ...*kgo.Record) kgo.ProduceResults {
	var results kgo.ProduceResults
	for _, r := range rs {
		p.records = append(p.records, r)
		results = append(results, kgo.ProduceResult{Record: r, Err: p.err})
	}
	return results
}

func TestSink_Append(t *testing.T) {
	producer := &recordingProducer{}
	sink := NewSink(producer, "maricheck.audit")

	err := sink.Append(context.Background(), audit.Event{
		Timestamp: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		Subject:   "crew:7",
		Action:    string(audit.EventStatusChanged),
		Decision:  "approved",
		ActorID:   "admin",
	})
	require.NoError(t, err)
	require.Len(t, producer.records, 1)

	record := producer.records[0]
	assert.Equal(t, "maricheck.audit", record.Topic)
	assert.Equal(t, "crew:7", string(record.Key))

	var body map[string]any
	require.NoError(t, json.Unmarshal(record.Value, &body))
	assert.Equal(t, "compliance", body["category"])
	assert.Equal(t, "approved", body["decision"])
	assert.Equal(t, "admin", body["actor_id"])
	assert.NotContains(t, body, "reason")
}

func TestSink_AppendPropagatesProduceError(t *testing.T) {
	producer := &recordingProducer{err: errors.New("broker down")}
	sink := NewSink(producer, "maricheck.audit")

	err := sink.Append(context.Background(), audit.Event{Subject: "crew:7", Action: "crew_registered"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
}
