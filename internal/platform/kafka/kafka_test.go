package kafka

import (
	"context"
	"testing"

	"maricheck/internal/platform/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NoBrokersDisablesKafka(t *testing.T) {
	client, err := New(context.Background(), config.KafkaConfig{})
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNew_RequiresTopic(t *testing.T) {
	_, err := New(context.Background(), config.KafkaConfig{Brokers: []string{"localhost:9092"}})
	require.Error(t, err)
}
