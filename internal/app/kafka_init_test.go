package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/restock/internal/service/outbox"
)

func TestInitPublishers_WithoutBrokers(t *testing.T) {
	p := initPublishers(nil, testLogger())
	require.IsType(t, &outbox.LogPublisher{}, p.events)
	require.Nil(t, p.dlq)
	require.Nil(t, p.producer)
}

func TestCloseKafkaProducer_Nil(t *testing.T) {
	require.NotPanics(t, func() { closeKafkaProducer(nil, testLogger()) })
}
