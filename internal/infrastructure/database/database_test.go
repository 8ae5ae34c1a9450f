package database

import (
	"context"
	"testing"

	"fiftymais/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase(t *testing.T) {
	t.Run("sqlite in memory", func(t *testing.T) {
		db, err := NewDatabase("sqlite", &config.DatabaseConfig{SQLitePath: ":memory:"})
		require.NoError(t, err)

		var one int
		require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
		assert.Equal(t, 1, one)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := NewDatabase("mysql", &config.DatabaseConfig{})
		assert.Error(t, err)
	})
}

func TestNewDynamoDBClient(t *testing.T) {
	client, err := NewDynamoDBClient(context.Background(), config.DynamoDBConfig{
		Region:          "us-east-1",
		Endpoint:        "http://localhost:8000",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", *client.Options().BaseEndpoint)
}
