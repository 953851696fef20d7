package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         "mysql",
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "icons",
			TimeoutSeconds: 2,
		}

		// Connect should fail (timeout or refused)
		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.EqualError(t, err, "unsupported database driver: oracle")
		assert.Nil(t, db)
	})

	t.Run("SQLite Memory", func(t *testing.T) {
		db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
		require.NoError(t, err)
		assert.Equal(t, "sqlite", db.Dialector.Name())
	})
}
