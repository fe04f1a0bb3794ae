package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/blueteamlabs/argus/internal/models"
)

func TestOpen_SQLite(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Threat{}))

	threat := models.Threat{Type: models.TypeIP, Value: "10.0.0.1", Severity: models.SeverityHigh}
	require.NoError(t, db.Create(&threat).Error)
	assert.NotZero(t, threat.ID)
}

func TestOpen_TranslatesDuplicateKey(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Threat{}))

	first := models.Threat{Type: models.TypeDomain, Value: "dup.example", Severity: models.SeverityLow}
	require.NoError(t, db.Create(&first).Error)

	second := models.Threat{Type: models.TypeDomain, Value: "dup.example", Severity: models.SeverityHigh}
	err = db.Create(&second).Error
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}
