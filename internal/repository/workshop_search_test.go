package repository

import (
	"testing"

	"vehicle-maintenance-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `auto\_center`, escapeLike("auto_center"))
	assert.Equal(t, `c:\\oficina`, escapeLike(`c:\oficina`))
	assert.Equal(t, "oficina", escapeLike("oficina"))
}

func TestWorkshopSearch_WildcardsMatchLiterally(t *testing.T) {
	repo := NewWorkshopRepository(testutils.NewSQLiteDB(t))
	factories := testutils.NewFactorySet()

	require.NoError(t, repo.Create(factories.Workshop.WithName("Auto Center Paulista")))
	require.NoError(t, repo.Create(factories.Workshop.WithName("Funilaria 100% Garantida")))

	tests := []struct {
		query    string
		expected int64
	}{
		{"%", 1},
		{"_", 0},
		{"100%", 1},
		{"center", 1},
		{"", 2},
	}

	for _, tt := range tests {
		t.Run("query "+tt.query, func(t *testing.T) {
			_, total, err := repo.Search(tt.query, 20, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, total)
		})
	}
}
