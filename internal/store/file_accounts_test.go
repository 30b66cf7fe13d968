package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bank/internal/config"
	"github.com/MKhiriev/go-bank/internal/logger"
	"github.com/MKhiriev/go-bank/models"
)

func newTestFileAccountRepo(t *testing.T, path string) AccountRepository {
	t.Helper()
	repo, err := NewFileAccountRepository(path, logger.Nop())
	require.NoError(t, err)
	return repo
}

func TestFileAccountRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := newTestFileAccountRepo(t, config.MemoryPath)

	require.NoError(t, repo.Insert(ctx, models.NewSavingsAccount("20", 100)))

	exists, err := repo.Exists(ctx, "20")
	require.NoError(t, err)
	assert.True(t, exists)

	found, err := repo.Find(ctx, "20")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, models.Savings, found.Kind())
	assert.Equal(t, 100.0, found.Balance())

	require.NoError(t, found.Credit(50))
	updated, err := repo.Update(ctx, found)
	require.NoError(t, err)
	assert.True(t, updated)

	again, err := repo.Find(ctx, "20")
	require.NoError(t, err)
	assert.Equal(t, 150.0, again.Balance())

	removed, err := repo.Remove(ctx, "20")
	require.NoError(t, err)
	assert.True(t, removed)

	missing, err := repo.Find(ctx, "20")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFileAccountRepository_FindReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := newTestFileAccountRepo(t, config.MemoryPath)
	require.NoError(t, repo.Insert(ctx, models.NewCheckingAccount("1", 10)))

	found, err := repo.Find(ctx, "1")
	require.NoError(t, err)
	require.NoError(t, found.Credit(90))

	stored, err := repo.Find(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 10.0, stored.Balance())
}

func TestFileAccountRepository_InsertDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := newTestFileAccountRepo(t, config.MemoryPath)
	require.NoError(t, repo.Insert(ctx, models.NewCheckingAccount("1", 10)))

	err := repo.Insert(ctx, models.NewCheckingAccount("1", 99))
	require.ErrorIs(t, err, ErrAlreadyExists)
	require.ErrorIs(t, err, ErrRepository)

	stored, err := repo.Find(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 10.0, stored.Balance())
}

func TestFileAccountRepository_MissingKeys(t *testing.T) {
	ctx := context.Background()
	repo := newTestFileAccountRepo(t, config.MemoryPath)

	exists, err := repo.Exists(ctx, "404")
	require.NoError(t, err)
	assert.False(t, exists)

	updated, err := repo.Update(ctx, models.NewCheckingAccount("404", 1))
	require.NoError(t, err)
	assert.False(t, updated)

	removed, err := repo.Remove(ctx, "404")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestFileAccountRepository_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "accounts.json")

	repo := newTestFileAccountRepo(t, path)
	special := models.NewSpecialAccount("30", 0)
	require.NoError(t, special.Credit(200))
	require.NoError(t, repo.Insert(ctx, special))

	reopened := newTestFileAccountRepo(t, path)
	found, err := reopened.Find(ctx, "30")
	require.NoError(t, err)
	require.IsType(t, &models.SpecialAccount{}, found)
	assert.Equal(t, 200.0, found.Balance())
	assert.InDelta(t, 2.0, found.(*models.SpecialAccount).PendingBonus(), 1e-9)
}

func TestFileAccountRepository_CorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileAccountRepository(path, logger.Nop())
	require.ErrorIs(t, err, ErrLoadingFile)
	require.ErrorIs(t, err, ErrRepository)
}

func TestFileAccountRepository_EmptyFile(t *testing.T) {
	for name, body := range map[string]string{"empty": "", "blank": " \n\t"} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), "accounts.json")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

			repo := newTestFileAccountRepo(t, path)
			exists, err := repo.Exists(ctx, "1")
			require.NoError(t, err)
			assert.False(t, exists)

			require.NoError(t, repo.Insert(ctx, models.NewCheckingAccount("1", 10)))
			found, err := newTestFileAccountRepo(t, path).Find(ctx, "1")
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, 10.0, found.Balance())
		})
	}
}

func TestFileAccountRepository_UnknownKindInFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	body := `{"records": {"7": {"number": "7", "kind": "gold", "balance": 1}}}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	repo := newTestFileAccountRepo(t, path)
	_, err := repo.Find(context.Background(), "7")
	require.ErrorIs(t, err, ErrCorruptedRecord)
	require.ErrorIs(t, err, models.ErrUnknownAccountKind)
}

func TestFileAccountRepository_PersistFailureKeepsMemoryConsistent(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	// the document path is a directory, so every write fails
	path := filepath.Join(dir, "accounts.json")
	require.NoError(t, os.Mkdir(path, 0o755))

	repo := &fileAccountRepository{
		table:  &jsonTable[models.AccountState]{path: path, rows: map[string]models.AccountState{}},
		logger: logger.Nop(),
	}

	err := repo.Insert(ctx, models.NewCheckingAccount("1", 1))
	require.ErrorIs(t, err, ErrPersistingFile)

	exists, err := repo.Exists(ctx, "1")
	require.NoError(t, err)
	assert.False(t, exists)
}
