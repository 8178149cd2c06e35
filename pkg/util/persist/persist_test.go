package persist

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRecord is a fixture type local to this package; the real persistable
// types live in the packages that own their tables
type testRecord struct {
	Name    string  `column:"name" dbtype:"TEXT NOT NULL" primary:"true" index:"true"`
	Value   float64 `column:"value" dbtype:"REAL DEFAULT 0.0"`
	Counter int     `column:"counter" dbtype:"INTEGER DEFAULT 0"`

	beforeCalls int
	afterCalls  int
}

func (r *testRecord) GetTableName() string { return "test_records" }

func (r *testRecord) GetPrimaryKey() map[string]any {
	return map[string]any{"name": r.Name}
}

func (r *testRecord) BeforeSave() error {
	r.beforeCalls++
	return nil
}

func (r *testRecord) AfterSave() error {
	r.afterCalls++
	return nil
}

var _ Persistable = (*testRecord)(nil)

func openTestDatabase(t *testing.T) {
	t.Helper()
	require.NoError(t, SetDatabasePath(filepath.Join(t.TempDir(), "test.db")))
	t.Cleanup(func() { CloseDatabase() })
	require.NoError(t, CreateTable(&testRecord{}))
}

func TestCreateTableSQL(t *testing.T) {
	sql := createTableSQL(&testRecord{}, "test_records")

	assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS test_records")
	assert.Contains(t, sql, "name TEXT NOT NULL")
	assert.Contains(t, sql, "value REAL DEFAULT 0.0")
	assert.Contains(t, sql, "PRIMARY KEY (name)")

	// Unannotated fields stay out of the schema
	assert.NotContains(t, sql, "beforeCalls")
}

func TestIndexSQL(t *testing.T) {
	queries := indexSQL(&testRecord{}, "test_records")
	require.Len(t, queries, 1)
	assert.Contains(t, queries[0], "idx_test_records_name")
}

func TestSaveAndFindRoundTrip(t *testing.T) {
	openTestDatabase(t)

	rec := &testRecord{Name: "alpha", Value: 1.5, Counter: 3}
	require.NoError(t, Save(rec))
	assert.Equal(t, 1, rec.beforeCalls)
	assert.Equal(t, 1, rec.afterCalls)

	found := &testRecord{}
	require.NoError(t, FindByPrimaryKey(found, map[string]any{"name": "alpha"}))
	assert.Equal(t, "alpha", found.Name)
	assert.Equal(t, 1.5, found.Value)
	assert.Equal(t, 3, found.Counter)
}

func TestSaveUpdatesExistingRecord(t *testing.T) {
	openTestDatabase(t)

	rec := &testRecord{Name: "alpha", Value: 1.0}
	require.NoError(t, Save(rec))

	rec.Value = 2.0
	require.NoError(t, Save(rec))

	found := &testRecord{}
	require.NoError(t, FindByPrimaryKey(found, map[string]any{"name": "alpha"}))
	assert.Equal(t, 2.0, found.Value)

	// Updating must not have produced a second row
	all, err := FindAll(&testRecord{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestExistsAndDelete(t *testing.T) {
	openTestDatabase(t)

	rec := &testRecord{Name: "alpha"}
	exists, err := Exists(rec)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, Save(rec))
	exists, err = Exists(rec)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, Delete(rec))
	exists, err = Exists(rec)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFindByPrimaryKeyMissingRecord(t *testing.T) {
	openTestDatabase(t)

	err := FindByPrimaryKey(&testRecord{}, map[string]any{"name": "nobody"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestFindWhere(t *testing.T) {
	openTestDatabase(t)

	for i, name := range []string{"alpha", "beta", "gamma"} {
		require.NoError(t, Save(&testRecord{Name: name, Counter: i}))
	}

	results, err := FindWhere(&testRecord{}, "counter >= ?", 1)
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, r := range results {
		rec, ok := r.(*testRecord)
		require.True(t, ok)
		assert.GreaterOrEqual(t, rec.Counter, 1)
	}
}

func TestBulkSave(t *testing.T) {
	openTestDatabase(t)

	records := []Persistable{
		&testRecord{Name: "alpha", Value: 1},
		&testRecord{Name: "beta", Value: 2},
		&testRecord{Name: "alpha", Value: 3}, // replaces the first row
	}
	require.NoError(t, BulkSave(records))

	all, err := FindAll(&testRecord{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	found := &testRecord{}
	require.NoError(t, FindByPrimaryKey(found, map[string]any{"name": "alpha"}))
	assert.Equal(t, 3.0, found.Value)

	for _, obj := range records {
		rec := obj.(*testRecord)
		assert.Equal(t, 1, rec.beforeCalls)
		assert.Equal(t, 1, rec.afterCalls)
	}
}
