package postgres

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestLoadMigrations_Embedded(t *testing.T) {
	t.Parallel()

	migrations, err := loadMigrations(embeddedMigrations)
	require.NoError(t, err)
	require.Len(t, migrations, 4)
	require.Equal(t, "dining_tables", migrations[0].Name)
	require.Equal(t, "outbox_idempotency", migrations[3].Name)
	for i, m := range migrations {
		require.Equal(t, int64(i+1), m.Version)
		require.NotEmpty(t, m.Up)
		require.NotEmpty(t, m.Down)
	}
}

func TestLoadMigrations_SortsByVersion(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"sql/migrations/0002_more.up.sql":   {Data: []byte("CREATE TABLE b (id INT);")},
		"sql/migrations/0002_more.down.sql": {Data: []byte("DROP TABLE b;")},
		"sql/migrations/0001_init.up.sql":   {Data: []byte("CREATE TABLE a (id INT);")},
		"sql/migrations/0001_init.down.sql": {Data: []byte("DROP TABLE a;")},
	}

	migrations, err := loadMigrations(fsys)
	require.NoError(t, err)
	require.Len(t, migrations, 2)
	require.Equal(t, int64(1), migrations[0].Version)
	require.Equal(t, "init", migrations[0].Name)
	require.Equal(t, "DROP TABLE a;", migrations[0].script(directionDown))
	require.Equal(t, "CREATE TABLE b (id INT);", migrations[1].script(directionUp))
}

func TestLoadMigrations_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fsys    fstest.MapFS
		wantErr string
	}{
		{
			name: "missing down",
			fsys: fstest.MapFS{
				"sql/migrations/0001_init.up.sql": {Data: []byte("SELECT 1;")},
			},
			wantErr: "both up and down",
		},
		{
			name: "invalid file name",
			fsys: fstest.MapFS{
				"sql/migrations/not_a_migration.sql": {Data: []byte("SELECT 1;")},
			},
			wantErr: "invalid migration file name",
		},
		{
			name: "empty body",
			fsys: fstest.MapFS{
				"sql/migrations/0001_init.up.sql":   {Data: []byte("   \n")},
				"sql/migrations/0001_init.down.sql": {Data: []byte("SELECT 1;")},
			},
			wantErr: "empty",
		},
		{
			name: "conflicting names",
			fsys: fstest.MapFS{
				"sql/migrations/0001_init.up.sql":    {Data: []byte("SELECT 1;")},
				"sql/migrations/0001_other.down.sql": {Data: []byte("SELECT 1;")},
			},
			wantErr: "conflicting names",
		},
		{
			name:    "no directory",
			fsys:    fstest.MapFS{},
			wantErr: "list migrations",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := loadMigrations(tt.fsys)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
