package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialector(t *testing.T) {
	tests := []struct {
		name    string
		dsn     string
		dialect string
		wantErr bool
	}{
		{name: "postgres url", dsn: "postgres://u:p@localhost:5432/curanet?sslmode=disable", dialect: "postgres"},
		{name: "postgresql url", dsn: "postgresql://u:p@localhost/curanet", dialect: "postgres"},
		{name: "mysql url", dsn: "mysql://root:secret@db:3306/curanet?charset=utf8mb4", dialect: "mysql"},
		{name: "mysql dsn", dsn: "root:secret@tcp(db:3306)/curanet", dialect: "mysql"},
		{name: "garbage", dsn: "not a dsn at all", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Dialector(tt.dsn)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.dialect, d.Name())
		})
	}
}

func TestMysqlURLToDSN(t *testing.T) {
	dsn, err := mysqlURLToDSN("mysql://root:secret@db:3306/curanet?charset=utf8mb4")
	require.NoError(t, err)

	assert.Contains(t, dsn, "root:secret@tcp(db:3306)/curanet?")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleStaff.Valid())
	assert.True(t, RoleDoctor.Valid())
	assert.False(t, Role("patient").Valid())
}
