package department_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/department"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type repoDeps struct {
	db   *sql.DB
	mock sqlmock.Sqlmock
	repo department.Repository
}

func setupRepo(t *testing.T) *repoDeps {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return &repoDeps{db: db, mock: mock, repo: department.NewRepository(gormDB)}
}

func TestDepartmentRepository_BulkCreateInTx(t *testing.T) {
	d := setupRepo(t)
	ctx := context.Background()

	d.mock.ExpectBegin()
	d.mock.ExpectExec(`INSERT INTO "departments"`).WillReturnResult(sqlmock.NewResult(0, 2))
	d.mock.ExpectCommit()

	tx, err := d.db.BeginTx(ctx, nil)
	require.NoError(t, err)

	err = d.repo.WithTx(tx).BulkCreate(ctx, []department.Department{
		{ID: 1, Name: "Product Management"},
		{ID: 2, Name: "Sales"},
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.NoError(t, d.mock.ExpectationsWereMet())
}

func TestDepartmentRepository_FindByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		d := setupRepo(t)
		d.mock.ExpectQuery(`SELECT \* FROM "departments" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "department"}).AddRow(5, "Legal"))

		dept, err := d.repo.FindByID(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, &department.Department{ID: 5, Name: "Legal"}, dept)
		assert.NoError(t, d.mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		d := setupRepo(t)
		d.mock.ExpectQuery(`SELECT \* FROM "departments"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "department"}))

		dept, err := d.repo.FindByID(context.Background(), 99)

		assert.Nil(t, dept)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestDepartmentRepository_UpdateAndCount(t *testing.T) {
	d := setupRepo(t)
	ctx := context.Background()

	d.mock.ExpectExec(`UPDATE "departments" SET "department"=\$1 WHERE "id" = \$2`).
		WithArgs("Accounting", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	d.mock.ExpectQuery(`SELECT count\(\*\) FROM "departments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	require.NoError(t, d.repo.Update(ctx, &department.Department{ID: 3, Name: "Accounting"}))

	total, err := d.repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.NoError(t, d.mock.ExpectationsWereMet())
}

func TestDepartmentRepository_FindPage(t *testing.T) {
	d := setupRepo(t)
	d.mock.ExpectQuery(`SELECT \* FROM "departments" ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "department"}).
			AddRow(1, "Product Management").
			AddRow(2, "Sales"))

	depts, err := d.repo.FindPage(context.Background(), 0, 20)

	require.NoError(t, err)
	assert.Len(t, depts, 2)
	assert.Equal(t, "Sales", depts[1].Name)
}
