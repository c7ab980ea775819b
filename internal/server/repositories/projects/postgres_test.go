package projects

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/portfolio-backend/internal/common"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/models"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestCreate(t *testing.T) {
	db, mock := newMock(t)
	r := NewPostgresRepository(db)

	p := &models.Project{
		Date:         time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Title:        "Portfolio",
		Description:  "a site",
		DisplayOrder: 1,
	}

	mock.ExpectQuery("INSERT INTO projects").
		WithArgs(p.Date, p.Title, p.Description, p.DisplayOrder).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	id, err := r.Create(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock := newMock(t)
	r := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT id, project_date, title").
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)

	_, err := r.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdate_NotFound(t *testing.T) {
	db, mock := newMock(t)
	r := NewPostgresRepository(db)

	p := &models.Project{ID: 9, Title: "x"}

	mock.ExpectExec("UPDATE projects").
		WithArgs(p.ID, p.Date, p.Title, p.Description).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := r.Update(context.Background(), p)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDelete(t *testing.T) {
	db, mock := newMock(t)
	r := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM projects").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := r.Delete(context.Background(), 3)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_OrderedByDisplayOrder(t *testing.T) {
	db, mock := newMock(t)
	r := NewPostgresRepository(db)

	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "project_date", "title", "description", "display_order"}).
		AddRow(int64(2), date, "first", "d1", 1).
		AddRow(int64(1), date, "second", "d2", 2)

	mock.ExpectQuery("SELECT id, project_date, title, description, display_order").
		WillReturnRows(rows)

	result, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "first", result[0].Title)
	assert.Equal(t, 2, result[1].DisplayOrder)
}

func TestShiftDisplayOrders(t *testing.T) {
	db, mock := newMock(t)
	r := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE projects SET display_order = display_order \\+ 1").
		WillReturnResult(sqlmock.NewResult(0, 5))

	err := r.ShiftDisplayOrders(context.Background())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDisplayOrder_NotFound(t *testing.T) {
	db, mock := newMock(t)
	r := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE projects SET display_order").
		WithArgs(int64(9), 2).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := r.UpdateDisplayOrder(context.Background(), 9, 2)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
