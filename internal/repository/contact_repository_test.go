package repository

import (
	"context"
	"math"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/contacts-api/internal/model"
)

func contactRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "phone", "username", "created_at", "updated_at"})
}

func TestContactCreate(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(`INSERT INTO contacts`).
		WithArgs("Budi", sqlmock.AnyArg(), "budi@example.com", sqlmock.AnyArg(), "khannedy").
		WillReturnResult(sqlmock.NewResult(42, 1))

	c, err := NewContactRepo(db).Create(context.Background(), model.Contact{
		FirstName: "Budi",
		Email:     strp("budi@example.com"),
		Username:  "khannedy",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(42), c.ID)
	assert.Equal(t, "khannedy", c.Username)
}

func TestContactGetOwned(t *testing.T) {
	db, mock := newMock(t)
	q := `FROM contacts WHERE id = \? AND username = \?`
	mock.ExpectQuery(q).WithArgs(7, "khannedy").
		WillReturnRows(contactRows().AddRow(7, "Budi", nil, "budi@example.com", nil, "khannedy", stamp, stamp))
	mock.ExpectQuery(q).WithArgs(7, "intruder").WillReturnRows(contactRows())

	repo := NewContactRepo(db)
	c, err := repo.GetOwned(context.Background(), "khannedy", 7)
	require.NoError(t, err)
	assert.Equal(t, "Budi", c.FirstName)
	assert.Nil(t, c.LastName)
	require.NotNil(t, c.Email)
	assert.Equal(t, "budi@example.com", *c.Email)

	_, err = repo.GetOwned(context.Background(), "intruder", 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContactUpdateOwned(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(`UPDATE contacts SET`).
		WithArgs("Joko", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), 7, "khannedy").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`FROM contacts WHERE id = \? AND username = \?`).WithArgs(7, "khannedy").
		WillReturnRows(contactRows().AddRow(7, "Joko", "Morro", nil, nil, "khannedy", stamp, stamp))

	c, err := NewContactRepo(db).UpdateOwned(context.Background(), "khannedy", 7, model.ContactPatch{FirstName: strp("Joko")})
	require.NoError(t, err)
	assert.Equal(t, "Joko", c.FirstName)
	require.NotNil(t, c.LastName)
	assert.Equal(t, "Morro", *c.LastName)
}

func TestContactUpdateNotOwned(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(`UPDATE contacts SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := NewContactRepo(db).UpdateOwned(context.Background(), "intruder", 7, model.ContactPatch{FirstName: strp("Joko")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContactDeleteOwned(t *testing.T) {
	db, mock := newMock(t)
	q := `DELETE FROM contacts WHERE id = \? AND username = \?`
	mock.ExpectExec(q).WithArgs(7, "khannedy").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs(7, "khannedy").WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewContactRepo(db)
	assert.NoError(t, repo.DeleteOwned(context.Background(), "khannedy", 7))
	assert.ErrorIs(t, repo.DeleteOwned(context.Background(), "khannedy", 7), ErrNotFound)
}

func TestSearchWhere(t *testing.T) {
	cond, args := searchWhere("khannedy", model.ContactFilter{Name: "50%_off", Phone: "0899"})
	assert.Equal(t, "username = ? AND (first_name LIKE ? OR last_name LIKE ?) AND phone LIKE ?", cond)
	assert.Equal(t, []any{"khannedy", `%50\%\_off%`, `%50\%\_off%`, "%0899%"}, args)

	cond, args = searchWhere("khannedy", model.ContactFilter{})
	assert.Equal(t, "username = ?", cond)
	assert.Equal(t, []any{"khannedy"}, args)
}

func TestSearchPage(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM contacts WHERE username = ? AND email LIKE ?")).
		WithArgs("khannedy", "%example%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
	mock.ExpectQuery(`ORDER BY id ASC LIMIT \? OFFSET \?`).
		WithArgs("khannedy", "%example%", 10, 20).
		WillReturnRows(contactRows().
			AddRow(21, "Budi", nil, "b@example.com", nil, "khannedy", stamp, stamp).
			AddRow(22, "Joko", nil, "j@example.com", nil, "khannedy", stamp, stamp))

	rows, total, err := NewContactRepo(db).Search(context.Background(), "khannedy",
		model.ContactFilter{Email: "example", Page: 3, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	require.Len(t, rows, 2)
	assert.Equal(t, uint64(21), rows[0].ID)
}

func TestSearchPastTheEndSkipsSelect(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`SELECT COUNT`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	rows, total, err := NewContactRepo(db).Search(context.Background(), "khannedy",
		model.ContactFilter{Page: 2, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestSearchHugePageIsEmpty(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`SELECT COUNT`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	// (page-1)*size would wrap around to a negative offset
	rows, total, err := NewContactRepo(db).Search(context.Background(), "khannedy",
		model.ContactFilter{Page: math.MaxInt64/10 + 2, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, rows)
}

func TestSearchLastPartialPage(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`SELECT COUNT`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))
	mock.ExpectQuery(`ORDER BY id ASC LIMIT \? OFFSET \?`).
		WithArgs("khannedy", 10, 10).
		WillReturnRows(contactRows().AddRow(11, "Budi", nil, nil, nil, "khannedy", stamp, stamp))

	rows, _, err := NewContactRepo(db).Search(context.Background(), "khannedy",
		model.ContactFilter{Page: 2, Size: 10})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, uint64(11), rows[0].ID)
}
