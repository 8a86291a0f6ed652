package dbx

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

const touchSQL = `UPDATE books SET name = $1 WHERE id = $2`

func TestExecOneZeroRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(touchSQL)).
		WithArgs("x", "id").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = ExecOne(t.Context(), db, touchSQL, "x", "id")
	if !errors.Is(err, ErrNoRowsAffected) {
		t.Fatalf("want ErrNoRowsAffected, got %v", err)
	}
}

func TestWithinTxCommitsAndRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(touchSQL)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = WithinTx(t.Context(), db, func(tx *sql.Tx) error {
		return ExecOne(t.Context(), tx, touchSQL, "x", "id")
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	boom := errors.New("boom")
	mock.ExpectBegin()
	mock.ExpectRollback()

	err = WithinTx(t.Context(), db, func(tx *sql.Tx) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
