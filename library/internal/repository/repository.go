package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/tTrmc/library-service/library/internal/errs"
	"github.com/tTrmc/library-service/library/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	GetBookByID(ctx context.Context, id int) (model.Book, error)
	GetBookByISBN(ctx context.Context, isbn string) (model.Book, error)
	InsertBook(ctx context.Context, title, author, isbn string, total, available int) error
	UpdateBookAvailability(ctx context.Context, bookID, delta int) error
	InsertBorrowRecord(ctx context.Context, patronID string, bookID int, borrowDate, dueDate time.Time) error
	UpdateBorrowRecordReturnDate(ctx context.Context, patronID string, bookID int, returnDate time.Time) error
	GetPatronBorrowCount(ctx context.Context, patronID string) (int, error)
	GetPatronBorrowedBooks(ctx context.Context, patronID string) ([]model.BorrowRecord, error)
	GetActiveBorrowRecord(ctx context.Context, patronID string, bookID int) (model.BorrowRecord, error)
	GetLatestBorrowRecord(ctx context.Context, patronID string, bookID int) (model.BorrowRecord, error)
	GetPatronBorrowHistory(ctx context.Context, patronID string) ([]model.BorrowRecord, error)
	SearchBooks(ctx context.Context, term string, by model.SearchType) ([]model.Book, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName         = `books`
	borrowRecordsTableName = `borrow_records`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const bookColumns = `id, title, author, isbn, total_copies, available_copies`

func (r *repository) GetBookByID(ctx context.Context, id int) (model.Book, error) {
	query, args, err := qb.Select(strings.Split(bookColumns, ", ")...).
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) GetBookByISBN(ctx context.Context, isbn string) (model.Book, error) {
	query, args, err := qb.Select(strings.Split(bookColumns, ", ")...).
		From(booksTableName).
		Where(sq.Eq{"isbn": isbn}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) InsertBook(ctx context.Context, title, author, isbn string, total, available int) error {
	query, args, err := qb.Insert(booksTableName).
		Columns("title", "author", "isbn", "total_copies", "available_copies").
		Values(title, author, isbn, total, available).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return errs.ErrDuplicateISBN
		}
		r.log.Error("InsertBook", zap.String("q", query), zap.Any("args", args))
		return err
	}
	return nil
}

// UpdateBookAvailability applies delta atomically, refusing any change
// that would push available_copies outside [0, total_copies].
func (r *repository) UpdateBookAvailability(ctx context.Context, bookID, delta int) error {
	q := `
update books
    set available_copies = available_copies + $2
where id = $1
  and available_copies + $2 between 0 and total_copies`

	res, err := r.db.ExecContext(ctx, q, bookID, delta)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) InsertBorrowRecord(ctx context.Context, patronID string, bookID int, borrowDate, dueDate time.Time) error {
	query, args, err := qb.Insert(borrowRecordsTableName).
		Columns("patron_id", "book_id", "borrow_date", "due_date").
		Values(patronID, bookID, borrowDate, dueDate).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.log.Error("InsertBorrowRecord", zap.String("q", query), zap.Any("args", args))
		return err
	}
	return nil
}

func (r *repository) UpdateBorrowRecordReturnDate(ctx context.Context, patronID string, bookID int, returnDate time.Time) error {
	q := `
update borrow_records
    set return_date = $3
where patron_id = $1 and book_id = $2 and return_date is null`

	res, err := r.db.ExecContext(ctx, q, patronID, bookID, returnDate)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) GetPatronBorrowCount(ctx context.Context, patronID string) (int, error) {
	q := `
	select count(*) from borrow_records
	where patron_id = $1 and return_date is null
`
	var count int
	if err := r.db.QueryRowContext(ctx, q, patronID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

const recordColumns = `br.id, br.patron_id, br.book_id, br.borrow_date, br.due_date, br.return_date, b.title, b.author`

func (r *repository) recordQuery(patronID string) sq.SelectBuilder {
	return qb.Select(strings.Split(recordColumns, ", ")...).
		From(borrowRecordsTableName + " br").
		Join(booksTableName + " b on b.id = br.book_id").
		Where(sq.Eq{"br.patron_id": patronID}).
		OrderBy("br.borrow_date desc")
}

func (r *repository) GetPatronBorrowedBooks(ctx context.Context, patronID string) ([]model.BorrowRecord, error) {
	query, args, err := r.recordQuery(patronID).
		Where("br.return_date is null").
		ToSql()
	if err != nil {
		return nil, err
	}

	var records []model.BorrowRecord
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository) GetActiveBorrowRecord(ctx context.Context, patronID string, bookID int) (model.BorrowRecord, error) {
	query, args, err := r.recordQuery(patronID).
		Where(sq.Eq{"br.book_id": bookID}).
		Where("br.return_date is null").
		Limit(1).
		ToSql()
	if err != nil {
		return model.BorrowRecord{}, err
	}

	var record model.BorrowRecord
	if err := r.db.GetContext(ctx, &record, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowRecord{}, errs.ErrNotFound
		}
		return model.BorrowRecord{}, err
	}
	return record, nil
}

func (r *repository) GetLatestBorrowRecord(ctx context.Context, patronID string, bookID int) (model.BorrowRecord, error) {
	query, args, err := r.recordQuery(patronID).
		Where(sq.Eq{"br.book_id": bookID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.BorrowRecord{}, err
	}

	var record model.BorrowRecord
	if err := r.db.GetContext(ctx, &record, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowRecord{}, errs.ErrNotFound
		}
		return model.BorrowRecord{}, err
	}
	return record, nil
}

func (r *repository) GetPatronBorrowHistory(ctx context.Context, patronID string) ([]model.BorrowRecord, error) {
	query, args, err := r.recordQuery(patronID).ToSql()
	if err != nil {
		return nil, err
	}

	var records []model.BorrowRecord
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository) SearchBooks(ctx context.Context, term string, by model.SearchType) ([]model.Book, error) {
	q := qb.Select(strings.Split(bookColumns, ", ")...).
		From(booksTableName)

	switch by {
	case model.SearchByTitle:
		q = q.Where(sq.Like{"lower(title)": "%" + strings.ToLower(term) + "%"}).OrderBy("title")
	case model.SearchByAuthor:
		q = q.Where(sq.Like{"lower(author)": "%" + strings.ToLower(term) + "%"}).OrderBy("title")
	case model.SearchByISBN:
		q = q.Where(sq.Eq{"isbn": term})
	default:
		return []model.Book{}, nil
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("SearchBooks", zap.String("query", query), zap.Any("args", args))

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}
