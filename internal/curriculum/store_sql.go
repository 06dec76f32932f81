package curriculum

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) PutActivity(ctx context.Context, a Activity) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO activities (id,title,subject,grade_level,criteria_json,created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE SET title=EXCLUDED.title, subject=EXCLUDED.subject,
			grade_level=EXCLUDED.grade_level, criteria_json=EXCLUDED.criteria_json`,
		a.ID, a.Title, a.Subject, a.GradeLevel, string(a.Criteria), time.Now().Unix())
	return err
}

func (s *SQLStore) GetActivity(ctx context.Context, id string) (Activity, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,title,subject,grade_level,criteria_json,created_at FROM activities WHERE id=$1`, id)
	var a Activity
	var cjson string
	if err := row.Scan(&a.ID, &a.Title, &a.Subject, &a.GradeLevel, &cjson, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Activity{}, errors.New("activity not found")
		}
		return Activity{}, err
	}
	a.Criteria = []byte(cjson)
	return a, nil
}

func (s *SQLStore) ListActivities(ctx context.Context, opts ListOpts) ([]ActivitySummary, error) {
	q := `SELECT id,title,subject,grade_level,created_at FROM activities WHERE 1=1`
	args := []interface{}{}
	n := 0
	add := func(clause string, v interface{}) {
		n++
		q += clause + fmt.Sprintf("$%d", n)
		args = append(args, v)
	}
	if opts.Q != "" {
		add(` AND title LIKE `, "%"+opts.Q+"%")
	}
	if opts.Subject != "" {
		add(` AND subject=`, opts.Subject)
	}
	if opts.GradeLevel != "" {
		add(` AND grade_level=`, opts.GradeLevel)
	}
	q += ` ORDER BY created_at DESC`
	limit := opts.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	add(` LIMIT `, limit)
	if opts.Offset > 0 {
		add(` OFFSET `, opts.Offset)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []ActivitySummary{}
	for rows.Next() {
		var a ActivitySummary
		if err := rows.Scan(&a.ID, &a.Title, &a.Subject, &a.GradeLevel, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *SQLStore) DeleteActivity(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM activities WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.New("activity not found")
	}
	return nil
}
