package exam

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// SQLStore persists templates and banks, with the nested section/question
// structure kept as JSON columns. Works against sqlite and postgres (the
// placeholders below are rewritten by the sqlite driver).
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) PutTemplate(ctx context.Context, t ExamTemplate) error {
	sj, err := json.Marshal(t.Sections)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO templates (id,name,description,sections_json,header_text,footer_text,style,seal_line,paper_size,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, description=EXCLUDED.description,
			sections_json=EXCLUDED.sections_json, header_text=EXCLUDED.header_text,
			footer_text=EXCLUDED.footer_text, style=EXCLUDED.style,
			seal_line=EXCLUDED.seal_line, paper_size=EXCLUDED.paper_size`,
		t.ID, t.Name, t.Description, string(sj), t.HeaderText, t.FooterText,
		string(t.Style), string(t.SealLine), t.PaperSize, time.Now().Unix())
	return err
}

func (s *SQLStore) GetTemplate(ctx context.Context, id string) (ExamTemplate, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,name,description,sections_json,header_text,footer_text,style,seal_line,paper_size
		FROM templates WHERE id=$1`, id)
	var t ExamTemplate
	var sj, style, seal string
	if err := row.Scan(&t.ID, &t.Name, &t.Description, &sj, &t.HeaderText, &t.FooterText, &style, &seal, &t.PaperSize); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ExamTemplate{}, ErrTemplateNotFound
		}
		return ExamTemplate{}, err
	}
	if err := json.Unmarshal([]byte(sj), &t.Sections); err != nil {
		return ExamTemplate{}, err
	}
	t.Style = TemplateStyle(style)
	t.SealLine = SealLineSide(seal)
	return t, nil
}

func (s *SQLStore) ListTemplates(ctx context.Context, limit, offset int) ([]ExamTemplate, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id,name,description,sections_json,header_text,footer_text,style,seal_line,paper_size
		FROM templates ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ExamTemplate
	for rows.Next() {
		var t ExamTemplate
		var sj, style, seal string
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &sj, &t.HeaderText, &t.FooterText, &style, &seal, &t.PaperSize); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(sj), &t.Sections); err != nil {
			return nil, err
		}
		t.Style = TemplateStyle(style)
		t.SealLine = SealLineSide(seal)
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *SQLStore) PutBank(ctx context.Context, b QuestionBank) error {
	qj, err := json.Marshal(b.Questions)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO banks (id,name,questions_json,created_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, questions_json=EXCLUDED.questions_json`,
		b.ID, b.Name, string(qj), time.Now().Unix())
	return err
}

func (s *SQLStore) GetBank(ctx context.Context, id string) (QuestionBank, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,name,questions_json FROM banks WHERE id=$1`, id)
	var b QuestionBank
	var qj string
	if err := row.Scan(&b.ID, &b.Name, &qj); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return QuestionBank{}, ErrBankNotFound
		}
		return QuestionBank{}, err
	}
	if err := json.Unmarshal([]byte(qj), &b.Questions); err != nil {
		return QuestionBank{}, err
	}
	return b, nil
}

func (s *SQLStore) ListBanks(ctx context.Context, limit, offset int) ([]QuestionBank, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id,name,questions_json FROM banks ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []QuestionBank
	for rows.Next() {
		var b QuestionBank
		var qj string
		if err := rows.Scan(&b.ID, &b.Name, &qj); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(qj), &b.Questions); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
