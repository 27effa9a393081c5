package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/lexbr/precedentes/internal/repository"
)

// PrecedentRepo implements repository.CorpusLoader against the precedentes
// table.
type PrecedentRepo struct {
	db *DB
}

// NewPrecedentRepo creates a precedent repository.
func NewPrecedentRepo(db *DB) *PrecedentRepo {
	return &PrecedentRepo{db: db}
}

// LoadCorpus loads every precedent row. The corpus is small enough to hold
// in memory; filtering and scoring happen in the engine, not in SQL.
func (r *PrecedentRepo) LoadCorpus(ctx context.Context) ([]repository.Precedent, error) {
	query := `
		SELECT id, tipo_processo, tribunal, orgao, status, titulo, tese, enunciado, keywords, numero
		FROM precedentes
	`
	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}
	defer rows.Close()

	var corpus []repository.Precedent
	for rows.Next() {
		p, err := scanPrecedent(rows)
		if err != nil {
			return nil, err
		}
		corpus = append(corpus, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus rows: %w", err)
	}

	return corpus, nil
}

// GetByID retrieves a single precedent, mainly for the debug endpoints.
func (r *PrecedentRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.Precedent, error) {
	query := `
		SELECT id, tipo_processo, tribunal, orgao, status, titulo, tese, enunciado, keywords, numero
		FROM precedentes
		WHERE id = $1
	`
	rows, err := r.db.Pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get precedent: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, repository.ErrNotFound
	}
	p, err := scanPrecedent(rows)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanPrecedent(row pgx.Row) (repository.Precedent, error) {
	var (
		p            repository.Precedent
		orgao        *string
		status       *string
		tese         *string
		enunciado    *string
		numero       *string
		keywordsJSON []byte
	)

	err := row.Scan(&p.ID, &p.TipoProcesso, &p.Tribunal, &orgao, &status,
		&p.Titulo, &tese, &enunciado, &keywordsJSON, &numero)
	if err != nil {
		return repository.Precedent{}, fmt.Errorf("failed to scan precedent: %w", err)
	}

	p.Orgao = deref(orgao)
	p.Status = deref(status)
	p.Tese = deref(tese)
	p.Enunciado = deref(enunciado)
	p.Numero = deref(numero)

	if len(keywordsJSON) > 0 {
		if err := json.Unmarshal(keywordsJSON, &p.Keywords); err != nil {
			return repository.Precedent{}, fmt.Errorf("failed to unmarshal keywords: %w", err)
		}
	}

	return p, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
