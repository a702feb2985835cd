package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-companion/internal/domain"
)

// PhraseRepo defines the read operations for the phrasebook.
type PhraseRepo interface {
	// List returns every phrase ordered by position.
	List(ctx context.Context) ([]domain.Phrase, error)

	// GetByWord returns the phrase with the given word (case-insensitive).
	// Returns domain.ErrNotFound if there is none.
	GetByWord(ctx context.Context, word string) (domain.Phrase, error)
}

type pgPhraseRepo struct {
	db db
}

// NewPhraseRepo constructs a PhraseRepo backed by the provided db connection.
func NewPhraseRepo(db db) PhraseRepo {
	return &pgPhraseRepo{db: db}
}

func (r *pgPhraseRepo) List(ctx context.Context) ([]domain.Phrase, error) {
	const q = `
		SELECT id, position, word, phonetic, simplified, meaning
		FROM phrases
		ORDER BY position, word`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.PhraseRepo.List: %w", err)
	}
	defer rows.Close()

	var phrases []domain.Phrase
	for rows.Next() {
		p, err := scanPhrase(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PhraseRepo.List: scan: %w", err)
		}
		phrases = append(phrases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PhraseRepo.List: rows: %w", err)
	}
	return phrases, nil
}

func (r *pgPhraseRepo) GetByWord(ctx context.Context, word string) (domain.Phrase, error) {
	const q = `
		SELECT id, position, word, phonetic, simplified, meaning
		FROM phrases
		WHERE lower(word) = lower(@word)`

	p, err := scanPhrase(r.db.QueryRow(ctx, q, pgx.NamedArgs{"word": word}))
	if err != nil {
		return domain.Phrase{}, fmt.Errorf("repo.PhraseRepo.GetByWord: %w", err)
	}
	return p, nil
}

func scanPhrase(s scanner) (domain.Phrase, error) {
	var (
		p  domain.Phrase
		id pgtype.UUID
	)
	if err := s.Scan(&id, &p.Position, &p.Word, &p.Phonetic, &p.Simplified, &p.Meaning); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Phrase{}, domain.ErrNotFound
		}
		return domain.Phrase{}, err
	}
	p.ID = uuid.UUID(id.Bytes)
	return p, nil
}
