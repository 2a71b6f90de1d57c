package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/capitolquiz/internal/roster"
)

// rosterRepo implements RosterRepo with plain SQL.
type rosterRepo struct {
	db  *sql.DB
	now func() time.Time
}

func (r *rosterRepo) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

func (r *rosterRepo) Import(ctx context.Context, source string, entities []roster.Entity) (_ *RosterImport, err error) {
	if len(entities) == 0 {
		return nil, roster.ErrEmptyRoster
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM entities`); err != nil {
		return nil, fmt.Errorf("clear entities: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM roster_imports`); err != nil {
		return nil, fmt.Errorf("clear imports: %w", err)
	}

	imp := &RosterImport{
		Source:     source,
		ImportedAt: r.clock().UTC(),
		Entities:   len(entities),
	}
	res, err := tx.ExecContext(ctx,
		`INSERT INTO roster_imports (source, imported_at, entities) VALUES (?, ?, ?)`,
		imp.Source, imp.ImportedAt.Format(time.RFC3339Nano), imp.Entities)
	if err != nil {
		return nil, fmt.Errorf("insert import: %w", err)
	}
	if imp.ID, err = res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("import id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO entities (position, import_id, name, state, party, seniority, portrait) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("prepare entity insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entities {
		if _, err = stmt.ExecContext(ctx, i, imp.ID, e.Name, e.State, string(e.Party), string(e.Seniority), e.PortraitRef); err != nil {
			return nil, fmt.Errorf("insert %s: %w", e.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}
	return imp, nil
}

func (r *rosterRepo) Load(ctx context.Context) (*roster.Roster, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, state, party, seniority, portrait FROM entities ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query entities: %w", err)
	}
	defer rows.Close()

	var entities []roster.Entity
	for rows.Next() {
		var e roster.Entity
		var party, seniority string
		if err := rows.Scan(&e.Name, &e.State, &party, &seniority, &e.PortraitRef); err != nil {
			return nil, fmt.Errorf("scan entity: %w", err)
		}
		e.Party = roster.ParseParty(party)
		e.Seniority = roster.ParseSeniority(seniority)
		entities = append(entities, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entities: %w", err)
	}
	if len(entities) == 0 {
		return nil, roster.ErrEmptyRoster
	}
	return roster.New(entities), nil
}

func (r *rosterRepo) LastImport(ctx context.Context) (*RosterImport, error) {
	var imp RosterImport
	var importedAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, source, imported_at, entities FROM roster_imports ORDER BY id DESC LIMIT 1`).
		Scan(&imp.ID, &imp.Source, &importedAt, &imp.Entities)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query last import: %w", err)
	}
	if imp.ImportedAt, err = time.Parse(time.RFC3339Nano, importedAt); err != nil {
		return nil, fmt.Errorf("parse import time: %w", err)
	}
	return &imp, nil
}
