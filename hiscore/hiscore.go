// This file is part of ALE2600.
//
// ALE2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ALE2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ALE2600.  If not, see <https://www.gnu.org/licenses/>.

// Package hiscore keeps a record of completed episodes in an SQLite database.
// Episodes are stored with the title of the game, the agent that played it,
// the random seed, the number of frames and the total reward.
package hiscore

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	// pure Go sqlite driver
	_ "modernc.org/sqlite"

	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/paths"
)

// DefaultDatabase is the name of the database in the resource path.
const DefaultDatabase = "hiscore.db"

// Sentinel error returned by the hiscore package.
const HiscoreError = "hiscore: %v"

// default number of episodes returned by TopEpisodes()
const defaultLimit = 10

// Episode is a single completed episode.
type Episode struct {
	ID       int64
	Title    string
	CartHash string
	Agent    string
	Seed     int64
	Frames   int
	Score    int
	Played   time.Time
}

// Stats are the aggregated results of every episode of a title.
type Stats struct {
	Title    string
	Episodes int
	High     int
	Average  float64
}

// Store is the database of episodes.
type Store struct {
	db *sql.DB
}

// Open the database. The file and any parent directories are created if
// necessary. An empty filename opens the default database in the resource
// path.
func Open(filename string) (*Store, error) {
	if filename == "" {
		filename = paths.ResourcePath(DefaultDatabase)
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return nil, curated.Errorf(HiscoreError, err)
	}

	db, err := sql.Open("sqlite", filename)
	if err != nil {
		return nil, curated.Errorf(HiscoreError, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, curated.Errorf(HiscoreError, err)
	}

	st := &Store{db: db}

	if err := st.migrate(); err != nil {
		db.Close()
		return nil, curated.Errorf(HiscoreError, err)
	}

	return st, nil
}

func (st *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS episodes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			cart_hash TEXT NOT NULL,
			agent TEXT NOT NULL,
			seed INTEGER NOT NULL,
			frames INTEGER NOT NULL,
			score INTEGER NOT NULL,
			played INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_episodes_top ON episodes(title, score DESC);
	`
	_, err := st.db.Exec(schema)
	return err
}

// Close the database.
func (st *Store) Close() error {
	if st.db == nil {
		return nil
	}
	err := st.db.Close()
	st.db = nil
	if err != nil {
		return curated.Errorf(HiscoreError, err)
	}
	return nil
}

// SaveEpisode adds an episode to the database. The ID and Played fields are
// filled in and the ID is returned.
func (st *Store) SaveEpisode(ep *Episode) (int64, error) {
	if ep.Played.IsZero() {
		ep.Played = time.Now()
	}

	res, err := st.db.Exec(
		`INSERT INTO episodes (title, cart_hash, agent, seed, frames, score, played)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ep.Title, ep.CartHash, ep.Agent, ep.Seed, ep.Frames, ep.Score, ep.Played.Unix(),
	)
	if err != nil {
		return 0, curated.Errorf(HiscoreError, err)
	}

	ep.ID, err = res.LastInsertId()
	if err != nil {
		return 0, curated.Errorf(HiscoreError, err)
	}

	return ep.ID, nil
}

// TopEpisodes returns the best episodes for the title, highest score first.
// Episodes with the same score are ordered by the number of frames, fewest
// first. A limit of zero or less returns the ten best.
func (st *Store) TopEpisodes(title string, limit int) ([]Episode, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := st.db.Query(
		`SELECT id, title, cart_hash, agent, seed, frames, score, played
		 FROM episodes
		 WHERE title = ?
		 ORDER BY score DESC, frames ASC, id ASC
		 LIMIT ?`,
		title, limit,
	)
	if err != nil {
		return nil, curated.Errorf(HiscoreError, err)
	}
	defer rows.Close()

	var eps []Episode
	for rows.Next() {
		var ep Episode
		var played int64
		err := rows.Scan(&ep.ID, &ep.Title, &ep.CartHash, &ep.Agent, &ep.Seed, &ep.Frames, &ep.Score, &played)
		if err != nil {
			return nil, curated.Errorf(HiscoreError, err)
		}
		ep.Played = time.Unix(played, 0)
		eps = append(eps, ep)
	}

	if err := rows.Err(); err != nil {
		return nil, curated.Errorf(HiscoreError, err)
	}

	return eps, nil
}

// Stats returns the aggregated results for the title.
func (st *Store) Stats(title string) (Stats, error) {
	s := Stats{Title: title}
	err := st.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0)
		 FROM episodes WHERE title = ?`,
		title,
	).Scan(&s.Episodes, &s.High, &s.Average)
	if err != nil {
		return Stats{}, curated.Errorf(HiscoreError, err)
	}
	return s, nil
}
