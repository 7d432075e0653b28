package db

import (
	"database/sql"
	"fmt"
	"strings"

	// CGo-free SQLite driver, registered with database/sql as "sqlite".
	_ "modernc.org/sqlite"

	"github.com/markovic-nikola/keyhint/shortcut"
)

// Key forms as stored in shortcuts.key_form.
const (
	formJoined   = "joined"
	formSequence = "sequence"
)

const schema = `
CREATE TABLE IF NOT EXISTS modes (
	id       INTEGER PRIMARY KEY,
	title    TEXT NOT NULL UNIQUE,
	position INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS shortcuts (
	id       INTEGER PRIMARY KEY,
	mode_id  INTEGER NOT NULL REFERENCES modes(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	key      TEXT NOT NULL,
	key_form TEXT NOT NULL DEFAULT 'joined',
	title    TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS shortcut_titles (
	shortcut_id INTEGER NOT NULL REFERENCES shortcuts(id) ON DELETE CASCADE,
	position    INTEGER NOT NULL,
	title       TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS shortcut_tokens (
	shortcut_id INTEGER NOT NULL REFERENCES shortcuts(id) ON DELETE CASCADE,
	position    INTEGER NOT NULL,
	token       TEXT NOT NULL
);
`

// Open connects to a SQLite shortcut database. The schema is not created;
// call InitSchema when writing a new file.
func Open(path string) (*sql.DB, error) {
	return sql.Open("sqlite", path)
}

func InitSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// ListModes returns mode titles in display order.
func ListModes(db *sql.DB) ([]string, error) {
	rows, err := db.Query("SELECT title FROM modes ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var modes []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, err
		}
		modes = append(modes, title)
	}
	return modes, rows.Err()
}

// CountShortcuts returns the number of shortcuts stored under a mode.
func CountShortcuts(db *sql.DB, mode string) (int, error) {
	var count int
	err := db.QueryRow(
		"SELECT COUNT(*) FROM shortcuts s JOIN modes m ON m.id = s.mode_id WHERE m.title = ?",
		mode,
	).Scan(&count)
	return count, err
}

// LoadModes reads every mode with its shortcuts and titles, in stored order.
func LoadModes(db *sql.DB) ([]shortcut.Mode, error) {
	titles, err := loadTitles(db)
	if err != nil {
		return nil, err
	}
	tokens, err := loadTokens(db)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT m.title, s.id, s.key, s.key_form, s.title
		FROM modes m
		LEFT JOIN shortcuts s ON s.mode_id = m.id
		ORDER BY m.position, s.position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var modes []shortcut.Mode
	for rows.Next() {
		var (
			mode              string
			id                sql.NullInt64
			key, form, legacy sql.NullString
		)
		if err := rows.Scan(&mode, &id, &key, &form, &legacy); err != nil {
			return nil, err
		}
		if len(modes) == 0 || modes[len(modes)-1].Title != mode {
			modes = append(modes, shortcut.Mode{Title: mode})
		}
		// A mode without shortcuts comes back as a single NULL row.
		if !id.Valid {
			continue
		}
		m := &modes[len(modes)-1]
		m.Shortcuts = append(m.Shortcuts, shortcut.Shortcut{
			Key:    decodeKey(key.String, form.String, tokens[id.Int64]),
			Title:  legacy.String,
			Titles: titles[id.Int64],
		})
	}
	return modes, rows.Err()
}

func loadTitles(db *sql.DB) (map[int64][]string, error) {
	return loadChildren(db, "SELECT shortcut_id, title FROM shortcut_titles ORDER BY shortcut_id, position")
}

func loadTokens(db *sql.DB) (map[int64][]string, error) {
	return loadChildren(db, "SELECT shortcut_id, token FROM shortcut_tokens ORDER BY shortcut_id, position")
}

// loadChildren groups (shortcut_id, text) rows by shortcut.
func loadChildren(db *sql.DB, query string) (map[int64][]string, error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	children := make(map[int64][]string)
	for rows.Next() {
		var id int64
		var text string
		if err := rows.Scan(&id, &text); err != nil {
			return nil, err
		}
		children[id] = append(children[id], text)
	}
	return children, rows.Err()
}

// SaveModes replaces the stored modes with the given ones in a single
// transaction. Modes sharing a title are stored as one, since titles are
// unique in the schema.
func SaveModes(db *sql.DB, modes []shortcut.Mode) (err error) {
	modes = shortcut.MergeModes(modes)

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, stmt := range []string{
		"DELETE FROM shortcut_tokens",
		"DELETE FROM shortcut_titles",
		"DELETE FROM shortcuts",
		"DELETE FROM modes",
	} {
		if _, err = tx.Exec(stmt); err != nil {
			return err
		}
	}

	for mi, m := range modes {
		res, err := tx.Exec("INSERT INTO modes (title, position) VALUES (?, ?)", m.Title, mi)
		if err != nil {
			return fmt.Errorf("insert mode %q: %w", m.Title, err)
		}
		modeID, err := res.LastInsertId()
		if err != nil {
			return err
		}

		for si, s := range m.Shortcuts {
			key, form := encodeKey(s.Key)
			res, err := tx.Exec(
				"INSERT INTO shortcuts (mode_id, position, key, key_form, title) VALUES (?, ?, ?, ?, ?)",
				modeID, si, key, form, s.Title,
			)
			if err != nil {
				return fmt.Errorf("insert shortcut %q: %w", s.Key, err)
			}
			shortcutID, err := res.LastInsertId()
			if err != nil {
				return err
			}
			for ti, title := range s.Titles {
				if _, err := tx.Exec(
					"INSERT INTO shortcut_titles (shortcut_id, position, title) VALUES (?, ?, ?)",
					shortcutID, ti, title,
				); err != nil {
					return fmt.Errorf("insert title %q: %w", title, err)
				}
			}
			if !s.Key.IsSequence() {
				continue
			}
			for ti, token := range s.Key.Tokens() {
				if _, err := tx.Exec(
					"INSERT INTO shortcut_tokens (shortcut_id, position, token) VALUES (?, ?, ?)",
					shortcutID, ti, token,
				); err != nil {
					return fmt.Errorf("insert token %q: %w", token, err)
				}
			}
		}
	}

	return tx.Commit()
}

// Sequence keys keep their space-separated text in shortcuts.key for
// readability; the tokens themselves live in shortcut_tokens.
func encodeKey(k shortcut.Key) (string, string) {
	if k.IsSequence() {
		return k.Text(), formSequence
	}
	return k.Text(), formJoined
}

// decodeKey rebuilds a key. Sequence rows without token rows (inserted by
// hand, say) are split on whitespace instead.
func decodeKey(key, form string, tokens []string) shortcut.Key {
	if form == formSequence {
		if tokens == nil {
			tokens = strings.Fields(key)
		}
		return shortcut.Sequence(tokens...)
	}
	return shortcut.Joined(key)
}
