package db

// GetPref reads a stored preference, returning fallback when unset.
func (d *DB) GetPref(key, fallback string) string {
	var value string
	if err := d.sql.QueryRow("SELECT value FROM prefs WHERE key=?", key).Scan(&value); err != nil {
		return fallback
	}
	return value
}

// SetPref stores a preference value.
func (d *DB) SetPref(key, value string) error {
	_, err := d.sql.Exec("INSERT OR REPLACE INTO prefs (key, value) VALUES (?,?)", key, value)
	return err
}
