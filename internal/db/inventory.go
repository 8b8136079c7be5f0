package db

import "fmt"

// LoadInventory returns the stored inventory as item id -> count.
func (d *DB) LoadInventory() map[string]int {
	inv := make(map[string]int)
	rows, err := d.sql.Query("SELECT item_id, qty FROM inventory")
	if err != nil {
		return inv
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		var qty int
		if rows.Scan(&id, &qty) == nil && qty > 0 {
			inv[id] = qty
		}
	}
	return inv
}

// SetInventoryCount upserts one item count. A count of zero or less removes
// the row.
func (d *DB) SetInventoryCount(itemID string, qty int) error {
	if itemID == "" {
		return fmt.Errorf("empty item id")
	}
	if qty <= 0 {
		_, err := d.sql.Exec("DELETE FROM inventory WHERE item_id = ?", itemID)
		return err
	}
	_, err := d.sql.Exec(`
		INSERT INTO inventory (item_id, qty) VALUES (?, ?)
		ON CONFLICT(item_id) DO UPDATE SET qty = excluded.qty`,
		itemID, qty)
	return err
}

// ReplaceInventory swaps the whole stored inventory for inv in one
// transaction. Non-positive counts are skipped.
func (d *DB) ReplaceInventory(inv map[string]int) error {
	tx, err := d.sql.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM inventory"); err != nil {
		return err
	}
	for id, qty := range inv {
		if id == "" || qty <= 0 {
			continue
		}
		if _, err := tx.Exec("INSERT INTO inventory (item_id, qty) VALUES (?, ?)", id, qty); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ClearInventory removes every stored count.
func (d *DB) ClearInventory() error {
	_, err := d.sql.Exec("DELETE FROM inventory")
	return err
}
