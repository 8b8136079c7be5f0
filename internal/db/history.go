package db

import "time"

// PlanRecord is one row of the plan history log.
type PlanRecord struct {
	ID           int64  `json:"id"`
	Timestamp    string `json:"timestamp"`
	TargetItemID string `json:"target_item_id"`
	TargetName   string `json:"target_name"`
	Quantity     int    `json:"quantity"`
	Mode         string `json:"mode"`
	RawCount     int    `json:"raw_count"`
	CraftCount   int    `json:"craft_count"`
}

// InsertPlanHistory records one computed plan and returns the row id,
// or 0 on failure (history is best-effort).
func (d *DB) InsertPlanHistory(targetItemID, targetName string, quantity int, mode string, rawCount, craftCount int) int64 {
	res, err := d.sql.Exec(`
		INSERT INTO plan_history (timestamp, target_item_id, target_name, quantity, mode, raw_count, craft_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), targetItemID, targetName, quantity, mode, rawCount, craftCount)
	if err != nil {
		return 0
	}
	id, _ := res.LastInsertId()
	return id
}

// GetPlanHistory returns the most recent plan records, newest first.
func (d *DB) GetPlanHistory(limit int) []PlanRecord {
	if limit <= 0 {
		limit = 50
	}
	rows, err := d.sql.Query(`
		SELECT id, timestamp, target_item_id, target_name, quantity, mode, raw_count, craft_count
		FROM plan_history ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var records []PlanRecord
	for rows.Next() {
		var r PlanRecord
		if rows.Scan(&r.ID, &r.Timestamp, &r.TargetItemID, &r.TargetName, &r.Quantity, &r.Mode, &r.RawCount, &r.CraftCount) == nil {
			records = append(records, r)
		}
	}
	return records
}

// ClearPlanHistory removes all plan records.
func (d *DB) ClearPlanHistory() error {
	_, err := d.sql.Exec("DELETE FROM plan_history")
	return err
}
