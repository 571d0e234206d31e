package store

import "database/sql"

// CommissionStats summarizes the inquiry pipeline for the dashboard.
type CommissionStats struct {
	Total    int
	ByStatus map[string]int
}

func (s *Store) GetCommissionStats() (*CommissionStats, error) {
	stats := &CommissionStats{
		ByStatus: make(map[string]int),
	}

	err := s.DB.QueryRow("SELECT COUNT(*) FROM commissions").Scan(&stats.Total)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}

	rows, err := s.DB.Query("SELECT status, COUNT(*) FROM commissions GROUP BY status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.ByStatus[status] = count
	}

	return stats, rows.Err()
}
