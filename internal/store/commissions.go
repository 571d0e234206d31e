package store

import (
	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/models"
)

func (s *Store) CreateCommission(req *models.CommissionRequest) error {
	query := `
		INSERT INTO commissions (ref, name, email, tier, description, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`
	_, err := s.DB.Exec(query, req.Ref, req.Name, req.Email, req.Tier, req.Description, req.Status)
	return err
}

func (s *Store) GetAllCommissions(limit, offset int) ([]models.CommissionRequest, error) {
	query := `
		SELECT id, ref, name, email, COALESCE(tier, '') as tier, description, status, created_at
		FROM commissions
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`
	rows, err := s.DB.Query(query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []models.CommissionRequest
	for rows.Next() {
		var c models.CommissionRequest
		if err := rows.Scan(&c.ID, &c.Ref, &c.Name, &c.Email, &c.Tier, &c.Description, &c.Status, &c.CreatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, c)
	}
	return requests, rows.Err()
}

func (s *Store) GetTotalCommissionsCount() (int, error) {
	var count int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM commissions").Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Store) UpdateCommissionStatus(id int, status string) error {
	query := `UPDATE commissions SET status = ? WHERE id = ?`
	_, err := s.DB.Exec(query, status, id)
	return err
}
