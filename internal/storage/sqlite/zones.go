package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/sremy91/intuis-schedule-card/internal/models"
)

func (s *Store) Zones() ([]models.Zone, error) {
	rows, err := s.db.Query(`SELECT id, name, type, room_temperatures FROM zones ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to read zones: %w", err)
	}
	defer rows.Close()

	var zones []models.Zone
	for rows.Next() {
		z, err := scanZone(rows.Scan)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, rows.Err()
}

func (s *Store) ZoneByID(id int) (models.Zone, error) {
	row := s.db.QueryRow(`SELECT id, name, type, room_temperatures FROM zones WHERE id = ?`, id)
	z, err := scanZone(row.Scan)
	if err == sql.ErrNoRows {
		return models.Zone{}, fmt.Errorf("zone %d not found", id)
	}
	return z, err
}

func (s *Store) SaveZones(zones []models.Zone) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM zones`); err != nil {
		return err
	}
	for _, z := range zones {
		temps, err := json.Marshal(z.RoomTemperatures)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(
			`INSERT INTO zones (id, name, type, room_temperatures) VALUES (?, ?, ?, ?)`,
			z.ID, z.Name, z.Type, string(temps),
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func scanZone(scan func(...any) error) (models.Zone, error) {
	var z models.Zone
	var temps string
	if err := scan(&z.ID, &z.Name, &z.Type, &temps); err != nil {
		return models.Zone{}, err
	}
	if temps != "" {
		if err := json.Unmarshal([]byte(temps), &z.RoomTemperatures); err != nil {
			return models.Zone{}, fmt.Errorf("corrupt room temperatures for zone %d: %w", z.ID, err)
		}
	}
	return z, nil
}
