package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/ports"
)

// kvEntry fila de la tabla kv_entries: una clave, un valor en texto plano.
type kvEntry struct {
	Key       string `gorm:"column:kv_key;primaryKey;size:64"`
	Value     string `gorm:"column:kv_value;type:text;not null"`
	UpdatedAt time.Time
}

func (kvEntry) TableName() string { return "kv_entries" }

// SQLiteStore implementa ports.KeyValueStore sobre un archivo SQLite vía GORM.
type SQLiteStore struct {
	db *gorm.DB
}

var _ ports.KeyValueStore = (*SQLiteStore)(nil)

// OpenSQLite abre (o crea) el archivo y migra la tabla. path ":memory:" sirve para pruebas.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("storage: ruta vacía")
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:  gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("storage: abrir sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("storage: obtener sql.DB: %w", err)
	}
	// una sola conexión: con ":memory:" cada conexión sería una base distinta
	sqlDB.SetMaxOpenConns(1)

	if err := db.WithContext(ctx).AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("storage: migrar kv_entries: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Get devuelve el valor y si existe.
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var e kvEntry
	err := s.db.WithContext(ctx).Where("kv_key = ?", key).Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: leer %q: %w", key, err)
	}
	return e.Value, true, nil
}

// Set inserta o reemplaza el valor de la clave.
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	e := kvEntry{Key: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kv_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"kv_value", "updated_at"}),
	}).Create(&e).Error
	if err != nil {
		return fmt.Errorf("storage: guardar %q: %w", key, err)
	}
	return nil
}

// Delete elimina la clave; no falla si no existía.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("kv_key = ?", key).Delete(&kvEntry{}).Error; err != nil {
		return fmt.Errorf("storage: borrar %q: %w", key, err)
	}
	return nil
}

// Close libera la conexión subyacente.
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
