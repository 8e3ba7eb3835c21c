// Command seed loads a small demo dataset for local development: one
// teacher, one director, a subject with two groups and a handful of
// enrolled students. It is idempotent; rerunning leaves existing rows
// in place.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/Massi21022535/Asistencia-Back/pkg/config"
	"github.com/Massi21022535/Asistencia-Back/pkg/database"
)

func main() {
	var password string
	flag.StringVar(&password, "password", "cambiame", "password assigned to the seeded users")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db, cfg.Database.MigrationsDir); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seed(ctx, db, password); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("demo data loaded")
}

func seed(ctx context.Context, db *sqlx.DB, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	teacherID, err := upsertUser(ctx, tx, "profesor", string(hash), "TEACHER")
	if err != nil {
		return err
	}
	if _, err := upsertUser(ctx, tx, "director", string(hash), "DIRECTOR"); err != nil {
		return err
	}

	subjectID, err := upsertNamed(ctx, tx, "subjects", "Matematica")
	if err != nil {
		return err
	}

	groups := []string{"1A", "1B"}
	for _, name := range groups {
		groupID, err := upsertGroup(ctx, tx, subjectID, name)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO teaching_assignments (id, teacher_id, group_id)
VALUES ($1, $2, $3) ON CONFLICT (teacher_id, group_id) DO NOTHING`,
			uuid.NewString(), teacherID, groupID); err != nil {
			return err
		}
		if err := enrollStudents(ctx, tx, groupID, name); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func upsertUser(ctx context.Context, tx *sqlx.Tx, username, hash, role string) (string, error) {
	var id string
	err := tx.GetContext(ctx, &id, `INSERT INTO users (id, username, password_hash, role)
VALUES ($1, $2, $3, $4)
ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash
RETURNING id`, uuid.NewString(), username, hash, role)
	return id, err
}

func upsertNamed(ctx context.Context, tx *sqlx.Tx, table, name string) (string, error) {
	var id string
	if err := tx.GetContext(ctx, &id, `SELECT id FROM `+table+` WHERE name = $1`, name); err == nil {
		return id, nil
	}
	id = uuid.NewString()
	_, err := tx.ExecContext(ctx, `INSERT INTO `+table+` (id, name) VALUES ($1, $2)`, id, name)
	return id, err
}

func upsertGroup(ctx context.Context, tx *sqlx.Tx, subjectID, name string) (string, error) {
	var id string
	if err := tx.GetContext(ctx, &id, `SELECT id FROM groups WHERE subject_id = $1 AND name = $2`, subjectID, name); err == nil {
		return id, nil
	}
	id = uuid.NewString()
	_, err := tx.ExecContext(ctx, `INSERT INTO groups (id, subject_id, name) VALUES ($1, $2, $3)`, id, subjectID, name)
	return id, err
}

func enrollStudents(ctx context.Context, tx *sqlx.Tx, groupID, suffix string) error {
	students := []struct {
		document string
		lastName string
		names    string
	}{
		{"30111222" + suffix[:1], "Gomez", "Ana"},
		{"30333444" + suffix[:1], "Perez", "Luis"},
		{"30555666" + suffix[:1], "Sosa", "Carla"},
	}

	for _, s := range students {
		var studentID string
		err := tx.GetContext(ctx, &studentID, `INSERT INTO students (id, document_number, last_name, first_names, enrollment_code)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (document_number) DO UPDATE SET last_name = EXCLUDED.last_name
RETURNING id`, uuid.NewString(), s.document, s.lastName, s.names, "LEG-"+s.document)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO enrollments (id, student_id, group_id)
VALUES ($1, $2, $3) ON CONFLICT (student_id, group_id) DO NOTHING`,
			uuid.NewString(), studentID, groupID); err != nil {
			return err
		}
	}
	return nil
}
