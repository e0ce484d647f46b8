package db

import (
	"fmt"

	"portfolio/internal/appointment"
	"portfolio/internal/auth"
	"portfolio/internal/blog"
	"portfolio/internal/contact"
	"portfolio/internal/experience"
	"portfolio/internal/jobs"
	"portfolio/internal/newsletter"
	"portfolio/internal/project"
	"portfolio/internal/settings"
	"portfolio/internal/testimonial"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	// Tables
	if err := gdb.AutoMigrate(
		&auth.Admin{},
		&appointment.Appointment{},
		&project.Project{},
		&experience.Experience{},
		&blog.BlogPost{},
		&blog.Comment{},
		&contact.Contact{},
		&testimonial.Testimonial{},
		&newsletter.Subscriber{},
		&settings.Setting{},
		&jobs.Job{},
	); err != nil {
		return err
	}

	// One live booking per slot: unique on (date, time) for every row that is
	// not cancelled. This closes the check-then-insert race at the storage
	// layer; racing inserts fail the constraint and map to CONFLICT.
	if err := gdb.Exec(`
create unique index if not exists uq_appointments_slot
on appointments(date, time)
where status <> 'cancelled';
`).Error; err != nil {
		return err
	}

	// Helpful indexes
	stmts := []string{
		`create index if not exists idx_appointments_date_status on appointments(date, status);`,
		`create index if not exists idx_blog_posts_published on blog_posts(published, created_at desc);`,
		`create index if not exists idx_comments_post on comments(post_id, created_at);`,
		`create index if not exists idx_contacts_read on contacts(read);`,
		`create index if not exists idx_jobs_due on jobs(status, run_at);`,
		`create index if not exists idx_jobs_lock on jobs(status, locked_at);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
