package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-SalonCalendar/internal/config"
	"github.com/m04kA/SMC-SalonCalendar/pkg/logger"
	"github.com/m04kA/SMC-SalonCalendar/pkg/psqlbuilder"
)

type menuItem struct {
	name     string
	duration string
	price    string
	category string
}

// menu базовое меню салона
var menu = []menuItem{
	{"Haircut & Blow Dry", "1h", "from AED 180", "Hair"},
	{"Blow Dry", "45 min", "AED 120", "Hair"},
	{"Root Colour", "1h", "from AED 250", "Colour"},
	{"Full Highlights", "2h", "from AED 550", "Colour"},
	{"Balayage", "3h", "from AED 750", "Colour"},
	{"Keratin Treatment", "2h", "from AED 900", "Treatments"},
	{"Classic Manicure", "30 min", "AED 90", "Nails"},
	{"Gel Manicure", "45 min", "AED 140", "Nails"},
	{"Classic Pedicure", "45 min", "AED 120", "Nails"},
	{"Eyebrow Threading", "15 min", "AED 40", "Brows & Lashes"},
	{"Lash Lift", "1h", "AED 220", "Brows & Lashes"},
	{"Express Facial", "30 min", "AED 200", "Skin"},
}

var pronouns = []string{"she/her", "he/him", "they/them"}

type seedOptions struct {
	configPath string
	clients    int
	staff      int
	seed       int64
	skipMenu   bool
}

func main() {
	opts := seedOptions{}

	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Fill the salon calendar database with demo staff, services and clients",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "config.toml", "Path to TOML config")
	cmd.Flags().IntVar(&opts.clients, "clients", 200, "Number of clients to create")
	cmd.Flags().IntVar(&opts.staff, "staff", 6, "Number of team members to create")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Random seed (0 = current time)")
	cmd.Flags().BoolVar(&opts.skipMenu, "skip-menu", false, "Do not insert the service menu")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts seedOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	log := logger.NewWithWriter(os.Stdout, cfg.Logs.Level)
	log.Info("seed starting (staff=%d, clients=%d)", opts.staff, opts.clients)

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gofakeit.Seed(seed)

	if err := seedStaff(ctx, db, opts.staff); err != nil {
		return fmt.Errorf("seed staff: %w", err)
	}
	log.Info("staff seeded: %d", opts.staff)

	if !opts.skipMenu {
		if err := seedMenu(ctx, db); err != nil {
			return fmt.Errorf("seed menu: %w", err)
		}
		log.Info("services seeded: %d", len(menu))
	}

	if err := seedClients(ctx, db, opts.clients, log); err != nil {
		return fmt.Errorf("seed clients: %w", err)
	}

	log.Info("seed complete")
	return nil
}

func seedStaff(ctx context.Context, db *sql.DB, count int) error {
	if count <= 0 {
		return nil
	}

	insert := psqlbuilder.Insert("staff").Columns("name", "sort_order", "active")
	for i := 0; i < count; i++ {
		insert = insert.Values(gofakeit.FirstName(), i, true)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, query, args...)
	return err
}

func seedMenu(ctx context.Context, db *sql.DB) error {
	insert := psqlbuilder.Insert("services").Columns("name", "duration", "price", "category")
	for _, item := range menu {
		insert = insert.Values(item.name, item.duration, item.price, item.category)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, query, args...)
	return err
}

func seedClients(ctx context.Context, db *sql.DB, count int, log *logger.Logger) error {
	const batchSize = 500

	now := time.Now()
	for offset := 0; offset < count; offset += batchSize {
		end := offset + batchSize
		if end > count {
			end = count
		}

		insert := psqlbuilder.Insert("clients").Columns("name", "phone", "email", "pronouns", "date_of_birth")
		for i := offset; i < end; i++ {
			var email *string
			if gofakeit.Bool() {
				e := gofakeit.Email()
				email = &e
			}
			dob := gofakeit.DateRange(now.AddDate(-70, 0, 0), now.AddDate(-16, 0, 0))

			insert = insert.Values(
				gofakeit.Name(),
				"+971"+gofakeit.Numerify("5########"),
				email,
				pronouns[gofakeit.Number(0, len(pronouns)-1)],
				dob.Format("2006-01-02"),
			)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			return err
		}

		log.Info("clients seeded: %d/%d", end, count)
	}

	return nil
}
