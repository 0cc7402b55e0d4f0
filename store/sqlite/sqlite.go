/*
Package sqlite provides a SQLite-backed metric source and roster store.

PURPOSE:
  Implements the settlement.MetricSource input contract over a local mirror
  of the warehouse tables. The same patterns apply to a hosted warehouse -
  only the SQL dialect differs.

KEY TABLES:
  couriers:         Roster with contractual attributes (project, sponsorship,
                    joining date) that drive category population filters
  courier_metrics:  One row per courier per day (orders, revenue, gas usage)
  category_targets: Nominal targets keyed by day-of-month, one column per
                    category

CATEGORY POPULATIONS:
  Each category selects its own slice of the roster:
    Motorcycle         project = 'Motorcycle'
    Food Trial         project = 'Food' AND sponsorship = 'Trial'
    Food In-House New  project = 'Food' AND sponsorship = 'Inhouse'
                       AND joined on/after 2024-01-01
    Food In-House Old  as above but joined before 2024-01-01
    Ecommerce WH       project = 'Ecommerce WH'
    Ecommerce          project = 'Ecommerce'
    Ajeer              sponsorship = 'Ajeer'

AGGREGATION:
  FetchRows sums the daily metric rows over the inclusive period window,
  grouped per courier, and joins the nominal target by the day-of-month of
  the period end date. The result rows are exactly what the settlement
  formulas expect.

CONCURRENCY:
  Uses sync.RWMutex around writes. SQLite is opened in WAL mode so readers
  do not block.

USAGE:
  store, err := sqlite.New("./data/settlements.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  asm := &settlement.Assembler{Source: store}

SEE ALSO:
  - settlement/types.go: MetricSource contract and RawMetricRow shape
  - seed.go: Demo roster for local runs
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/barq/settlement-engine/settlement"
)

// inhouseSplitDate separates "new" from "old" Food In-House contracts.
const inhouseSplitDate = "2024-01-01"

// Store implements settlement.MetricSource plus roster management.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A ":memory:" database exists per connection; one connection keeps it
	// coherent. Writes are serialized by mu regardless.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Roster with the contractual attributes category filters use
	CREATE TABLE IF NOT EXISTS couriers (
		barq_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		iban TEXT NOT NULL DEFAULT '',
		id_number TEXT NOT NULL DEFAULT '',
		joining_date TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'Active',
		sponsorship_status TEXT NOT NULL DEFAULT '',
		project TEXT NOT NULL DEFAULT '',
		supervisor TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);

	CREATE INDEX IF NOT EXISTS idx_couriers_project
		ON couriers(project);
	CREATE INDEX IF NOT EXISTS idx_couriers_sponsorship
		ON couriers(sponsorship_status);

	-- One row per courier per day
	CREATE TABLE IF NOT EXISTS courier_metrics (
		barq_id INTEGER NOT NULL REFERENCES couriers(barq_id),
		metric_date TEXT NOT NULL,
		orders REAL NOT NULL DEFAULT 0,
		revenue REAL NOT NULL DEFAULT 0,
		gas_usage REAL NOT NULL DEFAULT 0,
		PRIMARY KEY (barq_id, metric_date)
	);

	-- Period aggregation (hot path)
	CREATE INDEX IF NOT EXISTS idx_metrics_date
		ON courier_metrics(metric_date);

	-- Nominal targets keyed by day-of-month of the period end date
	CREATE TABLE IF NOT EXISTS category_targets (
		day INTEGER PRIMARY KEY CHECK (day BETWEEN 1 AND 31),
		motorcycle REAL NOT NULL DEFAULT 0,
		food_trial REAL NOT NULL DEFAULT 0,
		food_inhouse REAL NOT NULL DEFAULT 0,
		ecommerce_wh REAL NOT NULL DEFAULT 0,
		ecommerce REAL NOT NULL DEFAULT 0,
		ajeer REAL NOT NULL DEFAULT 0
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// ROSTER
// =============================================================================

// Courier is one roster entry.
type Courier struct {
	BarqID      int64
	Name        string
	IBAN        string
	IDNumber    string
	JoiningDate time.Time
	Status      string
	Sponsorship string
	Project     string
	Supervisor  string
}

// SaveCourier inserts or replaces a roster entry.
func (s *Store) SaveCourier(ctx context.Context, c Courier) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.Status == "" {
		c.Status = "Active"
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO couriers
			(barq_id, name, iban, id_number, joining_date, status,
			 sponsorship_status, project, supervisor)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.BarqID, c.Name, c.IBAN, c.IDNumber,
		c.JoiningDate.Format(settlement.DateLayout),
		c.Status, c.Sponsorship, c.Project, c.Supervisor)
	return err
}

// GetCourier returns a roster entry, or nil if it does not exist.
func (s *Store) GetCourier(ctx context.Context, barqID int64) (*Courier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT barq_id, name, iban, id_number, joining_date, status,
		       sponsorship_status, project, supervisor
		FROM couriers WHERE barq_id = ?`, barqID)

	c, err := scanCourier(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListCouriers returns the full roster ordered by ID.
func (s *Store) ListCouriers(ctx context.Context) ([]Courier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT barq_id, name, iban, id_number, joining_date, status,
		       sponsorship_status, project, supervisor
		FROM couriers ORDER BY barq_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var couriers []Courier
	for rows.Next() {
		c, err := scanCourier(rows)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, *c)
	}
	return couriers, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCourier(row scanner) (*Courier, error) {
	var c Courier
	var joining string
	err := row.Scan(&c.BarqID, &c.Name, &c.IBAN, &c.IDNumber, &joining,
		&c.Status, &c.Sponsorship, &c.Project, &c.Supervisor)
	if err != nil {
		return nil, err
	}
	c.JoiningDate, err = time.Parse(settlement.DateLayout, joining)
	if err != nil {
		return nil, fmt.Errorf("courier %d: bad joining date %q: %w", c.BarqID, joining, err)
	}
	return &c, nil
}

// =============================================================================
// DAILY METRICS
// =============================================================================

// MetricEntry is one courier's activity for one day.
type MetricEntry struct {
	BarqID   int64
	Date     time.Time
	Orders   float64
	Revenue  float64
	GasUsage float64
}

// RecordMetric inserts or replaces one daily metric row.
func (s *Store) RecordMetric(ctx context.Context, m MetricEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO courier_metrics
			(barq_id, metric_date, orders, revenue, gas_usage)
		VALUES (?, ?, ?, ?, ?)`,
		m.BarqID, m.Date.Format(settlement.DateLayout),
		m.Orders, m.Revenue, m.GasUsage)
	return err
}

// =============================================================================
// TARGETS
// =============================================================================

// TargetRow holds the nominal targets for one day-of-month.
type TargetRow struct {
	Day         int
	Motorcycle  float64
	FoodTrial   float64
	FoodInhouse float64
	EcommerceWH float64
	Ecommerce   float64
	Ajeer       float64
}

// SetTargets inserts or replaces the target row for one day-of-month.
func (s *Store) SetTargets(ctx context.Context, t TargetRow) error {
	if t.Day < 1 || t.Day > 31 {
		return fmt.Errorf("target day %d out of range", t.Day)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO category_targets
			(day, motorcycle, food_trial, food_inhouse, ecommerce_wh, ecommerce, ajeer)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.Day, t.Motorcycle, t.FoodTrial, t.FoodInhouse,
		t.EcommerceWH, t.Ecommerce, t.Ajeer)
	return err
}

// =============================================================================
// METRIC SOURCE - settlement.MetricSource implementation
// =============================================================================

// categoryQueries carries the population filter and target column for each
// category. The filter strings are fixed SQL fragments, never caller input.
var categoryQueries = map[settlement.Category]struct {
	targetColumn string
	condition    string
}{
	settlement.CategoryMotorcycle: {
		targetColumn: "motorcycle",
		condition:    "c.project = 'Motorcycle'",
	},
	settlement.CategoryFoodTrial: {
		targetColumn: "food_trial",
		condition:    "c.project = 'Food' AND c.sponsorship_status = 'Trial'",
	},
	settlement.CategoryFoodInhouseNew: {
		targetColumn: "food_inhouse",
		condition: "c.project = 'Food' AND c.sponsorship_status = 'Inhouse'" +
			" AND c.joining_date >= '" + inhouseSplitDate + "'",
	},
	settlement.CategoryFoodInhouseOld: {
		targetColumn: "food_inhouse",
		condition: "c.project = 'Food' AND c.sponsorship_status = 'Inhouse'" +
			" AND c.joining_date < '" + inhouseSplitDate + "'",
	},
	settlement.CategoryEcommerceWH: {
		targetColumn: "ecommerce_wh",
		condition:    "c.project = 'Ecommerce WH'",
	},
	settlement.CategoryEcommerce: {
		targetColumn: "ecommerce",
		condition:    "c.project = 'Ecommerce'",
	},
	settlement.CategoryAjeer: {
		targetColumn: "ajeer",
		condition:    "c.sponsorship_status = 'Ajeer'",
	},
}

// FetchRows aggregates the daily metrics for one category over the period
// window, one row per courier, with the nominal target joined by the
// day-of-month of the period end date.
func (s *Store) FetchRows(ctx context.Context, category settlement.Category, period settlement.Period) ([]settlement.RawMetricRow, error) {
	cq, ok := categoryQueries[category]
	if !ok {
		return nil, fmt.Errorf("no population filter for category %q", category)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	query := fmt.Sprintf(`
		SELECT
			c.barq_id, c.iban, c.id_number, c.joining_date, c.name, c.status,
			c.sponsorship_status, c.project, c.supervisor,
			COALESCE(SUM(m.orders), 0),
			COALESCE(SUM(m.revenue), 0),
			COALESCE(SUM(m.gas_usage), 0),
			COALESCE(MAX(t.%s), 0)
		FROM couriers c
		JOIN courier_metrics m ON m.barq_id = c.barq_id
		LEFT JOIN category_targets t ON t.day = ?
		WHERE m.metric_date BETWEEN ? AND ?
		  AND %s
		GROUP BY c.barq_id
		ORDER BY c.barq_id`, cq.targetColumn, cq.condition)

	rows, err := s.db.QueryContext(ctx, query,
		period.End.Day(),
		period.Start.Format(settlement.DateLayout),
		period.End.Format(settlement.DateLayout))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []settlement.RawMetricRow
	for rows.Next() {
		var r settlement.RawMetricRow
		if err := rows.Scan(&r.DriverID, &r.IBAN, &r.IDNumber, &r.JoiningDate,
			&r.Name, &r.Status, &r.Sponsorship, &r.Project, &r.Supervisor,
			&r.TotalOrders, &r.TotalRevenue, &r.GasUsage, &r.NominalTarget); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}
