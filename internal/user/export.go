// AngelaMos | 2026
// export.go

package user

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hibiken/asynq"

	"github.com/angelamos/accounts-api/internal/events"
	"github.com/angelamos/accounts-api/internal/jobs"
)

// Exporter is the worker-side handler for user export tasks.
type Exporter struct {
	repo      Repository
	emitter   events.Emitter
	exportDir string
	logger    *slog.Logger
}

func NewExporter(
	repo Repository,
	emitter events.Emitter,
	exportDir string,
	logger *slog.Logger,
) *Exporter {
	return &Exporter{
		repo:      repo,
		emitter:   emitter,
		exportDir: exportDir,
		logger:    logger,
	}
}

func (e *Exporter) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload jobs.ExportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal export payload: %w", err)
	}

	accounts, err := e.repo.All(ctx)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(e.exportDir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	filename := fmt.Sprintf(
		"users-%s.csv", time.Now().UTC().Format("20060102-150405"),
	)
	path := filepath.Join(e.exportDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"id", "first_name", "last_name", "email", "company", "timezone",
		"locale", "active", "country_code", "login_count", "last_login",
		"created_at",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write export header: %w", err)
	}

	for i := range accounts {
		u := &accounts[i]

		company := ""
		if u.Company != nil {
			company = *u.Company
		}
		countryCode := ""
		if u.CountryCode != nil {
			countryCode = *u.CountryCode
		}
		lastLogin := ""
		if u.LastLogin != nil {
			lastLogin = u.LastLogin.UTC().Format(time.RFC3339)
		}

		record := []string{
			u.ID,
			u.FirstName,
			u.LastName,
			u.Email,
			company,
			u.Timezone,
			u.Locale,
			strconv.FormatBool(u.Active),
			countryCode,
			strconv.Itoa(u.LoginCount),
			lastLogin,
			u.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write export row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush export: %w", err)
	}

	e.logger.Info("user export written",
		"file", path,
		"rows", len(accounts),
		"requested_by", payload.RequestedBy,
	)

	e.emitter.Emit(
		ctx,
		events.AccountRoom(payload.RequestedBy),
		events.UserExported,
		map[string]any{"file": filename, "rows": len(accounts)},
	)

	return nil
}
