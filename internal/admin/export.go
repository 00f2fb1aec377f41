// AngelaMos | 2026
// export.go

package admin

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

// Exporter is the worker-side handler for admin export tasks. It snapshots
// every live account to a CSV under the export directory and notifies the
// requesting admin's room when the file is ready.
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
		"admins-%s.csv", time.Now().UTC().Format("20060102-150405"),
	)
	path := filepath.Join(e.exportDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"id", "name", "email", "timezone", "locale", "active",
		"login_count", "last_login", "created_at",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write export header: %w", err)
	}

	for i := range accounts {
		a := &accounts[i]
		lastLogin := ""
		if a.LastLogin != nil {
			lastLogin = a.LastLogin.UTC().Format(time.RFC3339)
		}

		record := []string{
			a.ID,
			a.Name,
			a.Email,
			a.Timezone,
			a.Locale,
			strconv.FormatBool(a.Active),
			strconv.Itoa(a.LoginCount),
			lastLogin,
			a.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write export row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush export: %w", err)
	}

	e.logger.Info("admin export written",
		"file", path,
		"rows", len(accounts),
		"requested_by", payload.RequestedBy,
	)

	e.emitter.Emit(
		ctx,
		events.AccountRoom(payload.RequestedBy),
		events.AdminExported,
		map[string]any{"file": filename, "rows": len(accounts)},
	)

	return nil
}
