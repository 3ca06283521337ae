package jekafood

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/HullPerse/jekafood/internal/bg"
	"github.com/HullPerse/jekafood/internal/config"
	"github.com/HullPerse/jekafood/internal/db"
	"github.com/HullPerse/jekafood/internal/events"
	applog "github.com/HullPerse/jekafood/internal/log"
	"github.com/HullPerse/jekafood/internal/store"
)

func openPersister(c config.Config) (store.Persister, error) {
	switch c.Backend {
	case config.BackendJSON:
		return db.NewJSONFile(c.JSONPath)
	default:
		return db.OpenSnapshotStore(c.DBPath)
	}
}

// withStore opens the configured store for the duration of run. Pending
// saves are flushed before it returns.
func withStore(run func(*store.Store) error) (err error) {
	ctx := context.Background()
	p, err := openPersister(cfg)
	if err != nil {
		return err
	}
	st, err := store.Open(ctx, p,
		store.WithRunner(bg.Async{}),
		store.WithLogger(logger.WithComponent(applog.ComponentStore)),
	)
	if err != nil {
		_ = p.Close()
		return err
	}
	defer func() {
		err = errors.Join(err, st.Close())
	}()

	if cfg.AMQP.URL != "" {
		pub, perr := events.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.RoutingKey, logger)
		if perr != nil {
			logger.Warn("change feed disabled", applog.FieldError, perr)
		} else {
			defer pub.Close()
			loc, lerr := cfg.Location()
			if lerr != nil {
				return lerr
			}
			feed := events.NewFeed(ctx, pub, bg.Async{}, loc, logger)
			defer feed.Wait()
			unsubscribe := st.Subscribe(feed.Listener())
			defer unsubscribe()
		}
	}
	return run(st)
}

func location() *time.Location {
	loc, err := cfg.Location()
	if err != nil {
		return time.UTC
	}
	return loc
}

// parsePositionArg turns a 1-based list position into a slice index.
func parsePositionArg(value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid entry number %q", value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("entry number must be > 0")
	}
	return v - 1, nil
}

func parseDateTimeOrNow(date, timeStr string) (time.Time, error) {
	date = strings.TrimSpace(date)
	timeStr = strings.TrimSpace(timeStr)
	if date == "" && timeStr == "" {
		return time.Now(), nil
	}
	if date == "" {
		return time.Time{}, fmt.Errorf("--date is required when --time is set")
	}
	if timeStr == "" {
		t, err := time.ParseInLocation("2006-01-02", date, location())
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
		}
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+timeStr, location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date/--time (expected YYYY-MM-DD and HH:MM)")
	}
	return t, nil
}
