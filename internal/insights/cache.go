package insights

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mantra-journal/mantra/internal/logger"
	"github.com/mantra-journal/mantra/internal/models"
)

// ErrRefreshInFlight is returned when a refresh is requested while another
// one is still outstanding. The pending batch wins; the second request is
// rejected rather than queued.
var ErrRefreshInFlight = errors.New("insight refresh already in progress")

// expiryWindow is stamped on fresh insights. It is stored, not enforced;
// views show the batch age instead of dropping cards.
const expiryWindow = 24 * time.Hour

// Cache shapes and serializes insight refreshes. The batch itself lives in
// the journal store alongside the other persisted records; callers replace
// it wholesale with whatever Refresh returns.
type Cache struct {
	mu         sync.Mutex
	refreshing bool

	gen Generator
	now func() time.Time
}

// NewCache wraps a generator.
func NewCache(gen Generator) *Cache {
	return &Cache{gen: gen, now: time.Now}
}

// Refresh produces the next insight batch from the given history snapshot.
// The result is always a usable batch: provider failure degrades to a single
// error-placeholder card and is never surfaced as an error. The only error
// returned is ErrRefreshInFlight.
func (c *Cache) Refresh(ctx context.Context, entries []models.MoodEntry, userName string) ([]models.Insight, error) {
	c.mu.Lock()
	if c.refreshing {
		c.mu.Unlock()
		return nil, ErrRefreshInFlight
	}
	c.refreshing = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.refreshing = false
		c.mu.Unlock()
	}()

	if len(entries) == 0 {
		return []models.Insight{{
			ID:      "intro",
			Type:    models.InsightPatternDetection,
			Title:   "Welcome",
			Content: "Start logging your moods. Once you have your first entry, I can start providing daily forecasts.",
		}}, nil
	}

	batch, err := c.gen.GenerateInsights(ctx, entries, userName)
	if err != nil {
		logger.Error("Insight generation failed", "error", err)
		return []models.Insight{{
			ID:      "error",
			Type:    models.InsightPatternDetection,
			Title:   "Connection Issue",
			Content: "Unable to connect to Mantra AI. Please try again later.",
		}}, nil
	}

	expiry := c.now().Add(expiryWindow).UnixMilli()
	out := make([]models.Insight, len(batch))
	for i, ins := range batch {
		ins.ID = uuid.NewString()
		ins.Expiry = expiry
		out[i] = ins
	}
	return out, nil
}
