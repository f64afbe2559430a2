// ABOUTME: Coach feedback generation from a logged training day.
// ABOUTME: Prompts are deterministic so responses cache by content hash.
package coach

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/harperreed/planner/internal/models"
)

const systemPrompt = `You are a pragmatic strength coach reviewing one training session.
Comment on intensity relative to the RPE targets, flag anything that looks like
overreaching, and suggest one concrete focus for the next session.
Keep it under 150 words. No headings, no bullet lists.`

// Cache stores coach responses keyed by prompt hash. Implementations must be
// safe for use from a single CLI invocation; no cross-process locking is
// assumed.
type Cache interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Chatter is the completion backend. *Client satisfies it.
type Chatter interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}

// Coach produces feedback for logged days.
type Coach struct {
	client Chatter
	cache  Cache
}

// New creates a Coach. cache may be nil to disable caching.
func New(client Chatter, cache Cache) *Coach {
	return &Coach{client: client, cache: cache}
}

// Feedback returns coach commentary for the given day, consulting the cache
// first. The day must carry at least one logged exercise.
func (c *Coach) Feedback(ctx context.Context, state *models.PlannerState, weekIdx, dayIdx int) (string, error) {
	day := state.Day(weekIdx, dayIdx)
	if day == nil {
		return "", fmt.Errorf("no day at week %d day %d", weekIdx+1, dayIdx+1)
	}
	prompt, err := BuildPrompt(state.Framework, weekIdx, dayIdx, day)
	if err != nil {
		return "", err
	}

	key := cacheKey(prompt)
	if c.cache != nil {
		if cached, ok := c.cache.Get(key); ok {
			return cached, nil
		}
	}

	reply, err := c.client.Chat(ctx, []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return "", err
	}

	if c.cache != nil {
		if err := c.cache.Set(key, reply); err != nil {
			return reply, fmt.Errorf("cache write: %w", err)
		}
	}
	return reply, nil
}

// BuildPrompt renders a day's log into the user prompt. Errors when nothing
// has been logged yet; there is nothing to coach.
func BuildPrompt(framework models.TrainingFramework, weekIdx, dayIdx int, day *models.DayEntry) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Framework: %s. Week %d, day %d (%s).\n",
		framework, weekIdx+1, dayIdx+1, day.Date.Format("2006-01-02"))

	logged := 0
	for _, ex := range day.Training {
		if !ex.Logged() {
			continue
		}
		logged++
		reps := ex.Reps
		if ex.ActualReps != nil {
			reps = *ex.ActualReps
		}
		fmt.Fprintf(&sb, "- %s (%s): %dx%d @ %.1f kg, target RPE %.1f, actual RPE %.1f\n",
			ex.Name, ex.MovementPattern, ex.Sets, reps, ex.LoadKg, ex.TargetRPE, *ex.ActualRPE)
	}
	if logged == 0 {
		return "", fmt.Errorf("nothing logged for week %d day %d", weekIdx+1, dayIdx+1)
	}

	if day.SessionRPE != nil {
		fmt.Fprintf(&sb, "Session RPE: %.1f\n", *day.SessionRPE)
	}
	if day.SleepHours > 0 {
		fmt.Fprintf(&sb, "Sleep: %.1f h\n", day.SleepHours)
	}
	if day.StressLevel > 0 {
		fmt.Fprintf(&sb, "Stress: %d/10\n", day.StressLevel)
	}
	if day.Notes != nil && *day.Notes != "" {
		fmt.Fprintf(&sb, "Notes: %s\n", *day.Notes)
	}
	return sb.String(), nil
}

func cacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
