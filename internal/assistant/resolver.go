package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alee-2021/clear/internal/domain"
	"github.com/alee-2021/clear/internal/platform/logger"
	"github.com/alee-2021/clear/internal/store"
	"github.com/google/uuid"
)

// Action tags the kind of operation a resolver response reports.
type Action string

// Possible response actions. A failed complete/delete degrades to a list
// response, so those paths report ActionList.
const (
	ActionList     Action = "list"
	ActionAdd      Action = "add"
	ActionComplete Action = "complete"
	ActionDelete   Action = "delete"
	ActionError    Action = "error"
)

// Response is the uniform structure every resolver path returns and the sole
// contract exposed to the HTTP layer. Tasks is nil when no list applies and
// an empty slice for an empty list result.
type Response struct {
	Message string        `json:"message"`
	Tasks   []domain.Task `json:"tasks"`
	Action  Action        `json:"action"`
}

// Resolver executes natural-language commands against the task store on
// behalf of a single owner per call.
type Resolver struct {
	tasks store.TaskStore
	dates *DateParser
	now   func() time.Time
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithClock overrides the resolver's time source. Used by tests to pin
// relative date calculations.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) {
		r.now = now
	}
}

// NewResolver creates a Resolver over the given task store.
func NewResolver(tasks store.TaskStore, dates *DateParser, opts ...Option) *Resolver {
	r := &Resolver{
		tasks: tasks,
		dates: dates,
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve classifies the text and executes the resulting operation scoped to
// ownerID. Persistence failures propagate to the caller; everything else —
// unmatched tasks, unparseable dates, near-empty content — resolves to a
// well-formed Response. Callers are responsible for rejecting empty input.
func (r *Resolver) Resolve(ctx context.Context, ownerID uuid.UUID, text string) (*Response, error) {
	normalized := strings.ToLower(strings.TrimSpace(text))

	log := logger.FromContext(ctx)
	intent := Classify(text)
	log.Debug("classified natural-language request",
		"intent", string(intent),
		"user_id", ownerID)

	switch intent {
	case IntentList:
		return r.resolveList(ctx, ownerID, normalized)
	case IntentComplete, IntentDelete:
		return r.resolveMutation(ctx, ownerID, normalized, intent)
	default:
		return r.resolveAdd(ctx, ownerID, text)
	}
}

// resolveList answers a list intent. "today" narrows to tasks due today,
// "done"/"completed" switches to the completed list, anything else returns
// pending tasks in due-date order.
func (r *Resolver) resolveList(ctx context.Context, ownerID uuid.UUID, text string) (*Response, error) {
	var tasks []domain.Task
	var err error

	switch {
	case strings.Contains(text, "today"):
		tasks, err = r.tasks.ListPendingDueOn(ctx, ownerID, domain.DateOf(r.now()))
	case strings.Contains(text, "done") || strings.Contains(text, "completed"):
		tasks, err = r.tasks.ListDone(ctx, ownerID)
	default:
		tasks, err = r.tasks.ListPendingByDueDate(ctx, ownerID)
	}
	if err != nil {
		return nil, err
	}

	if len(tasks) == 0 {
		return &Response{
			Message: "You have no pending tasks. Nice work!",
			Tasks:   []domain.Task{},
			Action:  ActionList,
		}, nil
	}

	return &Response{
		Message: fmt.Sprintf("Here are your tasks (%d total):", len(tasks)),
		Tasks:   tasks,
		Action:  ActionList,
	}, nil
}

// resolveMutation handles complete and delete intents. The store mutation is
// guarded by the pending status, so losing a same-owner race produces the
// same degraded list response as finding no match at all.
func (r *Resolver) resolveMutation(ctx context.Context, ownerID uuid.UUID, text string, intent Intent) (*Response, error) {
	pending, err := r.tasks.ListPending(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	match := MatchTask(pending, text)
	if match == nil {
		return noMatchResponse(intent, pending), nil
	}

	var affected int64
	if intent == IntentComplete {
		affected, err = r.tasks.MarkDone(ctx, match.ID, ownerID)
	} else {
		affected, err = r.tasks.DeletePending(ctx, match.ID, ownerID)
	}
	if err != nil {
		return nil, err
	}

	if affected == 0 {
		// Another request got to the task first; re-read so the degraded
		// list reflects what is actually left.
		pending, err = r.tasks.ListPending(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		return noMatchResponse(intent, pending), nil
	}

	if intent == IntentComplete {
		return &Response{
			Message: fmt.Sprintf("Great job! Marked '%s' as done!", match.Content),
			Action:  ActionComplete,
		}, nil
	}

	return &Response{
		Message: fmt.Sprintf("Deleted task: '%s'", match.Content),
		Action:  ActionDelete,
	}, nil
}

// resolveAdd handles the fallback intent: extract content and due date, then
// persist a new pending task. Content shorter than two characters after
// cleanup is the only validated failure.
func (r *Resolver) resolveAdd(ctx context.Context, ownerID uuid.UUID, text string) (*Response, error) {
	content := ExtractContent(text)
	if utf8.RuneCountInString(content) < 2 {
		return &Response{
			Message: "I didn't quite catch that. Try something like 'Remind me to call mom tomorrow'",
			Action:  ActionError,
		}, nil
	}

	// Date extraction scans the original text, not the stripped content.
	var dueDate *domain.Date
	if due, ok := r.dates.Parse(text, r.now()); ok {
		dueDate = &due
	}

	task, err := domain.NewTask(ownerID, content, dueDate)
	if err != nil {
		return nil, err
	}

	if err := r.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Got it! Added: '%s' (no due date)", content)
	if dueDate != nil {
		message = fmt.Sprintf("Got it! Added: '%s' due %s", content, dueDate.Friendly())
	}

	return &Response{
		Message: message,
		Action:  ActionAdd,
	}, nil
}

func noMatchResponse(intent Intent, pending []domain.Task) *Response {
	if pending == nil {
		pending = []domain.Task{}
	}

	message := "I couldn't find that task. Here are your pending tasks:"
	if intent == IntentDelete {
		message = "I couldn't find that task to delete. Here are your tasks:"
	}

	return &Response{
		Message: message,
		Tasks:   pending,
		Action:  ActionList,
	}
}
