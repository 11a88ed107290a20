// Package workflow drives the collect -> submit -> show-results/reset
// loop around the recommendation client.
package workflow

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"networx-client/internal/common/errors"
	"networx-client/internal/common/logger"
	"networx-client/internal/common/metrics"
	"networx-client/internal/common/observability"
	"networx-client/internal/match"
	"networx-client/internal/profile"
	"networx-client/internal/recommend"
)

// Recommender is the outbound port to the similarity-scoring peer.
type Recommender interface {
	Submit(ctx context.Context, p profile.Profile) ([]recommend.RawRecommendation, error)
}

// Session is the authentication precondition for submissions.
type Session interface {
	Authenticated() bool
	SessionID() string
}

// Controller is the single writer of the workflow state. Presentation
// reads immutable snapshots.
type Controller struct {
	mu      sync.Mutex
	phase   Phase
	profile profile.Profile
	matches []match.Match
	errMsg  string

	// seq fences responses: only the most recently accepted submission
	// may transition state out of PhaseSubmitting.
	seq uint64

	client  Recommender
	session Session
	logger  logger.Logger
	obs     *observability.Observability
}

type Dependencies struct {
	Client        Recommender
	Session       Session
	Logger        logger.Logger
	Observability *observability.Observability
}

func NewController(deps Dependencies) *Controller {
	log := deps.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Controller{
		phase:   PhaseCollecting,
		profile: profile.New(),
		client:  deps.Client,
		session: deps.Session,
		logger:  log.WithFields(map[string]interface{}{"component": "workflow"}),
		obs:     deps.Observability,
	}
}

// SetField updates one profile field from raw text input. The profile
// is only writable while collecting.
func (c *Controller) SetField(field profile.Field, raw string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseCollecting {
		return errors.NewProfileLockedError(string(c.phase))
	}
	return c.profile.Set(field, raw)
}

// Submit sends the current profile to the peer and blocks until the
// round trip completes. It returns the precondition error when the
// submission is not accepted, the fetch error when the peer call
// fails, and nil once results are showing. Concurrent callers are
// rejected while a submission is in flight.
func (c *Controller) Submit(ctx context.Context) error {
	seq, submitted, err := c.accept()
	if err != nil {
		return err
	}

	submissionID := uuid.NewString()
	c.logger.Info("submitting profile", map[string]interface{}{
		"submissionId": submissionID,
		"seq":          seq,
		"sessionId":    c.session.SessionID(),
	})

	metrics.SubmissionsInFlight.Inc()
	start := time.Now()
	recs, err := c.client.Submit(ctx, submitted)
	elapsed := time.Since(start)
	metrics.SubmissionsInFlight.Dec()

	return c.complete(seq, submissionID, submitted, recs, err, elapsed)
}

// accept validates the submission preconditions and transitions to
// PhaseSubmitting, returning the fencing sequence and the profile copy
// to submit.
func (c *Controller) accept() (uint64, profile.Profile, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == PhaseSubmitting {
		return 0, profile.Profile{}, errors.NewSubmissionInFlightError()
	}
	if c.session == nil || !c.session.Authenticated() {
		return 0, profile.Profile{}, errors.NewNotAuthenticatedError()
	}
	if err := c.profile.ValidateRequired(); err != nil {
		return 0, profile.Profile{}, err
	}

	c.seq++
	c.phase = PhaseSubmitting
	c.errMsg = ""
	return c.seq, c.profile, nil
}

// complete applies the outcome of a submission. A response whose
// sequence no longer matches the latest accepted submission is dropped.
func (c *Controller) complete(seq uint64, submissionID string, submitted profile.Profile, recs []recommend.RawRecommendation, err error, elapsed time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq || c.phase != PhaseSubmitting {
		c.logger.Warn("dropping stale submission response", map[string]interface{}{
			"submissionId": submissionID,
			"seq":          seq,
			"currentSeq":   c.seq,
		})
		return nil
	}

	ctx := context.Background()
	if err != nil {
		c.phase = PhaseCollecting
		c.errMsg = errors.FetchFailedMessage
		metrics.SubmissionsFailed.WithLabelValues(string(errors.CodeOf(err))).Inc()
		if c.obs != nil {
			c.obs.RecordSubmission(ctx, "failed")
			c.obs.RecordDuration(ctx, elapsed, "failed")
		}
		c.logger.Error("submission failed", map[string]interface{}{
			"submissionId": submissionID,
			"errorCode":    string(errors.CodeOf(err)),
			"error":        err.Error(),
		})
		return err
	}

	c.matches = match.Normalize(recs, submitted)
	c.phase = PhaseShowingResults
	metrics.SubmissionsCompleted.Inc()
	metrics.SubmissionDuration.Observe(elapsed.Seconds())
	metrics.MatchesReturned.Observe(float64(len(c.matches)))
	if c.obs != nil {
		c.obs.RecordSubmission(ctx, "success")
		c.obs.RecordDuration(ctx, elapsed, "success")
	}
	c.logger.Info("submission completed", map[string]interface{}{
		"submissionId": submissionID,
		"matches":      len(c.matches),
	})
	return nil
}

// Reset returns to collection with a fresh profile, clearing results
// and any inline error. It is rejected while a submission is in
// flight; there is no cancellation.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == PhaseSubmitting {
		return errors.NewSubmissionInFlightError()
	}

	c.phase = PhaseCollecting
	c.profile = profile.New()
	c.matches = nil
	c.errMsg = ""
	return nil
}

// Snapshot returns an immutable copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	var matches []match.Match
	if len(c.matches) > 0 {
		matches = make([]match.Match, len(c.matches))
		copy(matches, c.matches)
	}
	return Snapshot{
		Phase:   c.phase,
		Profile: c.profile,
		Matches: matches,
		Err:     c.errMsg,
		Seq:     c.seq,
	}
}
