// Package service implements the viewer service on top of a single Session
package service

import (
	"context"
	"sync"

	"sarifview/internal/core/discuss"
	"sarifview/internal/core/filter"
	"sarifview/internal/core/invalidate"
	"sarifview/internal/core/runs"
	perr "sarifview/internal/platform/errors"
	"sarifview/internal/platform/logger"
	pstrings "sarifview/internal/platform/strings"
	"sarifview/internal/services/viewer/domain"
)

var errNoSelection = perr.NotFoundf("no discussion selected")

// Service implements domain.ViewerPort
// The core is single threaded, so every call holds mu for its whole duration
type Service struct {
	mu      sync.Mutex
	sess    *Session
	metrics *Metrics
	lastGen int
}

var _ domain.ViewerPort = (*Service)(nil)

// New wraps sess; metrics may be nil
func New(sess *Session, metrics *Metrics) *Service {
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	return &Service{sess: sess, metrics: metrics}
}

// Session exposes the wrapped session (callers must not use it concurrently with the service)
func (s *Service) Session() *Session { return s.sess }

func (s *Service) log(ctx context.Context) *logger.Logger {
	return logger.C(logger.WithRequest(ctx, "", s.sess.ID))
}

// View implements domain.ViewerPort
func (s *Service) View(ctx context.Context) (domain.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(), nil
}

// LoadLogs implements domain.ViewerPort
func (s *Service) LoadLogs(ctx context.Context, in domain.LogsInput) (domain.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.SetLogs(&runs.Collection{Logs: in.Logs})
	s.log(ctx).Info().Int("logs", len(in.Logs)).Msg("log collection replaced")
	return s.view(), nil
}

// SetFilter implements domain.ViewerPort
func (s *Service) SetFilter(ctx context.Context, in domain.FilterInput) (domain.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.SetFilter(filter.Category(in.Category), filter.Value{Text: in.Text, Set: pstrings.Compact(in.Set)})
	return s.view(), nil
}

// ReviewUpdated implements domain.ViewerPort
func (s *Service) ReviewUpdated(ctx context.Context) (invalidate.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.ReviewUpdated()
	st := s.sess.Invalidation()
	s.setStale(st.Dirty)
	s.log(ctx).Info().Bool("dirty", st.Dirty).Msg("review updated")
	return st, nil
}

// Reapply implements domain.ViewerPort
func (s *Service) Reapply(ctx context.Context) (domain.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rev := s.sess.ReapplyFilter()
	s.metrics.Reapplies.Inc()
	s.log(ctx).Info().Uint64("revision", rev).Msg("filter reapplied")
	return s.view(), nil
}

// Discussions implements domain.ViewerPort
func (s *Service) Discussions(ctx context.Context) (domain.Discussions, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discussions(), nil
}

// CreateDiscussion implements domain.ViewerPort
func (s *Service) CreateDiscussion(ctx context.Context, in domain.SignatureInput) (domain.Discussions, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.sess.CreateDiscussion(in.Signature); err != nil {
		if perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
			s.metrics.Conflicts.Inc()
		}
		s.log(ctx).Warn().Err(err).Str("signature", in.Signature).Msg("create discussion rejected")
		return domain.Discussions{}, perr.WithOp(err, "createDiscussion")
	}
	s.metrics.Threads.Set(float64(s.sess.ThreadCount()))
	return s.discussions(), nil
}

// SelectDiscussion implements domain.ViewerPort
func (s *Service) SelectDiscussion(ctx context.Context, in domain.SignatureInput) (domain.Discussions, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.sess.SelectDiscussion(in.Signature); err != nil {
		return domain.Discussions{}, perr.WithOp(err, "selectDiscussion")
	}
	return s.discussions(), nil
}

// Back implements domain.ViewerPort
func (s *Service) Back(ctx context.Context) (domain.Discussions, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.sess.SelectDiscussion("")
	return s.discussions(), nil
}

// SetDraft implements domain.ViewerPort
func (s *Service) SetDraft(ctx context.Context, in domain.DraftInput) (domain.Discussions, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.SetDraft(in.Text)
	return s.discussions(), nil
}

// PostComment implements domain.ViewerPort
func (s *Service) PostComment(ctx context.Context, in domain.CommentInput) (domain.Discussions, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.sess.PostComment(in.Author, in.Text)
	if err != nil {
		return domain.Discussions{}, perr.WithOp(err, "postComment")
	}
	s.metrics.Comments.Inc()
	s.log(ctx).Debug().Str("comment_id", c.ID.String()).Str("author", c.Author).Msg("comment posted")
	return s.discussions(), nil
}

// ShowAll implements domain.ViewerPort
func (s *Service) ShowAll(ctx context.Context) (domain.Discussions, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.ToggleShowAll()
	return s.discussions(), nil
}

// SetStatus implements domain.ViewerPort
func (s *Service) SetStatus(ctx context.Context, in domain.StatusInput) (domain.Discussions, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.sess.SetStatus(in.Signature, discuss.Status(in.Status)); err != nil {
		return domain.Discussions{}, perr.WithOp(err, "setStatus")
	}
	return s.discussions(), nil
}

// SetDisposition implements domain.ViewerPort
func (s *Service) SetDisposition(ctx context.Context, in domain.DispositionInput) (domain.Discussions, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.sess.SetDisposition(in.Signature, discuss.Disposition(in.Disposition)); err != nil {
		return domain.Discussions{}, perr.WithOp(err, "setDisposition")
	}
	return s.discussions(), nil
}

// view must be called with mu held
func (s *Service) view() domain.View {
	set := s.sess.Aggregates()
	if gen := s.sess.Generation(); gen > s.lastGen {
		s.metrics.Rebuilds.Add(float64(gen - s.lastGen))
		s.lastGen = gen
	}
	st := s.sess.Invalidation()
	s.setStale(st.Dirty)

	ranked := s.sess.Ranked()
	out := domain.View{
		Loading:         set.Loading,
		LegacyOmitted:   set.LegacyOmitted,
		NoResults:       s.sess.NoResults(),
		Stale:           st.Dirty,
		AppliedRevision: st.AppliedRevision,
		Filter:          s.sess.Filter(),
		Runs:            make([]domain.Run, 0, len(ranked)),
	}
	for _, a := range ranked {
		out.Runs = append(out.Runs, domain.Run{
			Index:         a.Index,
			Name:          a.Name,
			FilteredCount: a.FilteredCount(),
			Total:         a.Total(),
		})
	}
	return out
}

// discussions must be called with mu held
func (s *Service) discussions() domain.Discussions {
	out := domain.Discussions{
		View:      s.sess.DiscussionView().String(),
		CanCreate: s.sess.CanCreateDiscussion(),
		Draft:     s.sess.Draft(),
	}
	if th := s.sess.Selected(); th != nil {
		out.Selected = &domain.ThreadDetail{
			Thread:     threadRow(th),
			Disclosed:  s.sess.Comments(),
			Hidden:     s.sess.HiddenComments(),
			ShowingAll: s.sess.ShowingAll(),
		}
		return out
	}
	ts := s.sess.Threads()
	out.Threads = make([]domain.Thread, 0, len(ts))
	for _, th := range ts {
		out.Threads = append(out.Threads, threadRow(th))
	}
	return out
}

func (s *Service) setStale(v bool) {
	if v {
		s.metrics.Stale.Set(1)
		return
	}
	s.metrics.Stale.Set(0)
}

func threadRow(th *discuss.Thread) domain.Thread {
	return domain.Thread{
		Signature:   th.Signature(),
		Status:      th.Status(),
		Disposition: th.Disposition(),
		Comments:    th.Len(),
	}
}
