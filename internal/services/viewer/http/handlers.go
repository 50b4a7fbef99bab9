// Package http provides http transport for the viewer
package http

import (
	stdhttp "net/http"

	phttp "sarifview/internal/platform/net/http"
	"sarifview/internal/services/viewer/domain"
)

// Register mounts the viewer endpoints on the given router
func Register(r phttp.Router, port domain.ViewerPort) {
	h := &handlers{port: port}

	// ranked results and the invalidation protocol
	phttp.GetJSON(r, "/view", h.view)
	phttp.PutJSON[domain.LogsInput](r, "/logs", h.loadLogs)
	phttp.PutJSON[domain.FilterInput](r, "/filter", h.setFilter)
	phttp.Post(r, "/review/updated", h.reviewUpdated)
	phttp.Post(r, "/reapply", h.reapply)

	// discussion pane
	phttp.GetJSON(r, "/discussions", h.discussions)
	phttp.PostJSON[domain.SignatureInput](r, "/discussions", h.createDiscussion)
	phttp.PostJSON[domain.SignatureInput](r, "/discussions/select", h.selectDiscussion)
	phttp.Post(r, "/discussions/back", h.back)
	phttp.PutJSON[domain.DraftInput](r, "/discussions/draft", h.setDraft)
	phttp.PostJSON[domain.CommentInput](r, "/discussions/comments", h.postComment)
	phttp.Post(r, "/discussions/show-all", h.showAll)
	phttp.PutJSON[domain.StatusInput](r, "/discussions/status", h.setStatus)
	phttp.PutJSON[domain.DispositionInput](r, "/discussions/disposition", h.setDisposition)
}

type handlers struct{ port domain.ViewerPort }

// @Summary Ranked result view
// @Tags view
// @Produce json
// @Success 200 {object} phttp.Envelope "ok"
// @Router /view [get]
func (h *handlers) view(r *stdhttp.Request) (any, error) { return h.port.View(r.Context()) }

// @Summary Replace the log collection
// @Tags view
// @Accept json
// @Produce json
// @Param payload body domain.LogsInput true "LogsInput"
// @Success 200 {object} phttp.Envelope "ok"
// @Failure 400 {object} phttp.Envelope "invalid input"
// @Router /logs [put]
func (h *handlers) loadLogs(r *stdhttp.Request, in domain.LogsInput) (any, error) {
	return h.port.LoadLogs(r.Context(), in)
}

// @Summary Set one filter category
// @Tags view
// @Accept json
// @Produce json
// @Param payload body domain.FilterInput true "FilterInput"
// @Success 200 {object} phttp.Envelope "ok"
// @Failure 400 {object} phttp.Envelope "invalid input"
// @Router /filter [put]
func (h *handlers) setFilter(r *stdhttp.Request, in domain.FilterInput) (any, error) {
	return h.port.SetFilter(r.Context(), in)
}

// @Summary Report a review update
// @Tags view
// @Produce json
// @Success 200 {object} phttp.Envelope "ok"
// @Router /review/updated [post]
func (h *handlers) reviewUpdated(r *stdhttp.Request) (any, error) {
	return h.port.ReviewUpdated(r.Context())
}

// @Summary Reapply the filter
// @Tags view
// @Produce json
// @Success 200 {object} phttp.Envelope "ok"
// @Router /reapply [post]
func (h *handlers) reapply(r *stdhttp.Request) (any, error) { return h.port.Reapply(r.Context()) }

// @Summary Discussion pane
// @Tags discussions
// @Produce json
// @Success 200 {object} phttp.Envelope "ok"
// @Router /discussions [get]
func (h *handlers) discussions(r *stdhttp.Request) (any, error) {
	return h.port.Discussions(r.Context())
}

// POST /discussions answers 201 with the pane, now in detail view
// @Summary Create a discussion thread
// @Tags discussions
// @Accept json
// @Produce json
// @Param payload body domain.SignatureInput true "SignatureInput"
// @Success 201 {object} phttp.Envelope "created"
// @Failure 400 {object} phttp.Envelope "invalid input"
// @Failure 409 {object} phttp.Envelope "already exists"
// @Router /discussions [post]
func (h *handlers) createDiscussion(r *stdhttp.Request, in domain.SignatureInput) (any, error) {
	out, err := h.port.CreateDiscussion(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return phttp.Created(out), nil
}

// @Summary Select a thread
// @Tags discussions
// @Accept json
// @Produce json
// @Param payload body domain.SignatureInput true "SignatureInput"
// @Success 200 {object} phttp.Envelope "ok"
// @Failure 400 {object} phttp.Envelope "invalid input"
// @Failure 404 {object} phttp.Envelope "not found"
// @Router /discussions/select [post]
func (h *handlers) selectDiscussion(r *stdhttp.Request, in domain.SignatureInput) (any, error) {
	return h.port.SelectDiscussion(r.Context(), in)
}

// @Summary Return to the thread list
// @Tags discussions
// @Produce json
// @Success 200 {object} phttp.Envelope "ok"
// @Router /discussions/back [post]
func (h *handlers) back(r *stdhttp.Request) (any, error) { return h.port.Back(r.Context()) }

// @Summary Store the pending comment
// @Tags discussions
// @Accept json
// @Produce json
// @Param payload body domain.DraftInput true "DraftInput"
// @Success 200 {object} phttp.Envelope "ok"
// @Failure 400 {object} phttp.Envelope "invalid input"
// @Router /discussions/draft [put]
func (h *handlers) setDraft(r *stdhttp.Request, in domain.DraftInput) (any, error) {
	return h.port.SetDraft(r.Context(), in)
}

// @Summary Post a comment to the selected thread
// @Tags discussions
// @Accept json
// @Produce json
// @Param payload body domain.CommentInput true "CommentInput"
// @Success 201 {object} phttp.Envelope "created"
// @Failure 400 {object} phttp.Envelope "invalid input"
// @Failure 404 {object} phttp.Envelope "not found"
// @Router /discussions/comments [post]
func (h *handlers) postComment(r *stdhttp.Request, in domain.CommentInput) (any, error) {
	out, err := h.port.PostComment(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return phttp.Created(out), nil
}

// @Summary Disclose every comment
// @Tags discussions
// @Produce json
// @Success 200 {object} phttp.Envelope "ok"
// @Router /discussions/show-all [post]
func (h *handlers) showAll(r *stdhttp.Request) (any, error) { return h.port.ShowAll(r.Context()) }

// @Summary Set a thread status
// @Tags discussions
// @Accept json
// @Produce json
// @Param payload body domain.StatusInput true "StatusInput"
// @Success 200 {object} phttp.Envelope "ok"
// @Failure 400 {object} phttp.Envelope "invalid input"
// @Failure 404 {object} phttp.Envelope "not found"
// @Router /discussions/status [put]
func (h *handlers) setStatus(r *stdhttp.Request, in domain.StatusInput) (any, error) {
	return h.port.SetStatus(r.Context(), in)
}

// @Summary Set a thread disposition
// @Tags discussions
// @Accept json
// @Produce json
// @Param payload body domain.DispositionInput true "DispositionInput"
// @Success 200 {object} phttp.Envelope "ok"
// @Failure 400 {object} phttp.Envelope "invalid input"
// @Failure 404 {object} phttp.Envelope "not found"
// @Router /discussions/disposition [put]
func (h *handlers) setDisposition(r *stdhttp.Request, in domain.DispositionInput) (any, error) {
	return h.port.SetDisposition(r.Context(), in)
}
