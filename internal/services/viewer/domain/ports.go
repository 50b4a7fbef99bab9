package domain

import (
	"context"

	"sarifview/internal/core/invalidate"
)

// ViewerPort is the command surface exposed to the UI transport
type ViewerPort interface {
	View(ctx context.Context) (View, error)
	LoadLogs(ctx context.Context, in LogsInput) (View, error)
	SetFilter(ctx context.Context, in FilterInput) (View, error)
	ReviewUpdated(ctx context.Context) (invalidate.State, error)
	Reapply(ctx context.Context) (View, error)

	Discussions(ctx context.Context) (Discussions, error)
	CreateDiscussion(ctx context.Context, in SignatureInput) (Discussions, error)
	SelectDiscussion(ctx context.Context, in SignatureInput) (Discussions, error)
	Back(ctx context.Context) (Discussions, error)
	SetDraft(ctx context.Context, in DraftInput) (Discussions, error)
	PostComment(ctx context.Context, in CommentInput) (Discussions, error)
	ShowAll(ctx context.Context) (Discussions, error)
	SetStatus(ctx context.Context, in StatusInput) (Discussions, error)
	SetDisposition(ctx context.Context, in DispositionInput) (Discussions, error)
}
