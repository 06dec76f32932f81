package curriculum

import "context"

type ListOpts struct {
	Q          string // substring match on title
	Subject    string
	GradeLevel string
	Limit      int
	Offset     int
}

type Store interface {
	PutActivity(ctx context.Context, a Activity) error
	GetActivity(ctx context.Context, id string) (Activity, error)
	ListActivities(ctx context.Context, opts ListOpts) ([]ActivitySummary, error)
	DeleteActivity(ctx context.Context, id string) error
}
