package services

import "context"

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthService reports liveness by probing the database, so a green health
// check means the service can actually answer requests.
type HealthService struct {
	db Pinger
}

func NewHealthService(db Pinger) *HealthService {
	return &HealthService{
		db: db,
	}
}

func (s *HealthService) Get(ctx context.Context) error {
	return s.db.Ping(ctx)
}
