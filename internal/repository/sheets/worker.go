package sheets

import (
	"context"
	"fmt"

	"github.com/newrest-ops/attendance-backend-go/internal/domain/worker"
)

// WORKERS registry sheet layout: A NAME, B ID, C STATUS, D LANGUAGE,
// header on row 1.
const workersRange = "WORKERS!A2:D"

type WorkerRepository struct {
	client *Client
}

func NewWorkerRepository(client *Client) worker.Repository {
	return &WorkerRepository{client: client}
}

// FindByIdentity implements worker.Repository.
func (r *WorkerRepository) FindByIdentity(ctx context.Context, identity string) (worker.Worker, error) {
	rows, err := r.client.readRange(ctx, workersRange)
	if err != nil {
		return worker.Worker{}, err
	}

	for _, row := range rows {
		if len(row) < 2 || fmt.Sprint(row[1]) != identity {
			continue
		}

		w := worker.Worker{
			Identity: identity,
			Name:     fmt.Sprint(row[0]),
		}
		if len(row) > 2 {
			w.Status = worker.LifecycleStatus(fmt.Sprint(row[2]))
		}
		if len(row) > 3 {
			w.Language = fmt.Sprint(row[3])
		}
		return w, nil
	}

	return worker.Worker{}, worker.ErrWorkerNotFound
}
