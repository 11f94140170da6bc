package scheduler

import (
	"context"
	"fmt"
	"net/http"

	"tourism-service/config"
	"tourism-service/internal/pkg/log"

	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"
)

const (
	TypeCompleteElapsedSchedules = "complete_elapsed_schedules"
)

type HandlerFunc func(ctx context.Context, t *asynq.Task) error

type Scheduler struct {
	Log log.Logger
	Cfg *config.SchedulerConfig
}

func redisOpt(cfg *config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

func (s *Scheduler) StartMonitoring(cfg *config.RedisConfig) {
	ctx := context.Background()
	h := asynqmon.New(asynqmon.Options{
		RootPath:     "/monitoring",
		RedisConnOpt: redisOpt(cfg),
	})

	mux := http.NewServeMux()
	mux.Handle(h.RootPath()+"/", h)

	err := http.ListenAndServe(":"+s.Cfg.MonitoringPort, mux)
	s.Log.Error(ctx, "error start monitoring scheduler", err)
}

func (s *Scheduler) InitClient(cfg *config.RedisConfig) *asynq.Client {
	return asynq.NewClient(redisOpt(cfg))
}

// StartPeriodic enqueues taskType on the cron spec until the process exits.
func (s *Scheduler) StartPeriodic(cfg *config.RedisConfig, cronspec string, taskType string) {
	ctx := context.Background()
	sch := asynq.NewScheduler(redisOpt(cfg), nil)

	if _, err := sch.Register(cronspec, asynq.NewTask(taskType, nil)); err != nil {
		s.Log.Error(ctx, "error register periodic task", err)
		return
	}

	if err := sch.Run(); err != nil {
		s.Log.Error(ctx, "error start periodic scheduler", err)
	}
}

func (s *Scheduler) StartHandler(cfg *config.RedisConfig, taskTypes []string, handlerFunc []HandlerFunc) {
	ctx := context.Background()
	srv := asynq.NewServer(
		redisOpt(cfg),
		asynq.Config{
			Concurrency: s.Cfg.Concurrency,
			Queues: map[string]int{
				"default": 10,
			},
		},
	)

	mux := asynq.NewServeMux()
	for i, taskType := range taskTypes {
		mux = s.registerHandlers(mux, taskType, handlerFunc[i])
	}

	if err := srv.Run(mux); err != nil {
		s.Log.Error(ctx, "error start handler scheduler", err)
	}
}

func (s *Scheduler) registerHandlers(mux *asynq.ServeMux, typeTask string, handlerFunc HandlerFunc) *asynq.ServeMux {
	mux.HandleFunc(typeTask, handlerFunc)
	return mux
}
